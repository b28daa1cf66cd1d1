package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMReactionDAO_SetReaction(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(t *testing.T) *sql.DB
		isLike      bool
		wantChanged bool
		wantErr     error
	}{
		{
			name: "首次点赞，插入明细并加计数",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `reactions` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "video_id", "is_like"}))
				mock.ExpectExec("INSERT INTO `reactions` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `videos` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			isLike:      true,
			wantChanged: true,
			wantErr:     nil,
		},
		{
			name: "重复点赞，状态没变不写库",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "uid", "video_id", "is_like"})
				rows.AddRow(1, 123, 10, true)
				mock.ExpectQuery("SELECT \\* FROM `reactions` .*").
					WillReturnRows(rows)
				// 没有任何 INSERT/UPDATE
				mock.ExpectCommit()
				return mockDB
			},
			isLike:      true,
			wantChanged: false,
			wantErr:     nil,
		},
		{
			name: "点赞改点踩，更新明细并同时动两个计数",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "uid", "video_id", "is_like"})
				rows.AddRow(1, 123, 10, true)
				mock.ExpectQuery("SELECT \\* FROM `reactions` .*").
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE `reactions` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `videos` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			isLike:      false,
			wantChanged: true,
			wantErr:     nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock(t))
			d := NewReactionDAO(db)
			changed, err := d.SetReaction(context.Background(), 10, 123, tc.isLike)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantChanged, changed)
		})
	}
}

func TestGORMReactionDAO_RemoveReaction(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "有点赞记录，删除并减计数",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "uid", "video_id", "is_like"})
				rows.AddRow(1, 123, 10, true)
				mock.ExpectQuery("SELECT \\* FROM `reactions` .*").
					WillReturnRows(rows)
				mock.ExpectExec("DELETE FROM `reactions` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `videos` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
		{
			name: "本来就没有评价，幂等返回",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `reactions` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "video_id", "is_like"}))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock(t))
			d := NewReactionDAO(db)
			err := d.RemoveReaction(context.Background(), 10, 123)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMReactionDAO_IncrViewCnt(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `videos` .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	db := newMockDB(t, mockDB)
	d := NewReactionDAO(db)
	err = d.IncrViewCnt(context.Background(), 10)
	assert.NoError(t, err)
}
