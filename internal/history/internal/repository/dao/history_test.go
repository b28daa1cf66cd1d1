package dao

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMHistoryDAO_Upsert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "窗口内已有记录，原地覆盖",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "uid", "video_id", "watched_at", "watch_duration"})
				rows.AddRow(7, 123, 10, time.Now().UnixMilli(), 30)
				mock.ExpectQuery("SELECT \\* FROM `histories` .*").
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE `histories` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
		{
			name: "窗口内没有记录，插入新行",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `histories` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "video_id", "watched_at", "watch_duration"}))
				mock.ExpectExec("INSERT INTO `histories` .*").
					WillReturnResult(sqlmock.NewResult(8, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock(t))
			d := NewHistoryDAO(db)
			err := d.Upsert(context.Background(), 123, 10, 66, time.Hour)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMHistoryDAO_CleanupDuplicates(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("DELETE FROM histories").
		WillReturnResult(sqlmock.NewResult(0, 3))
	db := newMockDB(t, mockDB)
	d := NewHistoryDAO(db)
	cnt, err := d.CleanupDuplicates(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}
