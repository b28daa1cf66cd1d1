package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
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

func TestGORMVideoDAO_Delete(t *testing.T) {
	// 删除在一个事务里连带清理评价、评论、标签关联、历史
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reactions WHERE video_id = ?").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM comments WHERE video_id = ?").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM video_tags WHERE video_id = ?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM histories WHERE video_id = ?").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM `videos` .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	db := newMockDB(t, mockDB)
	d := NewVideoDAO(db)
	err = d.Delete(context.Background(), 10)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMVideoDAO_GetOrCreateTag(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "新标签，直接插入",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `tags` .*").
					WillReturnResult(sqlmock.NewResult(5, 1))
				return mockDB
			},
			wantId: 5,
		},
		{
			name: "标签已存在，回查拿 id",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `tags` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectQuery("SELECT \\* FROM `tags` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "golang"))
				return mockDB
			},
			wantId: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock(t))
			d := NewVideoDAO(db)
			id, err := d.GetOrCreateTag(context.Background(), "golang")
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMVideoDAO_LinkTag_Duplicate(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("INSERT INTO `video_tags` .*").
		WillReturnError(&mysql.MySQLError{Number: 1062})
	db := newMockDB(t, mockDB)
	d := NewVideoDAO(db)
	err = d.LinkTag(context.Background(), 10, 3)
	assert.NoError(t, err)
}
