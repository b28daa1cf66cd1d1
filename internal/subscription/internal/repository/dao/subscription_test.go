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

func TestGORMSubscriptionDAO_Subscribe(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "首次订阅，关系行和粉丝数一起落库",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `subscriptions` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("UPDATE `users` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
		{
			name: "重复订阅，唯一索引冲突，粉丝数不动",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `subscriptions` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrDuplicateSubscription,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock(t))
			d := NewSubscriptionDAO(db)
			err := d.Subscribe(context.Background(), 123, 456)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMSubscriptionDAO_Unsubscribe(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "取关成功，粉丝数 -1",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `subscriptions` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `users` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
		{
			name: "没订阅过，幂等返回，粉丝数不动",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `subscriptions` .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := newMockDB(t, tc.mock(t))
			d := NewSubscriptionDAO(db)
			err := d.Unsubscribe(context.Background(), 123, 456)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMSubscriptionDAO_IsSubscribed(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `subscriptions` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "subscriber_id", "channel_id"}))
	db := newMockDB(t, mockDB)
	d := NewSubscriptionDAO(db)
	ok, err := d.IsSubscribed(context.Background(), 123, 456)
	assert.NoError(t, err)
	assert.False(t, ok)
}
