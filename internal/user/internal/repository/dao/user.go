package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 用户名或者邮箱撞上了唯一索引
var ErrUserDuplicate = errors.New("用户名或邮箱已经被占用")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	UpdateAvatar(ctx context.Context, uid int64, avatar string) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) UpdateAvatar(ctx context.Context, uid int64, avatar string) error {
	return ud.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", uid).
		Updates(map[string]any{
			"avatar": avatar,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

type User struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Username string `gorm:"type:varchar(128);uniqueIndex:uniq_username"`
	Email    string `gorm:"type:varchar(256);uniqueIndex:uniq_email"`
	// Password 是 bcrypt 之后的密文
	Password string `gorm:"type:varchar(256)"`
	Avatar   string
	// SubscribersCount 冗余的订阅者计数，订阅模块在同一个事务里维护
	SubscribersCount int64
	Ctime            int64
	Utime            int64
}
