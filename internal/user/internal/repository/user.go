package repository

import (
	"context"

	"github.com/clipflow/clipflow/internal/user/internal/domain"
	"github.com/clipflow/clipflow/internal/user/internal/repository/cache"
	"github.com/clipflow/clipflow/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// FindByEmail 登录链路用，会带出密文
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	UpdateAvatar(ctx context.Context, uid int64, avatar string) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, dao.User{
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
		Avatar:   u.Avatar,
	})
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context,
	email string) (domain.User, error) {
	// 登录不走缓存，密文只从库里来
	u, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return ur.entityToDomain(u), nil
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	u.Password = ""
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) UpdateAvatar(ctx context.Context, uid int64, avatar string) error {
	err := ur.dao.UpdateAvatar(ctx, uid, avatar)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, uid)
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:               ue.Id,
		Username:         ue.Username,
		Email:            ue.Email,
		Password:         ue.Password,
		Avatar:           ue.Avatar,
		SubscribersCount: ue.SubscribersCount,
	}
}
