package service

import (
	"context"
	"errors"
	"strings"

	"github.com/clipflow/clipflow/internal/user/internal/domain"
	"github.com/clipflow/clipflow/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUser = repository.ErrUserDuplicate
	// ErrInvalidUserOrPassword 刻意不区分用户不存在和密码不对
	ErrInvalidUserOrPassword = errors.New("邮箱或密码错误")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	Register(ctx context.Context, username, email, password string) (int64, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	UpdateAvatar(ctx context.Context, uid int64, avatar string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) Register(ctx context.Context, username, email, password string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return svc.repo.Create(ctx, domain.User{
		Username: username,
		Email:    email,
		Password: string(hash),
	})
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidUserOrPassword
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) UpdateAvatar(ctx context.Context, uid int64, avatar string) error {
	return svc.repo.UpdateAvatar(ctx, uid, avatar)
}
