// Copyright 2024 clipflow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"testing"

	"github.com/clipflow/clipflow/internal/user/internal/domain"
	"github.com/clipflow/clipflow/internal/user/internal/repository"
	repomocks "github.com/clipflow/clipflow/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Run("密码落库前被加密", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		var gotUser domain.User
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				gotUser = u
				return 1, nil
			})
		svc := NewUserService(repo)
		uid, err := svc.Register(context.Background(), " alice ", " Alice@Example.COM ", "hello#world123")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), uid)
		assert.Equal(t, "alice", gotUser.Username)
		assert.Equal(t, "alice@example.com", gotUser.Email)
		assert.NotEqual(t, "hello#world123", gotUser.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(gotUser.Password), []byte("hello#world123")))
	})

	t.Run("用户名或邮箱重复", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), repository.ErrUserDuplicate)
		svc := NewUserService(repo)
		_, err := svc.Register(context.Background(), "alice", "alice@example.com", "hello#world123")
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hello#world123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		password string
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").
					Return(domain.User{
						Id:       1,
						Username: "alice",
						Email:    "alice@example.com",
						Password: string(hash),
					}, nil)
				return repo
			},
			password: "hello#world123",
			wantUser: domain.User{
				Id:       1,
				Username: "alice",
				Email:    "alice@example.com",
			},
		},
		{
			name: "密码不对",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").
					Return(domain.User{
						Id:       1,
						Username: "alice",
						Email:    "alice@example.com",
						Password: string(hash),
					}, nil)
				return repo
			},
			password: "wrong-password",
			wantErr:  ErrInvalidUserOrPassword,
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			password: "hello#world123",
			wantErr:  ErrInvalidUserOrPassword,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			u, err := svc.Login(context.Background(), "alice@example.com", tc.password)
			assert.Equal(t, tc.wantErr, err)
			// 登录结果不应该把密文带出去
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(1)).
		Return(domain.User{
			Id:               1,
			Username:         "alice",
			Avatar:           "avatars/1.png",
			SubscribersCount: 42,
		}, nil)
	svc := NewUserService(repo)
	u, err := svc.Profile(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), u.SubscribersCount)
	assert.Empty(t, u.Password)
}
