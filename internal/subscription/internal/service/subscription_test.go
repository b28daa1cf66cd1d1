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

	"github.com/clipflow/clipflow/internal/preference"
	prefmocks "github.com/clipflow/clipflow/internal/preference/mocks"
	"github.com/clipflow/clipflow/internal/subscription/internal/repository"
	repomocks "github.com/clipflow/clipflow/internal/subscription/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSubscriptionService_Subscribe(t *testing.T) {
	testCases := []struct {
		name         string
		subscriberId int64
		channelId    int64
		mock         func(ctrl *gomock.Controller) (repository.SubscriptionRepository, preference.Service)
		wantErr      error
	}{
		{
			name:         "正常订阅，偏好分跟着加",
			subscriberId: 123,
			channelId:    456,
			mock: func(ctrl *gomock.Controller) (repository.SubscriptionRepository, preference.Service) {
				repo := repomocks.NewMockSubscriptionRepository(ctrl)
				repo.EXPECT().Subscribe(gomock.Any(), int64(123), int64(456)).
					Return(true, nil)
				prefSvc := prefmocks.NewMockService(ctrl)
				prefSvc.EXPECT().OnSubscribe(gomock.Any(), int64(123), int64(456)).
					Return(nil)
				return repo, prefSvc
			},
			wantErr: nil,
		},
		{
			name:         "重复订阅，静默成功，偏好分不重复加",
			subscriberId: 123,
			channelId:    456,
			mock: func(ctrl *gomock.Controller) (repository.SubscriptionRepository, preference.Service) {
				repo := repomocks.NewMockSubscriptionRepository(ctrl)
				repo.EXPECT().Subscribe(gomock.Any(), int64(123), int64(456)).
					Return(false, nil)
				return repo, prefmocks.NewMockService(ctrl)
			},
			wantErr: nil,
		},
		{
			name: "订阅自己，静默忽略",
			// 不设置任何 EXPECT，调用到 repo 会直接失败
			subscriberId: 123,
			channelId:    123,
			mock: func(ctrl *gomock.Controller) (repository.SubscriptionRepository, preference.Service) {
				return repomocks.NewMockSubscriptionRepository(ctrl), prefmocks.NewMockService(ctrl)
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, prefSvc := tc.mock(ctrl)
			svc := NewService(repo, prefSvc)
			err := svc.Subscribe(context.Background(), tc.subscriberId, tc.channelId)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
