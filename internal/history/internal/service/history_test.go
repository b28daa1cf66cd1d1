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

	"github.com/clipflow/clipflow/internal/history/internal/repository"
	repomocks "github.com/clipflow/clipflow/internal/history/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHistoryService_RecordWatch(t *testing.T) {
	testCases := []struct {
		name            string
		durationSeconds int64
		mock            func(ctrl *gomock.Controller) repository.HistoryRepository
		wantErr         error
	}{
		{
			name:            "正常上报",
			durationSeconds: 8,
			mock: func(ctrl *gomock.Controller) repository.HistoryRepository {
				repo := repomocks.NewMockHistoryRepository(ctrl)
				repo.EXPECT().RecordWatch(gomock.Any(), int64(123), int64(10), int64(8)).
					Return(nil)
				return repo
			},
			wantErr: nil,
		},
		{
			name: "零时长，直接忽略不落库",
			// 不设置任何 EXPECT，调用到 repo 会直接失败
			durationSeconds: 0,
			mock: func(ctrl *gomock.Controller) repository.HistoryRepository {
				return repomocks.NewMockHistoryRepository(ctrl)
			},
			wantErr: nil,
		},
		{
			name:            "负时长，直接忽略不落库",
			durationSeconds: -5,
			mock: func(ctrl *gomock.Controller) repository.HistoryRepository {
				return repomocks.NewMockHistoryRepository(ctrl)
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.RecordWatch(context.Background(), 123, 10, tc.durationSeconds)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestHistoryService_List_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockHistoryRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), int64(123), 50).Return(nil, nil)
	svc := NewService(repo)
	_, err := svc.List(context.Background(), 123, 0)
	assert.NoError(t, err)
}
