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

	"github.com/clipflow/clipflow/internal/comment/internal/domain"
	"github.com/clipflow/clipflow/internal/comment/internal/repository"
	repomocks "github.com/clipflow/clipflow/internal/comment/internal/repository/mocks"
	"github.com/clipflow/clipflow/internal/preference"
	prefmocks "github.com/clipflow/clipflow/internal/preference/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCommentService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		mock    func(ctrl *gomock.Controller) (repository.CommentRepository, preference.Service)
		wantId  int64
		wantErr error
	}{
		{
			name:    "正常评论，偏好分 +2",
			content: "讲得很清楚",
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository, preference.Service) {
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), int64(123), int64(10), "讲得很清楚").
					Return(int64(7), nil)
				prefSvc := prefmocks.NewMockService(ctrl)
				prefSvc.EXPECT().OnComment(gomock.Any(), int64(123), int64(10)).
					Return(nil)
				return repo, prefSvc
			},
			wantId:  7,
			wantErr: nil,
		},
		{
			name:    "内容两侧空白被去掉",
			content: "  不错  ",
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository, preference.Service) {
				repo := repomocks.NewMockCommentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), int64(123), int64(10), "不错").
					Return(int64(8), nil)
				prefSvc := prefmocks.NewMockService(ctrl)
				prefSvc.EXPECT().OnComment(gomock.Any(), int64(123), int64(10)).
					Return(nil)
				return repo, prefSvc
			},
			wantId:  8,
			wantErr: nil,
		},
		{
			name:    "空白评论直接拒绝",
			content: "   ",
			mock: func(ctrl *gomock.Controller) (repository.CommentRepository, preference.Service) {
				return repomocks.NewMockCommentRepository(ctrl), prefmocks.NewMockService(ctrl)
			},
			wantId:  0,
			wantErr: ErrEmptyContent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, prefSvc := tc.mock(ctrl)
			svc := NewService(repo, prefSvc)
			id, err := svc.Create(context.Background(), 123, 10, tc.content)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestCommentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCommentRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), int64(10)).
		Return([]domain.Comment{
			{Id: 2, Content: "后发的"},
			{Id: 1, Content: "先发的"},
		}, nil)
	repo.EXPECT().Count(gomock.Any(), int64(10)).Return(int64(2), nil)
	svc := NewService(repo, prefmocks.NewMockService(ctrl))
	comments, total, err := svc.List(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, comments, 2)
	assert.Equal(t, int64(2), comments[0].Id)
}
