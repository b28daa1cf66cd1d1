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

	intrmocks "github.com/clipflow/clipflow/internal/interactive/mocks"
	"github.com/clipflow/clipflow/internal/video/internal/domain"
	"github.com/clipflow/clipflow/internal/video/internal/repository/dao"
	repomocks "github.com/clipflow/clipflow/internal/video/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestVideoService_Upload(t *testing.T) {
	t.Run("标签被归一化，空白标签被丢弃", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockVideoRepository(ctrl)
		repo.EXPECT().CategoryIdByName(gomock.Any(), "科技").Return(int64(2), nil)
		var gotVideo dao.Video
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), []string{"machine_learning", "golang"}).
			DoAndReturn(func(ctx context.Context, v dao.Video, tags []string) (int64, error) {
				gotVideo = v
				return 10, nil
			})
		svc := NewService(repo, intrmocks.NewMockService(ctrl))
		receipt, err := svc.Upload(context.Background(), 123, domain.UploadVideo{
			Title:    "入门教程",
			Category: "科技",
			Tags:     []string{" Machine Learning ", "GoLang", "   "},
			Duration: 600,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(10), receipt.Id)
		assert.NotEmpty(t, receipt.VideoKey)
		assert.NotEmpty(t, receipt.Thumbnail)
		assert.Equal(t, int64(2), gotVideo.CategoryId)
		assert.Equal(t, receipt.VideoKey, gotVideo.VideoKey)
	})

	t.Run("分类不存在，直接报错", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockVideoRepository(ctrl)
		repo.EXPECT().CategoryIdByName(gomock.Any(), "不存在的分类").
			Return(int64(0), ErrUnknownCategory)
		svc := NewService(repo, intrmocks.NewMockService(ctrl))
		_, err := svc.Upload(context.Background(), 123, domain.UploadVideo{
			Title:    "入门教程",
			Category: "不存在的分类",
		})
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("不指定分类也可以上传", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockVideoRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), []string{}).
			Return(int64(11), nil)
		svc := NewService(repo, intrmocks.NewMockService(ctrl))
		receipt, err := svc.Upload(context.Background(), 123, domain.UploadVideo{
			Title: "无分类视频",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(11), receipt.Id)
	})
}

func TestVideoService_Delete(t *testing.T) {
	t.Run("作者本人删除", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockVideoRepository(ctrl)
		repo.EXPECT().AuthorOf(gomock.Any(), int64(10)).Return(int64(123), nil)
		repo.EXPECT().Delete(gomock.Any(), int64(10)).Return(nil)
		svc := NewService(repo, intrmocks.NewMockService(ctrl))
		err := svc.Delete(context.Background(), 10, 123)
		assert.NoError(t, err)
	})

	t.Run("非作者删除被拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockVideoRepository(ctrl)
		repo.EXPECT().AuthorOf(gomock.Any(), int64(10)).Return(int64(999), nil)
		svc := NewService(repo, intrmocks.NewMockService(ctrl))
		err := svc.Delete(context.Background(), 10, 123)
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestVideoService_Liked(t *testing.T) {
	// 列表顺序跟着点赞时间走
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	intrSvc := intrmocks.NewMockService(ctrl)
	intrSvc.EXPECT().LikedVideoIds(gomock.Any(), int64(123)).
		Return([]int64{3, 1}, nil)
	repo := repomocks.NewMockVideoRepository(ctrl)
	repo.EXPECT().ListByIds(gomock.Any(), []int64{3, 1}).
		Return([]domain.VideoCard{{Id: 3}, {Id: 1}}, nil)
	svc := NewService(repo, intrSvc)
	cards, err := svc.Liked(context.Background(), 123)
	assert.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, []int64{cards[0].Id, cards[1].Id})
}
