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

	"github.com/clipflow/clipflow/internal/search/internal/domain"
	repomocks "github.com/clipflow/clipflow/internal/search/internal/repository/mocks"
	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTierScore(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  float64
	}{
		// 三档叠加：完全相同 50+30+15
		{name: "完全相同", value: "golang", want: 95},
		{name: "前缀命中", value: "golang tutorial", want: 45},
		{name: "中间包含", value: "learn golang", want: 15},
		{name: "大小写不敏感", value: "GoLang", want: 95},
		{name: "不沾边", value: "rust", want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tierScore(tc.value, "golang", 50, 30, 15))
		})
	}
}

func TestSearchPopularity(t *testing.T) {
	assert.Equal(t, 0.0, searchPopularity(0))
	assert.InDelta(t, 3.0, searchPopularity(999), 0.01)
	// 封顶 5 分
	assert.Equal(t, 5.0, searchPopularity(10_000_000))
}

func TestSearchService_Search(t *testing.T) {
	t.Run("空白查询直接返回空", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		// 不应该打到存储层
		repo := repomocks.NewMockSearchRepository(ctrl)
		svc := NewService(repo)
		res, err := svc.Search(context.Background(), "   ", 20)
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("按相关性排序，零分候选被丢掉", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSearchRepository(ctrl)
		repo.EXPECT().Candidates(gomock.Any(), "%golang%").Return([]domain.Candidate{
			{Id: 1, Title: "golang"},
			{Id: 2, Title: "advanced golang", ViewsCount: 999},
			// 只靠标签命中进来的零播放视频
			{Id: 3, Title: "rust", Author: "bob"},
			{Id: 4, Title: "golang tips", ViewsCount: 99},
		}, nil)
		svc := NewService(repo)
		res, err := svc.Search(context.Background(), "Golang", 20)
		assert.NoError(t, err)
		ids := slice.Map(res, func(idx int, src domain.VideoResult) int64 {
			return src.Id
		})
		assert.Equal(t, []int64{1, 4, 2}, ids)
	})
}

func TestSearchService_SearchHistory(t *testing.T) {
	t.Run("空白查询直接返回空", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSearchRepository(ctrl)
		svc := NewService(repo)
		res, err := svc.SearchHistory(context.Background(), 123, "", 50)
		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("同分按最近观看排序，历史搜索不看热度", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockSearchRepository(ctrl)
		repo.EXPECT().HistoryCandidates(gomock.Any(), int64(123), "%golang%").
			Return([]domain.HistoryResult{
				// 播放量不一样，但历史搜索不算热度分，俩都是 15 分
				{VideoId: 1, Title: "learn golang", ViewsCount: 100, WatchedAt: 1000},
				{VideoId: 2, Title: "why golang", ViewsCount: 999_999, WatchedAt: 2000},
				// 只靠标签命中，零分被丢掉
				{VideoId: 3, Title: "rust", Author: "bob", WatchedAt: 3000},
			}, nil)
		svc := NewService(repo)
		res, err := svc.SearchHistory(context.Background(), 123, "golang", 50)
		assert.NoError(t, err)
		ids := slice.Map(res, func(idx int, src domain.HistoryResult) int64 {
			return src.VideoId
		})
		assert.Equal(t, []int64{2, 1}, ids)
		assert.Equal(t, 15.0, res[0].Score)
	})
}
