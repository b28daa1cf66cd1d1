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
	"time"

	"github.com/clipflow/clipflow/internal/recommendation/internal/domain"
	repomocks "github.com/clipflow/clipflow/internal/recommendation/internal/repository/mocks"
	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPopularityScore(t *testing.T) {
	testCases := []struct {
		name  string
		views int64
		want  float64
	}{
		{name: "零播放零分", views: 0, want: 0},
		{name: "一次播放", views: 1, want: 0.602},
		{name: "一千次左右", views: 999, want: 6},
		{name: "百万级封顶", views: 1_000_000, want: 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, popularityScore(tc.views), 0.01)
		})
	}
}

func TestRecencyScore(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{name: "一天内", age: 2 * time.Hour, want: 10},
		{name: "一周内", age: 3 * 24 * time.Hour, want: 7},
		{name: "一个月内", age: 10 * 24 * time.Hour, want: 4},
		{name: "老视频", age: 100 * 24 * time.Hour, want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uploadedAt := now.Add(-tc.age).UnixMilli()
			assert.Equal(t, tc.want, recencyScore(uploadedAt, now))
		})
	}
}

func TestAffinityScore(t *testing.T) {
	assert.Equal(t, 0.0, affinityScore(0))
	assert.Equal(t, 5.5, affinityScore(55))
	// 封顶 10 分
	assert.Equal(t, 10.0, affinityScore(250))
}

func TestRecommendationService_Recommend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	now := time.Now()
	repo := repomocks.NewMockRecommendationRepository(ctrl)
	repo.EXPECT().Candidates(gomock.Any(), int64(123)).Return([]domain.Candidate{
		// 很新但没人看也没偏好
		{Id: 1, UploadedAt: now.Add(-2 * time.Hour).UnixMilli()},
		// 热门
		{Id: 2, ViewsCount: 1_000_000, UploadedAt: now.Add(-2 * 24 * time.Hour).UnixMilli()},
		// 偏好拉满，总分和热门打平，但上传更早
		{Id: 3, Affinity: 100, UploadedAt: now.Add(-3 * 24 * time.Hour).UnixMilli()},
	}, nil)
	svc := NewService(repo)
	res, err := svc.Recommend(context.Background(), 123, 20)
	assert.NoError(t, err)
	ids := slice.Map(res, func(idx int, src domain.RankedVideo) int64 {
		return src.Id
	})
	// 2 和 3 同分，平局按上传时间新的在前
	assert.Equal(t, []int64{2, 3, 1}, ids)
}

func TestRecommendationService_Recommend_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	now := time.Now()
	repo := repomocks.NewMockRecommendationRepository(ctrl)
	repo.EXPECT().Candidates(gomock.Any(), int64(0)).Return([]domain.Candidate{
		{Id: 1, UploadedAt: now.UnixMilli()},
		{Id: 2, UploadedAt: now.Add(-time.Hour).UnixMilli()},
		{Id: 3, UploadedAt: now.Add(-2 * time.Hour).UnixMilli()},
	}, nil)
	svc := NewService(repo)
	res, err := svc.Recommend(context.Background(), 0, 2)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}
