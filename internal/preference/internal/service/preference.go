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

	"github.com/clipflow/clipflow/internal/preference/internal/domain"
	"github.com/clipflow/clipflow/internal/preference/internal/repository"
)

// PreferenceService 把用户行为换算成分类偏好分。
// 视频没有分类时这些事件都是 no-op。
type PreferenceService interface {
	// OnWatch 有效观看，播放端停留超过阈值之后上报
	OnWatch(ctx context.Context, uid, videoId int64) error
	// OnReaction 点赞加分，点踩扣分
	OnReaction(ctx context.Context, uid, videoId int64, isLike bool) error
	OnComment(ctx context.Context, uid, videoId int64) error
	// OnSubscribe 频道发布过的每个分类都加一次分
	OnSubscribe(ctx context.Context, uid, channelId int64) error
	ScoresFor(ctx context.Context, uid int64) (map[int64]float64, error)
	// Reset 清空全部偏好，维护用
	Reset(ctx context.Context) (int64, error)
}

type preferenceService struct {
	repo repository.PreferenceRepository
}

func NewService(repo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{
		repo: repo,
	}
}

func (s *preferenceService) OnWatch(ctx context.Context, uid, videoId int64) error {
	return s.applyByVideo(ctx, uid, videoId, domain.WeightWatch)
}

func (s *preferenceService) OnReaction(ctx context.Context, uid, videoId int64, isLike bool) error {
	delta := domain.WeightLike
	if !isLike {
		delta = domain.WeightDislike
	}
	return s.applyByVideo(ctx, uid, videoId, delta)
}

func (s *preferenceService) OnComment(ctx context.Context, uid, videoId int64) error {
	return s.applyByVideo(ctx, uid, videoId, domain.WeightComment)
}

func (s *preferenceService) OnSubscribe(ctx context.Context, uid, channelId int64) error {
	cats, err := s.repo.ChannelCategories(ctx, channelId)
	if err != nil {
		return err
	}
	for _, cat := range cats {
		err = s.repo.Apply(ctx, uid, cat, domain.WeightSubscribe)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *preferenceService) ScoresFor(ctx context.Context, uid int64) (map[int64]float64, error) {
	return s.repo.ScoresFor(ctx, uid)
}

func (s *preferenceService) Reset(ctx context.Context) (int64, error) {
	return s.repo.Reset(ctx)
}

func (s *preferenceService) applyByVideo(ctx context.Context, uid, videoId int64, delta float64) error {
	cat, err := s.repo.VideoCategory(ctx, videoId)
	if err != nil {
		return err
	}
	if cat == 0 {
		// 没有分类的视频不参与偏好统计
		return nil
	}
	return s.repo.Apply(ctx, uid, cat, delta)
}
