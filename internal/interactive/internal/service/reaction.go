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

	"github.com/clipflow/clipflow/internal/interactive/internal/domain"
	"github.com/clipflow/clipflow/internal/interactive/internal/repository"
	"github.com/clipflow/clipflow/internal/preference"
	"github.com/gotomicro/ego/core/elog"
)

type ReactionService interface {
	SetReaction(ctx context.Context, videoId, uid int64, isLike bool) error
	RemoveReaction(ctx context.Context, videoId, uid int64) error
	ReactionState(ctx context.Context, videoId, uid int64) (domain.State, error)
	// IncrViewCnt 调用方确认达到停留阈值之后才调这个
	IncrViewCnt(ctx context.Context, videoId int64) error
	LikedVideoIds(ctx context.Context, uid int64) ([]int64, error)
}

type reactionService struct {
	repo    repository.ReactionRepository
	prefSvc preference.Service
	logger  *elog.Component
}

func NewService(repo repository.ReactionRepository, prefSvc preference.Service) ReactionService {
	return &reactionService{
		repo:    repo,
		prefSvc: prefSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *reactionService) SetReaction(ctx context.Context, videoId, uid int64, isLike bool) error {
	changed, err := s.repo.SetReaction(ctx, videoId, uid, isLike)
	if err != nil {
		return err
	}
	// X→X 的重复评价没有状态迁移，也不打偏好分
	if !changed {
		return nil
	}
	// 偏好分更新失败不影响评价本身
	err = s.prefSvc.OnReaction(ctx, uid, videoId, isLike)
	if err != nil {
		s.logger.Error("更新分类偏好失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("videoId", videoId))
	}
	return nil
}

func (s *reactionService) RemoveReaction(ctx context.Context, videoId, uid int64) error {
	// 撤销评价不回退偏好分
	return s.repo.RemoveReaction(ctx, videoId, uid)
}

func (s *reactionService) ReactionState(ctx context.Context, videoId, uid int64) (domain.State, error) {
	return s.repo.State(ctx, videoId, uid)
}

func (s *reactionService) IncrViewCnt(ctx context.Context, videoId int64) error {
	return s.repo.IncrViewCnt(ctx, videoId)
}

func (s *reactionService) LikedVideoIds(ctx context.Context, uid int64) ([]int64, error) {
	return s.repo.LikedVideoIds(ctx, uid)
}
