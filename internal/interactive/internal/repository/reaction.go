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

package repository

import (
	"context"
	"errors"

	"github.com/clipflow/clipflow/internal/interactive/internal/domain"
	"github.com/clipflow/clipflow/internal/interactive/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./reaction.go -package=repomocks -destination=mocks/reaction.mock.go ReactionRepository
type ReactionRepository interface {
	// SetReaction 返回值表示评价状态是否真的发生了迁移
	SetReaction(ctx context.Context, videoId, uid int64, isLike bool) (bool, error)
	RemoveReaction(ctx context.Context, videoId, uid int64) error
	// State 查不到行就是 StateNone，不把 NotFound 往上抛
	State(ctx context.Context, videoId, uid int64) (domain.State, error)
	IncrViewCnt(ctx context.Context, videoId int64) error
	LikedVideoIds(ctx context.Context, uid int64) ([]int64, error)
}

type reactionRepository struct {
	reactionDao dao.ReactionDAO
	logger      *elog.Component
}

func NewReactionRepository(reactionDao dao.ReactionDAO) ReactionRepository {
	return &reactionRepository{
		reactionDao: reactionDao,
		logger:      elog.DefaultLogger,
	}
}

func (r *reactionRepository) SetReaction(ctx context.Context, videoId, uid int64, isLike bool) (bool, error) {
	return r.reactionDao.SetReaction(ctx, videoId, uid, isLike)
}

func (r *reactionRepository) RemoveReaction(ctx context.Context, videoId, uid int64) error {
	return r.reactionDao.RemoveReaction(ctx, videoId, uid)
}

func (r *reactionRepository) State(ctx context.Context, videoId, uid int64) (domain.State, error) {
	re, err := r.reactionDao.GetReaction(ctx, videoId, uid)
	switch {
	case err == nil:
		return domain.StateOf(true, re.IsLike), nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return domain.StateNone, nil
	default:
		return domain.StateNone, err
	}
}

func (r *reactionRepository) IncrViewCnt(ctx context.Context, videoId int64) error {
	return r.reactionDao.IncrViewCnt(ctx, videoId)
}

func (r *reactionRepository) LikedVideoIds(ctx context.Context, uid int64) ([]int64, error) {
	return r.reactionDao.LikedVideoIds(ctx, uid)
}
