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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/clipflow/clipflow/internal/interactive/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ReactionDAO interface {
	// SetReaction 设置点赞或点踩。明细行和视频计数在同一个事务里变更。
	// 返回值表示状态是否真的变了，X→X 的重复评价不碰存储，返回 false
	SetReaction(ctx context.Context, videoId, uid int64, isLike bool) (bool, error)
	// RemoveReaction 撤销评价。没有评价时是幂等的 no-op
	RemoveReaction(ctx context.Context, videoId, uid int64) error
	GetReaction(ctx context.Context, videoId, uid int64) (Reaction, error)
	// IncrViewCnt 无条件 +1。什么时候算一次"观看"由调用方判定
	IncrViewCnt(ctx context.Context, videoId int64) error
	// LikedVideoIds 用户点赞过的视频，按评价时间倒序
	LikedVideoIds(ctx context.Context, uid int64) ([]int64, error)
}

type GORMReactionDAO struct {
	db *egorm.Component
}

func NewReactionDAO(db *egorm.Component) *GORMReactionDAO {
	return &GORMReactionDAO{
		db: db,
	}
}

func (g *GORMReactionDAO) SetReaction(ctx context.Context, videoId, uid int64, isLike bool) (bool, error) {
	var changed bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var r Reaction
		err := tx.Where("video_id = ? AND uid = ?", videoId, uid).First(&r).Error
		switch {
		case err == nil:
			delta := domain.Transition(domain.StateOf(true, r.IsLike), domain.StateOf(true, isLike))
			if delta.IsZero() {
				// 状态没变，不碰存储
				return nil
			}
			res := tx.Model(&Reaction{}).Where("id = ?", r.Id).
				Updates(map[string]any{
					"is_like": isLike,
					"utime":   now,
				})
			if res.Error != nil {
				return res.Error
			}
			changed = true
			return g.applyCounterDelta(tx, videoId, delta, now)
		case errors.Is(err, gorm.ErrRecordNotFound):
			err = tx.Create(&Reaction{
				Uid:     uid,
				VideoId: videoId,
				IsLike:  isLike,
				Utime:   now,
				Ctime:   now,
			}).Error
			if err != nil {
				return err
			}
			changed = true
			delta := domain.Transition(domain.StateNone, domain.StateOf(true, isLike))
			return g.applyCounterDelta(tx, videoId, delta, now)
		default:
			return err
		}
	})
	return changed, err
}

func (g *GORMReactionDAO) RemoveReaction(ctx context.Context, videoId, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var r Reaction
		err := tx.Where("video_id = ? AND uid = ?", videoId, uid).First(&r).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 本来就没有评价
			return nil
		}
		if err != nil {
			return err
		}
		res := tx.Where("id = ?", r.Id).Delete(&Reaction{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return nil
		}
		delta := domain.Transition(domain.StateOf(true, r.IsLike), domain.StateNone)
		return g.applyCounterDelta(tx, videoId, delta, now)
	})
}

// applyCounterDelta 把状态迁移的增量同步到视频冗余计数上。
// GREATEST 兜底，计数永远不会被减到负数。
func (g *GORMReactionDAO) applyCounterDelta(tx *gorm.DB, videoId int64, delta domain.Delta, now int64) error {
	updates := map[string]any{
		"utime": now,
	}
	if delta.Likes != 0 {
		updates["likes_count"] = gorm.Expr("GREATEST(likes_count + ?, 0)", delta.Likes)
	}
	if delta.Dislikes != 0 {
		updates["dislikes_count"] = gorm.Expr("GREATEST(dislikes_count + ?, 0)", delta.Dislikes)
	}
	return tx.Table("videos").Where("id = ?", videoId).Updates(updates).Error
}

func (g *GORMReactionDAO) GetReaction(ctx context.Context, videoId, uid int64) (Reaction, error) {
	var res Reaction
	err := g.db.WithContext(ctx).
		Where("video_id = ? AND uid = ?", videoId, uid).
		First(&res).Error
	return res, err
}

func (g *GORMReactionDAO) IncrViewCnt(ctx context.Context, videoId int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Table("videos").
		Where("id = ?", videoId).
		Updates(map[string]any{
			"views_count": gorm.Expr("views_count + 1"),
			"utime":       now,
		}).Error
}

func (g *GORMReactionDAO) LikedVideoIds(ctx context.Context, uid int64) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&Reaction{}).
		Select("video_id").
		Where("uid = ? AND is_like = ?", uid, true).
		Order("utime DESC").
		Scan(&ids).Error
	return ids, err
}
