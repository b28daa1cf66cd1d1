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
	"database/sql"
	"math"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceDAO interface {
	// Apply 按增量更新偏好分，新分数 = max(0, 旧分数 + delta)。
	// 没有记录时插入，插入值同样不会是负数
	Apply(ctx context.Context, uid, categoryId int64, delta float64) error
	// VideoCategory 视频所属分类，没有分类时返回 0
	VideoCategory(ctx context.Context, videoId int64) (int64, error)
	// ChannelCategories 频道发布过视频的全部分类，去重
	ChannelCategories(ctx context.Context, channelId int64) ([]int64, error)
	ListByUid(ctx context.Context, uid int64) ([]UserPreference, error)
	// ResetAll 清空全部偏好，维护用
	ResetAll(ctx context.Context) (int64, error)
}

type GORMPreferenceDAO struct {
	db *egorm.Component
}

func NewPreferenceDAO(db *egorm.Component) *GORMPreferenceDAO {
	return &GORMPreferenceDAO{
		db: db,
	}
}

func (g *GORMPreferenceDAO) Apply(ctx context.Context, uid, categoryId int64, delta float64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "category_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"score": gorm.Expr("GREATEST(score + ?, 0)", delta),
			"utime": now,
		}),
	}).Create(&UserPreference{
		Uid:        uid,
		CategoryId: categoryId,
		Score:      math.Max(0, delta),
		Utime:      now,
		Ctime:      now,
	}).Error
}

func (g *GORMPreferenceDAO) VideoCategory(ctx context.Context, videoId int64) (int64, error) {
	var cat sql.NullInt64
	err := g.db.WithContext(ctx).
		Raw("SELECT category_id FROM videos WHERE id = ?", videoId).
		Scan(&cat).Error
	if err != nil {
		return 0, err
	}
	if !cat.Valid {
		return 0, nil
	}
	return cat.Int64, nil
}

func (g *GORMPreferenceDAO) ChannelCategories(ctx context.Context, channelId int64) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).
		Raw("SELECT DISTINCT category_id FROM videos WHERE uid = ? AND category_id > 0", channelId).
		Scan(&ids).Error
	return ids, err
}

func (g *GORMPreferenceDAO) ListByUid(ctx context.Context, uid int64) ([]UserPreference, error) {
	var res []UserPreference
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Find(&res).Error
	return res, err
}

func (g *GORMPreferenceDAO) ResetAll(ctx context.Context) (int64, error) {
	res := g.db.WithContext(ctx).Exec("DELETE FROM user_preferences")
	return res.RowsAffected, res.Error
}
