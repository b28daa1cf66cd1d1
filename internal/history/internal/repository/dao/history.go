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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type HistoryDAO interface {
	// Upsert 窗口内有记录就原地覆盖时长和时间戳，否则插入新行
	Upsert(ctx context.Context, uid, videoId, durationSeconds int64, window time.Duration) error
	// LatestDuration 最近一次的播放进度，没有记录返回 ErrRecordNotFound
	LatestDuration(ctx context.Context, uid, videoId int64) (int64, error)
	ListByUid(ctx context.Context, uid int64, limit int) ([]WatchRow, error)
	// CleanupDuplicates 每个 (uid, video_id) 只保留 id 最大的一行，
	// 返回删除的行数。重复执行结果一样
	CleanupDuplicates(ctx context.Context) (int64, error)
}

type GORMHistoryDAO struct {
	db *egorm.Component
}

func NewHistoryDAO(db *egorm.Component) *GORMHistoryDAO {
	return &GORMHistoryDAO{
		db: db,
	}
}

func (g *GORMHistoryDAO) Upsert(ctx context.Context, uid, videoId, durationSeconds int64, window time.Duration) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		cutoff := now - window.Milliseconds()
		var h History
		err := tx.Where("uid = ? AND video_id = ? AND watched_at > ?", uid, videoId, cutoff).
			Order("watched_at DESC").
			First(&h).Error
		switch {
		case err == nil:
			return tx.Model(&History{}).Where("id = ?", h.Id).
				Updates(map[string]any{
					"watch_duration": durationSeconds,
					"watched_at":     now,
				}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&History{
				Uid:           uid,
				VideoId:       videoId,
				WatchedAt:     now,
				WatchDuration: durationSeconds,
			}).Error
		default:
			return err
		}
	})
}

func (g *GORMHistoryDAO) LatestDuration(ctx context.Context, uid, videoId int64) (int64, error) {
	var h History
	err := g.db.WithContext(ctx).
		Where("uid = ? AND video_id = ?", uid, videoId).
		Order("watched_at DESC").
		First(&h).Error
	if err != nil {
		return 0, err
	}
	return h.WatchDuration, nil
}

func (g *GORMHistoryDAO) ListByUid(ctx context.Context, uid int64, limit int) ([]WatchRow, error) {
	var rows []WatchRow
	err := g.db.WithContext(ctx).Raw(`
SELECT h.video_id, v.title, v.thumbnail, v.duration, v.views_count,
       u.username, u.avatar, h.watched_at, h.watch_duration
FROM histories h
JOIN videos v ON h.video_id = v.id
JOIN users u ON v.uid = u.id
WHERE h.uid = ?
ORDER BY h.watched_at DESC
LIMIT ?`, uid, limit).Scan(&rows).Error
	return rows, err
}

func (g *GORMHistoryDAO) CleanupDuplicates(ctx context.Context) (int64, error) {
	// MySQL 不允许 DELETE 的子查询直接引用同一张表，套一层派生表绕开
	res := g.db.WithContext(ctx).Exec(`
DELETE FROM histories
WHERE id NOT IN (
    SELECT id FROM (
        SELECT MAX(id) AS id
        FROM histories
        GROUP BY uid, video_id
    ) AS keep
)`)
	return res.RowsAffected, res.Error
}
