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

	"github.com/clipflow/clipflow/internal/history/internal/domain"
	"github.com/clipflow/clipflow/internal/history/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

type HistoryRepository interface {
	RecordWatch(ctx context.Context, uid, videoId, durationSeconds int64) error
	// WatchDuration 没有记录时返回 0，不报错
	WatchDuration(ctx context.Context, uid, videoId int64) (int64, error)
	List(ctx context.Context, uid int64, limit int) ([]domain.WatchRecord, error)
	CleanupDuplicates(ctx context.Context) (int64, error)
}

type historyRepository struct {
	historyDao dao.HistoryDAO
	logger     *elog.Component
}

func NewHistoryRepository(historyDao dao.HistoryDAO) HistoryRepository {
	return &historyRepository{
		historyDao: historyDao,
		logger:     elog.DefaultLogger,
	}
}

func (r *historyRepository) RecordWatch(ctx context.Context, uid, videoId, durationSeconds int64) error {
	return r.historyDao.Upsert(ctx, uid, videoId, durationSeconds, domain.DedupWindow)
}

func (r *historyRepository) WatchDuration(ctx context.Context, uid, videoId int64) (int64, error) {
	d, err := r.historyDao.LatestDuration(ctx, uid, videoId)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return 0, nil
	}
	return d, err
}

func (r *historyRepository) List(ctx context.Context, uid int64, limit int) ([]domain.WatchRecord, error) {
	rows, err := r.historyDao.ListByUid(ctx, uid, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.WatchRow) domain.WatchRecord {
		return r.toDomain(src)
	}), nil
}

func (r *historyRepository) CleanupDuplicates(ctx context.Context) (int64, error) {
	return r.historyDao.CleanupDuplicates(ctx)
}

func (r *historyRepository) toDomain(row dao.WatchRow) domain.WatchRecord {
	return domain.WatchRecord{
		VideoId:       row.VideoId,
		Title:         row.Title,
		Thumbnail:     row.Thumbnail,
		Duration:      row.Duration,
		ViewsCount:    row.ViewsCount,
		AuthorName:    row.Username,
		AuthorAvatar:  row.Avatar,
		WatchedAt:     row.WatchedAt,
		WatchDuration: row.WatchDuration,
	}
}
