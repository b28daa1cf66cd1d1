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

	"github.com/clipflow/clipflow/internal/history/internal/domain"
	"github.com/clipflow/clipflow/internal/history/internal/repository"
)

type HistoryService interface {
	// RecordWatch 播放进度上报。非正的时长是 UI 抖动，直接忽略
	RecordWatch(ctx context.Context, uid, videoId, durationSeconds int64) error
	WatchDuration(ctx context.Context, uid, videoId int64) (int64, error)
	List(ctx context.Context, uid int64, limit int) ([]domain.WatchRecord, error)
	// CleanupDuplicates 修复性维护操作，随时可以跑，幂等
	CleanupDuplicates(ctx context.Context) (int64, error)
}

type historyService struct {
	repo repository.HistoryRepository
}

func NewService(repo repository.HistoryRepository) HistoryService {
	return &historyService{
		repo: repo,
	}
}

func (s *historyService) RecordWatch(ctx context.Context, uid, videoId, durationSeconds int64) error {
	if durationSeconds <= 0 {
		return nil
	}
	return s.repo.RecordWatch(ctx, uid, videoId, durationSeconds)
}

func (s *historyService) WatchDuration(ctx context.Context, uid, videoId int64) (int64, error) {
	return s.repo.WatchDuration(ctx, uid, videoId)
}

func (s *historyService) List(ctx context.Context, uid int64, limit int) ([]domain.WatchRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.List(ctx, uid, limit)
}

func (s *historyService) CleanupDuplicates(ctx context.Context) (int64, error) {
	return s.repo.CleanupDuplicates(ctx)
}
