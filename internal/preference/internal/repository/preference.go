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

	"github.com/clipflow/clipflow/internal/preference/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type PreferenceRepository interface {
	Apply(ctx context.Context, uid, categoryId int64, delta float64) error
	VideoCategory(ctx context.Context, videoId int64) (int64, error)
	ChannelCategories(ctx context.Context, channelId int64) ([]int64, error)
	// ScoresFor 用户全部分类的偏好分，按分类 id 索引
	ScoresFor(ctx context.Context, uid int64) (map[int64]float64, error)
	Reset(ctx context.Context) (int64, error)
}

type preferenceRepository struct {
	prefDao dao.PreferenceDAO
	logger  *elog.Component
}

func NewPreferenceRepository(prefDao dao.PreferenceDAO) PreferenceRepository {
	return &preferenceRepository{
		prefDao: prefDao,
		logger:  elog.DefaultLogger,
	}
}

func (r *preferenceRepository) Apply(ctx context.Context, uid, categoryId int64, delta float64) error {
	return r.prefDao.Apply(ctx, uid, categoryId, delta)
}

func (r *preferenceRepository) VideoCategory(ctx context.Context, videoId int64) (int64, error) {
	return r.prefDao.VideoCategory(ctx, videoId)
}

func (r *preferenceRepository) ChannelCategories(ctx context.Context, channelId int64) ([]int64, error) {
	return r.prefDao.ChannelCategories(ctx, channelId)
}

func (r *preferenceRepository) ScoresFor(ctx context.Context, uid int64) (map[int64]float64, error) {
	prefs, err := r.prefDao.ListByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	scores := make(map[int64]float64, len(prefs))
	for _, p := range prefs {
		scores[p.CategoryId] = p.Score
	}
	return scores, nil
}

func (r *preferenceRepository) Reset(ctx context.Context) (int64, error) {
	return r.prefDao.ResetAll(ctx)
}
