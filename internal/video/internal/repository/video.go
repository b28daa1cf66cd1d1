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

	"github.com/clipflow/clipflow/internal/video/internal/domain"
	"github.com/clipflow/clipflow/internal/video/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrCategoryNotFound = dao.ErrCategoryNotFound
	ErrVideoNotFound    = dao.ErrRecordNotFound
)

type VideoRepository interface {
	Create(ctx context.Context, v dao.Video, tags []string) (int64, error)
	Delete(ctx context.Context, videoId int64) error
	AuthorOf(ctx context.Context, videoId int64) (int64, error)
	Info(ctx context.Context, videoId int64) (domain.VideoInfo, error)
	ProfileInfo(ctx context.Context, videoId int64) (domain.ProfileInfo, error)
	Latest(ctx context.Context, limit int) ([]domain.VideoCard, error)
	ByAuthor(ctx context.Context, uid int64, limit int) ([]domain.VideoCard, error)
	Popular(ctx context.Context, limit int) ([]domain.VideoCard, error)
	// ListByIds 结果顺序与传入的 ids 一致
	ListByIds(ctx context.Context, ids []int64) ([]domain.VideoCard, error)
	CategoryIdByName(ctx context.Context, name string) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	ReplaceCategories(ctx context.Context, names []string) error
}

type videoRepository struct {
	videoDao dao.VideoDAO
	logger   *elog.Component
}

func NewVideoRepository(videoDao dao.VideoDAO) VideoRepository {
	return &videoRepository{
		videoDao: videoDao,
		logger:   elog.DefaultLogger,
	}
}

func (r *videoRepository) Create(ctx context.Context, v dao.Video, tags []string) (int64, error) {
	id, err := r.videoDao.Insert(ctx, v)
	if err != nil {
		return 0, err
	}
	for _, tag := range tags {
		tagId, err := r.videoDao.GetOrCreateTag(ctx, tag)
		if err != nil {
			return 0, err
		}
		err = r.videoDao.LinkTag(ctx, id, tagId)
		if err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (r *videoRepository) Delete(ctx context.Context, videoId int64) error {
	return r.videoDao.Delete(ctx, videoId)
}

func (r *videoRepository) AuthorOf(ctx context.Context, videoId int64) (int64, error) {
	return r.videoDao.AuthorOf(ctx, videoId)
}

func (r *videoRepository) Info(ctx context.Context, videoId int64) (domain.VideoInfo, error) {
	row, err := r.videoDao.Info(ctx, videoId)
	if err != nil {
		return domain.VideoInfo{}, err
	}
	tags, err := r.videoDao.TagsOf(ctx, videoId)
	if err != nil {
		return domain.VideoInfo{}, err
	}
	return domain.VideoInfo{
		Id:          row.Id,
		Title:       row.Title,
		Description: row.Description,
		VideoKey:    row.VideoKey,
		Thumbnail:   row.Thumbnail,
		Duration:    row.Duration,
		ViewsCount:  row.ViewsCount,
		AuthorName:  row.Username,
		UploadedAt:  row.Ctime,
		Tags:        tags,
	}, nil
}

func (r *videoRepository) ProfileInfo(ctx context.Context, videoId int64) (domain.ProfileInfo, error) {
	row, err := r.videoDao.ProfileInfo(ctx, videoId)
	if err != nil {
		return domain.ProfileInfo{}, err
	}
	return domain.ProfileInfo{
		SubscribersCount: row.SubscribersCount,
		LikesCount:       row.LikesCount,
		DislikesCount:    row.DislikesCount,
		AuthorAvatar:     row.Avatar,
	}, nil
}

func (r *videoRepository) Latest(ctx context.Context, limit int) ([]domain.VideoCard, error) {
	rows, err := r.videoDao.Latest(ctx, limit)
	return r.toCards(rows), err
}

func (r *videoRepository) ByAuthor(ctx context.Context, uid int64, limit int) ([]domain.VideoCard, error) {
	rows, err := r.videoDao.ByAuthor(ctx, uid, limit)
	return r.toCards(rows), err
}

func (r *videoRepository) Popular(ctx context.Context, limit int) ([]domain.VideoCard, error) {
	rows, err := r.videoDao.Popular(ctx, limit)
	return r.toCards(rows), err
}

func (r *videoRepository) ListByIds(ctx context.Context, ids []int64) ([]domain.VideoCard, error) {
	rows, err := r.videoDao.ListByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	// IN 查询不保序，按传入的 ids 重排
	byId := make(map[int64]dao.VideoCardRow, len(rows))
	for _, row := range rows {
		byId[row.Id] = row
	}
	res := make([]domain.VideoCard, 0, len(rows))
	for _, id := range ids {
		if row, ok := byId[id]; ok {
			res = append(res, r.toCard(row))
		}
	}
	return res, nil
}

func (r *videoRepository) CategoryIdByName(ctx context.Context, name string) (int64, error) {
	return r.videoDao.CategoryIdByName(ctx, name)
}

func (r *videoRepository) Categories(ctx context.Context) ([]string, error) {
	return r.videoDao.CategoryNames(ctx)
}

func (r *videoRepository) ReplaceCategories(ctx context.Context, names []string) error {
	err := r.videoDao.DeleteAllCategories(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		_, err = r.videoDao.CreateCategory(ctx, name)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *videoRepository) toCards(rows []dao.VideoCardRow) []domain.VideoCard {
	return slice.Map(rows, func(idx int, src dao.VideoCardRow) domain.VideoCard {
		return r.toCard(src)
	})
}

func (r *videoRepository) toCard(row dao.VideoCardRow) domain.VideoCard {
	return domain.VideoCard{
		Id:           row.Id,
		Title:        row.Title,
		Thumbnail:    row.Thumbnail,
		Duration:     row.Duration,
		ViewsCount:   row.ViewsCount,
		AuthorId:     row.Uid,
		AuthorName:   row.Username,
		AuthorAvatar: row.Avatar,
		UploadedAt:   row.Ctime,
	}
}
