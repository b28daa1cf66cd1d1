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
	"errors"
	"strings"

	"github.com/clipflow/clipflow/internal/interactive"
	"github.com/clipflow/clipflow/internal/video/internal/domain"
	"github.com/clipflow/clipflow/internal/video/internal/repository"
	"github.com/clipflow/clipflow/internal/video/internal/repository/dao"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrUnknownCategory = repository.ErrCategoryNotFound
	ErrVideoNotFound   = repository.ErrVideoNotFound
	// ErrNotOwner 只有作者本人能删自己的视频
	ErrNotOwner = errors.New("不是视频作者")
)

// 默认分类，维护接口重建分类目录时用
var seedCategories = []string{
	"教育", "娱乐", "影视", "游戏", "音乐",
	"生活", "运动健身", "个人成长", "科技", "新闻",
}

type VideoService interface {
	// Upload 创建视频记录并返回资源 key，客户端拿着 key 上传文件
	Upload(ctx context.Context, uid int64, v domain.UploadVideo) (domain.UploadReceipt, error)
	// Delete 连带清理评价、评论、标签关联和观看历史
	Delete(ctx context.Context, videoId, uid int64) error
	Info(ctx context.Context, videoId int64) (domain.VideoInfo, error)
	ProfileInfo(ctx context.Context, videoId int64) (domain.ProfileInfo, error)
	Latest(ctx context.Context, limit int) ([]domain.VideoCard, error)
	ByAuthor(ctx context.Context, uid int64, limit int) ([]domain.VideoCard, error)
	Popular(ctx context.Context, limit int) ([]domain.VideoCard, error)
	// Liked 用户点赞过的视频，按点赞时间倒序
	Liked(ctx context.Context, uid int64) ([]domain.VideoCard, error)
	Categories(ctx context.Context) ([]string, error)
	// SeedCategories 重建默认分类目录，维护用
	SeedCategories(ctx context.Context) error
}

type videoService struct {
	repo    repository.VideoRepository
	intrSvc interactive.Service
}

func NewService(repo repository.VideoRepository, intrSvc interactive.Service) VideoService {
	return &videoService{
		repo:    repo,
		intrSvc: intrSvc,
	}
}

func (s *videoService) Upload(ctx context.Context, uid int64, v domain.UploadVideo) (domain.UploadReceipt, error) {
	var categoryId int64
	if v.Category != "" {
		var err error
		categoryId, err = s.repo.CategoryIdByName(ctx, v.Category)
		if err != nil {
			return domain.UploadReceipt{}, err
		}
	}
	videoKey := shortuuid.New()
	thumbnail := shortuuid.New()
	id, err := s.repo.Create(ctx, dao.Video{
		Uid:         uid,
		Title:       v.Title,
		Description: v.Description,
		VideoKey:    videoKey,
		Thumbnail:   thumbnail,
		CategoryId:  categoryId,
		Duration:    v.Duration,
	}, normalizeTags(v.Tags))
	if err != nil {
		return domain.UploadReceipt{}, err
	}
	return domain.UploadReceipt{
		Id:        id,
		VideoKey:  videoKey,
		Thumbnail: thumbnail,
	}, nil
}

func (s *videoService) Delete(ctx context.Context, videoId, uid int64) error {
	author, err := s.repo.AuthorOf(ctx, videoId)
	if err != nil {
		return err
	}
	if author != uid {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, videoId)
}

func (s *videoService) Info(ctx context.Context, videoId int64) (domain.VideoInfo, error) {
	return s.repo.Info(ctx, videoId)
}

func (s *videoService) ProfileInfo(ctx context.Context, videoId int64) (domain.ProfileInfo, error) {
	return s.repo.ProfileInfo(ctx, videoId)
}

func (s *videoService) Latest(ctx context.Context, limit int) ([]domain.VideoCard, error) {
	return s.repo.Latest(ctx, normalizeLimit(limit, 20))
}

func (s *videoService) ByAuthor(ctx context.Context, uid int64, limit int) ([]domain.VideoCard, error) {
	return s.repo.ByAuthor(ctx, uid, normalizeLimit(limit, 50))
}

func (s *videoService) Popular(ctx context.Context, limit int) ([]domain.VideoCard, error) {
	return s.repo.Popular(ctx, normalizeLimit(limit, 20))
}

func (s *videoService) Liked(ctx context.Context, uid int64) ([]domain.VideoCard, error) {
	ids, err := s.intrSvc.LikedVideoIds(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByIds(ctx, ids)
}

func (s *videoService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *videoService) SeedCategories(ctx context.Context) error {
	return s.repo.ReplaceCategories(ctx, seedCategories)
}

// normalizeTags 小写、空格换下划线，空白标签丢弃
func normalizeTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tag = strings.ToLower(tag)
		tag = strings.ReplaceAll(tag, " ", "_")
		res = append(res, tag)
	}
	return res
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}
