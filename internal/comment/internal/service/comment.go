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

	"github.com/clipflow/clipflow/internal/comment/internal/domain"
	"github.com/clipflow/clipflow/internal/comment/internal/repository"
	"github.com/clipflow/clipflow/internal/preference"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyContent 空白评论
var ErrEmptyContent = errors.New("评论内容为空")

type CommentService interface {
	// Create 发表评论，返回新评论的 id
	Create(ctx context.Context, uid, videoId int64, content string) (int64, error)
	// List 评论列表和总数，新的在前
	List(ctx context.Context, videoId int64) ([]domain.Comment, int64, error)
}

type commentService struct {
	repo    repository.CommentRepository
	prefSvc preference.Service
	logger  *elog.Component
}

func NewService(repo repository.CommentRepository, prefSvc preference.Service) CommentService {
	return &commentService{
		repo:    repo,
		prefSvc: prefSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *commentService) Create(ctx context.Context, uid, videoId int64, content string) (int64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return 0, ErrEmptyContent
	}
	id, err := s.repo.Create(ctx, uid, videoId, content)
	if err != nil {
		return 0, err
	}
	// 偏好分更新失败不影响评论本身
	err = s.prefSvc.OnComment(ctx, uid, videoId)
	if err != nil {
		s.logger.Error("更新分类偏好失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("videoId", videoId))
	}
	return id, nil
}

func (s *commentService) List(ctx context.Context, videoId int64) ([]domain.Comment, int64, error) {
	var (
		eg       errgroup.Group
		comments []domain.Comment
		total    int64
	)
	eg.Go(func() error {
		var err error
		comments, err = s.repo.List(ctx, videoId)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, videoId)
		return err
	})
	return comments, total, eg.Wait()
}
