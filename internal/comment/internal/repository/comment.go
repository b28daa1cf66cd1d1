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

	"github.com/clipflow/clipflow/internal/comment/internal/domain"
	"github.com/clipflow/clipflow/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

type CommentRepository interface {
	Create(ctx context.Context, uid, videoId int64, content string) (int64, error)
	List(ctx context.Context, videoId int64) ([]domain.Comment, error)
	Count(ctx context.Context, videoId int64) (int64, error)
}

type commentRepository struct {
	commentDao dao.CommentDAO
	logger     *elog.Component
}

func NewCommentRepository(commentDao dao.CommentDAO) CommentRepository {
	return &commentRepository{
		commentDao: commentDao,
		logger:     elog.DefaultLogger,
	}
}

func (r *commentRepository) Create(ctx context.Context, uid, videoId int64, content string) (int64, error) {
	return r.commentDao.Insert(ctx, dao.Comment{
		Uid:     uid,
		VideoId: videoId,
		Content: content,
	})
}

func (r *commentRepository) List(ctx context.Context, videoId int64) ([]domain.Comment, error) {
	rows, err := r.commentDao.ListByVideo(ctx, videoId)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.CommentRow) domain.Comment {
		return domain.Comment{
			Id:           src.Id,
			VideoId:      src.VideoId,
			Uid:          src.Uid,
			AuthorName:   src.Username,
			AuthorAvatar: src.Avatar,
			Content:      src.Content,
			Ctime:        src.Ctime,
		}
	}), nil
}

func (r *commentRepository) Count(ctx context.Context, videoId int64) (int64, error) {
	return r.commentDao.CountByVideo(ctx, videoId)
}
