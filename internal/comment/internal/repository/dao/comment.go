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
	"time"

	"github.com/ego-component/egorm"
)

type CommentDAO interface {
	// Insert 返回新评论的 id
	Insert(ctx context.Context, c Comment) (int64, error)
	// ListByVideo 带作者信息的评论列表，新的在前
	ListByVideo(ctx context.Context, videoId int64) ([]CommentRow, error)
	CountByVideo(ctx context.Context, videoId int64) (int64, error)
}

type GORMCommentDAO struct {
	db *egorm.Component
}

func NewCommentDAO(db *egorm.Component) *GORMCommentDAO {
	return &GORMCommentDAO{
		db: db,
	}
}

func (g *GORMCommentDAO) Insert(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *GORMCommentDAO) ListByVideo(ctx context.Context, videoId int64) ([]CommentRow, error) {
	var rows []CommentRow
	err := g.db.WithContext(ctx).Raw(`
SELECT c.id, c.video_id, c.uid, u.username, u.avatar, c.content, c.ctime
FROM comments c
JOIN users u ON c.uid = u.id
WHERE c.video_id = ?
ORDER BY c.ctime DESC`, videoId).Scan(&rows).Error
	return rows, err
}

func (g *GORMCommentDAO) CountByVideo(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Comment{}).
		Where("video_id = ?", videoId).
		Count(&count).Error
	return count, err
}
