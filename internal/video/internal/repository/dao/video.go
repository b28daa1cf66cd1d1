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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrCategoryNotFound 按名字指定的分类不存在
	ErrCategoryNotFound = errors.New("分类不存在")
)

// 唯一索引冲突
const uniqueIndexErrNo uint16 = 1062

type VideoDAO interface {
	Insert(ctx context.Context, v Video) (int64, error)
	// Delete 删掉视频和它的派生数据：评价、评论、标签关联、观看历史。
	// 外键不做级联，清理责任在这里
	Delete(ctx context.Context, videoId int64) error
	AuthorOf(ctx context.Context, videoId int64) (int64, error)
	Info(ctx context.Context, videoId int64) (VideoInfoRow, error)
	ProfileInfo(ctx context.Context, videoId int64) (ProfileInfoRow, error)
	Latest(ctx context.Context, limit int) ([]VideoCardRow, error)
	ByAuthor(ctx context.Context, uid int64, limit int) ([]VideoCardRow, error)
	// Popular 按播放数排，播放数相同比点赞数
	Popular(ctx context.Context, limit int) ([]VideoCardRow, error)
	ListByIds(ctx context.Context, ids []int64) ([]VideoCardRow, error)

	CategoryIdByName(ctx context.Context, name string) (int64, error)
	CategoryNames(ctx context.Context) ([]string, error)
	// CreateCategory 已存在时返回已有分类的 id
	CreateCategory(ctx context.Context, name string) (int64, error)
	DeleteAllCategories(ctx context.Context) error

	// GetOrCreateTag 标签名必须已归一化
	GetOrCreateTag(ctx context.Context, name string) (int64, error)
	// LinkTag 重复关联是幂等的 no-op
	LinkTag(ctx context.Context, videoId, tagId int64) error
	TagsOf(ctx context.Context, videoId int64) ([]string, error)
}

type GORMVideoDAO struct {
	db *egorm.Component
}

func NewVideoDAO(db *egorm.Component) *GORMVideoDAO {
	return &GORMVideoDAO{
		db: db,
	}
}

func (g *GORMVideoDAO) Insert(ctx context.Context, v Video) (int64, error) {
	now := time.Now().UnixMilli()
	v.Ctime = now
	v.Utime = now
	err := g.db.WithContext(ctx).Create(&v).Error
	return v.Id, err
}

func (g *GORMVideoDAO) Delete(ctx context.Context, videoId int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM reactions WHERE video_id = ?", videoId).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM comments WHERE video_id = ?", videoId).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM video_tags WHERE video_id = ?", videoId).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM histories WHERE video_id = ?", videoId).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", videoId).Delete(&Video{}).Error
	})
}

func (g *GORMVideoDAO) AuthorOf(ctx context.Context, videoId int64) (int64, error) {
	var v Video
	err := g.db.WithContext(ctx).
		Select("uid").
		Where("id = ?", videoId).
		First(&v).Error
	return v.Uid, err
}

func (g *GORMVideoDAO) Info(ctx context.Context, videoId int64) (VideoInfoRow, error) {
	var row VideoInfoRow
	res := g.db.WithContext(ctx).Raw(`
SELECT v.id, v.title, v.description, v.video_key, v.thumbnail,
       v.duration, v.views_count, u.username, v.ctime
FROM videos v
JOIN users u ON v.uid = u.id
WHERE v.id = ?`, videoId).Scan(&row)
	if res.Error != nil {
		return VideoInfoRow{}, res.Error
	}
	if res.RowsAffected < 1 {
		return VideoInfoRow{}, ErrRecordNotFound
	}
	return row, nil
}

func (g *GORMVideoDAO) ProfileInfo(ctx context.Context, videoId int64) (ProfileInfoRow, error) {
	var row ProfileInfoRow
	res := g.db.WithContext(ctx).Raw(`
SELECT u.subscribers_count, v.likes_count, v.dislikes_count, u.avatar
FROM videos v
JOIN users u ON v.uid = u.id
WHERE v.id = ?`, videoId).Scan(&row)
	if res.Error != nil {
		return ProfileInfoRow{}, res.Error
	}
	if res.RowsAffected < 1 {
		return ProfileInfoRow{}, ErrRecordNotFound
	}
	return row, nil
}

const videoCardSelect = `
SELECT v.id, v.title, v.thumbnail, v.duration, v.views_count,
       v.uid, u.username, u.avatar, v.ctime
FROM videos v
JOIN users u ON v.uid = u.id`

func (g *GORMVideoDAO) Latest(ctx context.Context, limit int) ([]VideoCardRow, error) {
	var rows []VideoCardRow
	err := g.db.WithContext(ctx).
		Raw(videoCardSelect+" ORDER BY v.ctime DESC LIMIT ?", limit).
		Scan(&rows).Error
	return rows, err
}

func (g *GORMVideoDAO) ByAuthor(ctx context.Context, uid int64, limit int) ([]VideoCardRow, error) {
	var rows []VideoCardRow
	err := g.db.WithContext(ctx).
		Raw(videoCardSelect+" WHERE v.uid = ? ORDER BY v.ctime DESC LIMIT ?", uid, limit).
		Scan(&rows).Error
	return rows, err
}

func (g *GORMVideoDAO) Popular(ctx context.Context, limit int) ([]VideoCardRow, error) {
	var rows []VideoCardRow
	err := g.db.WithContext(ctx).
		Raw(videoCardSelect+" ORDER BY v.views_count DESC, v.likes_count DESC LIMIT ?", limit).
		Scan(&rows).Error
	return rows, err
}

func (g *GORMVideoDAO) ListByIds(ctx context.Context, ids []int64) ([]VideoCardRow, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []VideoCardRow
	err := g.db.WithContext(ctx).
		Raw(videoCardSelect+" WHERE v.id IN ?", ids).
		Scan(&rows).Error
	return rows, err
}

func (g *GORMVideoDAO) CategoryIdByName(ctx context.Context, name string) (int64, error) {
	var c Category
	err := g.db.WithContext(ctx).
		Where("name = ?", name).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrCategoryNotFound
	}
	return c.Id, err
}

func (g *GORMVideoDAO) CategoryNames(ctx context.Context) ([]string, error) {
	var names []string
	err := g.db.WithContext(ctx).Model(&Category{}).
		Select("name").
		Order("name").
		Scan(&names).Error
	return names, err
}

func (g *GORMVideoDAO) CreateCategory(ctx context.Context, name string) (int64, error) {
	now := time.Now().UnixMilli()
	c := Category{
		Name:  name,
		Utime: now,
		Ctime: now,
	}
	err := g.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			return g.CategoryIdByName(ctx, name)
		}
		return 0, err
	}
	return c.Id, nil
}

func (g *GORMVideoDAO) DeleteAllCategories(ctx context.Context) error {
	return g.db.WithContext(ctx).Exec("DELETE FROM categories").Error
}

func (g *GORMVideoDAO) GetOrCreateTag(ctx context.Context, name string) (int64, error) {
	now := time.Now().UnixMilli()
	t := Tag{
		Name:  name,
		Utime: now,
		Ctime: now,
	}
	err := g.db.WithContext(ctx).Create(&t).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
			var existing Tag
			err = g.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
			return existing.Id, err
		}
		return 0, err
	}
	return t.Id, nil
}

func (g *GORMVideoDAO) LinkTag(ctx context.Context, videoId, tagId int64) error {
	err := g.db.WithContext(ctx).Create(&VideoTag{
		VideoId: videoId,
		TagId:   tagId,
		Ctime:   time.Now().UnixMilli(),
	}).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
		return nil
	}
	return err
}

func (g *GORMVideoDAO) TagsOf(ctx context.Context, videoId int64) ([]string, error) {
	var names []string
	err := g.db.WithContext(ctx).Raw(`
SELECT t.name
FROM tags t
JOIN video_tags vt ON t.id = vt.tag_id
WHERE vt.video_id = ?`, videoId).Scan(&names).Error
	return names, err
}
