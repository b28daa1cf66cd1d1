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

// Video 视频主表。likes_count、dislikes_count 由评价模块在事务里维护，
// views_count 由播放上报维护，这里只负责读
type Video struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Uid         int64  `gorm:"index"`
	Title       string `gorm:"type:varchar(512)"`
	Description string `gorm:"type:text"`
	// VideoKey 资源 key，shortuuid
	VideoKey   string `gorm:"type:varchar(128)"`
	Thumbnail  string `gorm:"type:varchar(128)"`
	CategoryId int64  `gorm:"index"`
	// Duration 视频时长，秒
	Duration      int64
	ViewsCount    int64
	LikesCount    int64
	DislikesCount int64
	Utime         int64
	Ctime         int64
}

type Category struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Name  string `gorm:"type:varchar(128);uniqueIndex"`
	Utime int64
	Ctime int64
}

type Tag struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// Name 已归一化：小写，空格换成下划线
	Name  string `gorm:"type:varchar(128);uniqueIndex"`
	Utime int64
	Ctime int64
}

type VideoTag struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	VideoId int64 `gorm:"uniqueIndex:video_tag_id"`
	TagId   int64 `gorm:"uniqueIndex:video_tag_id"`
	Ctime   int64
}

// VideoInfoRow 播放页联表查询结果
type VideoInfoRow struct {
	Id          int64
	Title       string
	Description string
	VideoKey    string
	Thumbnail   string
	Duration    int64
	ViewsCount  int64
	Username    string
	Ctime       int64
}

// ProfileInfoRow 作者栏联表查询结果
type ProfileInfoRow struct {
	SubscribersCount int64
	LikesCount       int64
	DislikesCount    int64
	Avatar           string
}

// VideoCardRow 列表卡片联表查询结果
type VideoCardRow struct {
	Id         int64
	Title      string
	Thumbnail  string
	Duration   int64
	ViewsCount int64
	Uid        int64
	Username   string
	Avatar     string
	Ctime      int64
}
