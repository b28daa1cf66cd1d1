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

type Comment struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	VideoId int64  `gorm:"index"`
	Uid     int64  `gorm:"index"`
	Content string `gorm:"type:text"`
	Utime   int64
	Ctime   int64
}

// CommentRow 评论列表联表查询结果
type CommentRow struct {
	Id       int64
	VideoId  int64
	Uid      int64
	Username string
	Avatar   string
	Content  string
	Ctime    int64
}
