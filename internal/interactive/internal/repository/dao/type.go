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

// Reaction 评价明细表。
// (uid, video_id) 上的唯一索引保证一个用户对一个视频至多一行，
// 视频上的 likes_count/dislikes_count 冗余计数必须和这张表的行数一致。
type Reaction struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	Uid     int64 `gorm:"uniqueIndex:uid_video_id"`
	VideoId int64 `gorm:"uniqueIndex:uid_video_id"`
	// true => 点赞，false => 点踩
	IsLike bool
	Utime  int64
	Ctime  int64
}
