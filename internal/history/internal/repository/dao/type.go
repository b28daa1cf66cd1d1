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

// History 观看记录表。
// 不是纯追加日志：一小时窗口内同一 (uid, video_id) 的记录原地覆盖，
// 所以 (uid, video_id) 上只建普通索引，不建唯一索引。
type History struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	Uid     int64 `gorm:"index:uid_video_id"`
	VideoId int64 `gorm:"index:uid_video_id"`
	// WatchedAt 毫秒时间戳
	WatchedAt int64 `gorm:"index"`
	// WatchDuration 已播放秒数
	WatchDuration int64
}

// WatchRow 历史列表联表查询结果
type WatchRow struct {
	VideoId       int64
	Title         string
	Thumbnail     string
	Duration      int64
	ViewsCount    int64
	Username      string
	Avatar        string
	WatchedAt     int64
	WatchDuration int64
}
