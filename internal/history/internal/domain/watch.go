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

package domain

import "time"

// DedupWindow 同一个 (uid, video) 在这个窗口内反复播放只保留一条记录，
// 防止来回拖进度条把历史刷满
const DedupWindow = time.Hour

// WatchRecord 历史列表里的一条记录，带上视频和作者信息
type WatchRecord struct {
	VideoId       int64
	Title         string
	Thumbnail     string
	Duration      int64
	ViewsCount    int64
	AuthorName    string
	AuthorAvatar  string
	WatchedAt     int64
	WatchDuration int64
}
