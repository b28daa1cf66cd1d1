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

package web

import "github.com/clipflow/clipflow/internal/history/internal/domain"

type RecordWatchReq struct {
	VideoId int64 `json:"videoId"`
	// 已播放秒数
	DurationSeconds int64 `json:"durationSeconds"`
}

type VideoReq struct {
	VideoId int64 `json:"videoId"`
}

type ListReq struct {
	Limit int `json:"limit"`
}

type WatchDurationResp struct {
	DurationSeconds int64 `json:"durationSeconds"`
}

type WatchRecord struct {
	VideoId       int64  `json:"videoId"`
	Title         string `json:"title"`
	Thumbnail     string `json:"thumbnail"`
	Duration      int64  `json:"duration"`
	ViewsCount    int64  `json:"viewsCount"`
	AuthorName    string `json:"authorName"`
	AuthorAvatar  string `json:"authorAvatar"`
	WatchedAt     int64  `json:"watchedAt"`
	WatchDuration int64  `json:"watchDuration"`
}

func newWatchRecord(r domain.WatchRecord) WatchRecord {
	return WatchRecord{
		VideoId:       r.VideoId,
		Title:         r.Title,
		Thumbnail:     r.Thumbnail,
		Duration:      r.Duration,
		ViewsCount:    r.ViewsCount,
		AuthorName:    r.AuthorName,
		AuthorAvatar:  r.AuthorAvatar,
		WatchedAt:     r.WatchedAt,
		WatchDuration: r.WatchDuration,
	}
}

type ListResp struct {
	Records []WatchRecord `json:"records"`
}

type CleanupResp struct {
	Deleted int64 `json:"deleted"`
}
