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

import (
	"github.com/clipflow/clipflow/internal/video/internal/domain"
)

type UploadReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Duration    int64    `json:"duration"`
}

type UploadResp struct {
	Id        int64  `json:"id"`
	VideoKey  string `json:"videoKey"`
	Thumbnail string `json:"thumbnail"`
}

type VideoReq struct {
	VideoId int64 `json:"videoId"`
}

type ListReq struct {
	Limit int `json:"limit,omitempty"`
}

type AuthorReq struct {
	Uid   int64 `json:"uid"`
	Limit int   `json:"limit,omitempty"`
}

type VideoInfoResp struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoKey    string   `json:"videoKey"`
	Thumbnail   string   `json:"thumbnail"`
	Duration    int64    `json:"duration"`
	ViewsCount  int64    `json:"viewsCount"`
	AuthorName  string   `json:"authorName"`
	UploadedAt  int64    `json:"uploadedAt"`
	Tags        []string `json:"tags"`
}

type ProfileInfoResp struct {
	SubscribersCount int64  `json:"subscribersCount"`
	LikesCount       int64  `json:"likesCount"`
	DislikesCount    int64  `json:"dislikesCount"`
	AuthorAvatar     string `json:"authorAvatar"`
}

type VideoCard struct {
	Id           int64  `json:"id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail"`
	Duration     int64  `json:"duration"`
	ViewsCount   int64  `json:"viewsCount"`
	AuthorId     int64  `json:"authorId"`
	AuthorName   string `json:"authorName"`
	AuthorAvatar string `json:"authorAvatar"`
	UploadedAt   int64  `json:"uploadedAt"`
}

type VideoListResp struct {
	Videos []VideoCard `json:"videos"`
}

type CategoriesResp struct {
	Categories []string `json:"categories"`
}

func newVideoCard(src domain.VideoCard) VideoCard {
	return VideoCard{
		Id:           src.Id,
		Title:        src.Title,
		Thumbnail:    src.Thumbnail,
		Duration:     src.Duration,
		ViewsCount:   src.ViewsCount,
		AuthorId:     src.AuthorId,
		AuthorName:   src.AuthorName,
		AuthorAvatar: src.AuthorAvatar,
		UploadedAt:   src.UploadedAt,
	}
}
