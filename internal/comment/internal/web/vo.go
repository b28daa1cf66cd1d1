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
	"github.com/clipflow/clipflow/internal/comment/internal/domain"
)

type CreateCommentReq struct {
	VideoId int64  `json:"videoId"`
	Content string `json:"content"`
}

type CreateCommentResp struct {
	Id int64 `json:"id"`
}

type VideoReq struct {
	VideoId int64 `json:"videoId"`
}

type Comment struct {
	Id           int64  `json:"id"`
	VideoId      int64  `json:"videoId"`
	Uid          int64  `json:"uid"`
	AuthorName   string `json:"authorName"`
	AuthorAvatar string `json:"authorAvatar"`
	Content      string `json:"content"`
	Ctime        int64  `json:"ctime"`
}

type CommentListResp struct {
	Total    int64     `json:"total"`
	Comments []Comment `json:"comments"`
}

func newComment(src domain.Comment) Comment {
	return Comment{
		Id:           src.Id,
		VideoId:      src.VideoId,
		Uid:          src.Uid,
		AuthorName:   src.AuthorName,
		AuthorAvatar: src.AuthorAvatar,
		Content:      src.Content,
		Ctime:        src.Ctime,
	}
}
