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

// Comment 视频评论。只增不改，没有编辑、回复和删除
type Comment struct {
	Id           int64
	VideoId      int64
	Uid          int64
	AuthorName   string
	AuthorAvatar string
	Content      string
	Ctime        int64
}
