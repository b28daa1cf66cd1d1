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

// UploadVideo 上传请求。Category 按名字指定，可以为空；
// 资源 key 由服务端生成，客户端拿着 key 走上传通道
type UploadVideo struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Duration    int64
}

// UploadReceipt 上传结果，客户端按 key 上传视频文件和封面
type UploadReceipt struct {
	Id        int64
	VideoKey  string
	Thumbnail string
}

// VideoInfo 播放页信息
type VideoInfo struct {
	Id          int64
	Title       string
	Description string
	VideoKey    string
	Thumbnail   string
	Duration    int64
	ViewsCount  int64
	AuthorName  string
	UploadedAt  int64
	Tags        []string
}

// ProfileInfo 播放页作者栏信息
type ProfileInfo struct {
	SubscribersCount int64
	LikesCount       int64
	DislikesCount    int64
	AuthorAvatar     string
}

// VideoCard 列表卡片
type VideoCard struct {
	Id           int64
	Title        string
	Thumbnail    string
	Duration     int64
	ViewsCount   int64
	AuthorId     int64
	AuthorName   string
	AuthorAvatar string
	UploadedAt   int64
}
