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

// Subscription 订阅关系。唯一索引兜底，同一对 (subscriber, channel)
// 并发重复订阅也只会落一行。
type Subscription struct {
	Id           int64 `gorm:"primaryKey,autoIncrement"`
	SubscriberId int64 `gorm:"uniqueIndex:sub_channel_id"`
	ChannelId    int64 `gorm:"uniqueIndex:sub_channel_id"`
	Utime        int64
	Ctime        int64
}

// ChannelRow 订阅列表联表查询结果
type ChannelRow struct {
	Id               int64
	Username         string
	Avatar           string
	SubscribersCount int64
}
