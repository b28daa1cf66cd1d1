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
	"github.com/clipflow/clipflow/internal/subscription/internal/domain"
)

type ChannelReq struct {
	ChannelId int64 `json:"channelId"`
}

type StatusResp struct {
	Subscribed bool `json:"subscribed"`
}

type Channel struct {
	Id               int64  `json:"id"`
	Username         string `json:"username"`
	Avatar           string `json:"avatar"`
	SubscribersCount int64  `json:"subscribersCount"`
}

type ChannelListResp struct {
	Channels []Channel `json:"channels"`
}

func newChannel(src domain.Channel) Channel {
	return Channel{
		Id:               src.Id,
		Username:         src.Username,
		Avatar:           src.Avatar,
		SubscribersCount: src.SubscribersCount,
	}
}
