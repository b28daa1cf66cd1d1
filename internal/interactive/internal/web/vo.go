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

type SetReactionReq struct {
	VideoId int64 `json:"videoId"`
	// true => 点赞
	// false => 点踩
	IsLike bool `json:"isLike"`
}

type VideoReq struct {
	VideoId int64 `json:"videoId"`
}

type ReactionStateResp struct {
	// none / liked / disliked
	State string `json:"state"`
}

type VideoIdsResp struct {
	VideoIds []int64 `json:"videoIds"`
}
