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

// State 用户对单个视频的评价状态，一个 (uid, video) 至多一条记录
type State uint8

const (
	// StateNone 没有任何评价
	StateNone State = iota
	// StateLiked 点赞
	StateLiked
	// StateDisliked 点踩
	StateDisliked
)

func (s State) String() string {
	switch s {
	case StateLiked:
		return "liked"
	case StateDisliked:
		return "disliked"
	default:
		return "none"
	}
}

// StateOf is_like 明细行到状态的映射
func StateOf(exists bool, isLike bool) State {
	if !exists {
		return StateNone
	}
	if isLike {
		return StateLiked
	}
	return StateDisliked
}

// Delta 状态迁移时，视频冗余计数需要同步变动的量
type Delta struct {
	Likes    int
	Dislikes int
}

// IsZero 没有任何计数变化，说明是无效迁移，不需要碰存储
func (d Delta) IsZero() bool {
	return d.Likes == 0 && d.Dislikes == 0
}

// Transition 计算从 from 到 to 的计数增量。
// X -> X 返回零值，调用方据此跳过写库。
func Transition(from, to State) Delta {
	if from == to {
		return Delta{}
	}
	var d Delta
	switch from {
	case StateLiked:
		d.Likes--
	case StateDisliked:
		d.Dislikes--
	}
	switch to {
	case StateLiked:
		d.Likes++
	case StateDisliked:
		d.Dislikes++
	}
	return d
}

// Reaction 评价明细
type Reaction struct {
	Uid     int64
	VideoId int64
	IsLike  bool
}
