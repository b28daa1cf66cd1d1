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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    State
		to      State
		wantRes Delta
	}{
		{
			name:    "无 -> 点赞",
			from:    StateNone,
			to:      StateLiked,
			wantRes: Delta{Likes: 1},
		},
		{
			name:    "无 -> 点踩",
			from:    StateNone,
			to:      StateDisliked,
			wantRes: Delta{Dislikes: 1},
		},
		{
			name:    "点赞 -> 点踩",
			from:    StateLiked,
			to:      StateDisliked,
			wantRes: Delta{Likes: -1, Dislikes: 1},
		},
		{
			name:    "点踩 -> 点赞",
			from:    StateDisliked,
			to:      StateLiked,
			wantRes: Delta{Likes: 1, Dislikes: -1},
		},
		{
			name:    "点赞 -> 撤销",
			from:    StateLiked,
			to:      StateNone,
			wantRes: Delta{Likes: -1},
		},
		{
			name:    "点踩 -> 撤销",
			from:    StateDisliked,
			to:      StateNone,
			wantRes: Delta{Dislikes: -1},
		},
		{
			name:    "点赞 -> 点赞，不产生增量",
			from:    StateLiked,
			to:      StateLiked,
			wantRes: Delta{},
		},
		{
			name:    "无 -> 无，不产生增量",
			from:    StateNone,
			to:      StateNone,
			wantRes: Delta{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Transition(tc.from, tc.to)
			assert.Equal(t, tc.wantRes, res)
			assert.Equal(t, tc.from == tc.to, res.IsZero())
		})
	}
}

// 点赞 -> 点踩 -> 点赞 -> 撤销，增量之和应该回到原点
func TestTransition_RoundTrip(t *testing.T) {
	path := []State{StateNone, StateLiked, StateDisliked, StateLiked, StateNone}
	var likes, dislikes int
	for i := 1; i < len(path); i++ {
		d := Transition(path[i-1], path[i])
		likes += d.Likes
		dislikes += d.Dislikes
	}
	assert.Equal(t, 0, likes)
	assert.Equal(t, 0, dislikes)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateNone, StateOf(false, true))
	assert.Equal(t, StateNone, StateOf(false, false))
	assert.Equal(t, StateLiked, StateOf(true, true))
	assert.Equal(t, StateDisliked, StateOf(true, false))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "none", StateNone.String())
	assert.Equal(t, "liked", StateLiked.String())
	assert.Equal(t, "disliked", StateDisliked.String())
}
