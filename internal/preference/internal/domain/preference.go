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

import "time"

// 各类行为对分类偏好分的增量。
// 踩是唯一的负权重，分数在存储层被钳在 0 以上。
const (
	WeightWatch     = 3.0
	WeightSubscribe = 5.0
	WeightLike      = 5.0
	WeightDislike   = -7.0
	WeightComment   = 2.0
)

// DwellThreshold 播放器停留超过这个时长才算一次有效观看，
// 由播放端判定之后再上报观看事件
const DwellThreshold = 7 * time.Second

// CategoryScore 用户在单个分类上的偏好分
type CategoryScore struct {
	CategoryId int64
	Score      float64
}
