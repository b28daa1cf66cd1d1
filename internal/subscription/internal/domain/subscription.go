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

// Channel 订阅关系里的一端。订阅者和被订阅的频道都是普通用户，
// 这里只是换个视角看同一张 users 表。
type Channel struct {
	Id               int64
	Username         string
	Avatar           string
	SubscribersCount int64
}
