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

// UserPreference 用户对单个分类的累计偏好分。
// 只通过 Apply 的原子增量修改，不允许直接写 score。
type UserPreference struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	Uid        int64 `gorm:"uniqueIndex:uid_category_id"`
	CategoryId int64 `gorm:"uniqueIndex:uid_category_id"`
	Score      float64
	Utime      int64
	Ctime      int64
}
