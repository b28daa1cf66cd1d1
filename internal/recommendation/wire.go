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

//go:build wireinject

package recommendation

import (
	"github.com/clipflow/clipflow/internal/recommendation/internal/repository"
	"github.com/clipflow/clipflow/internal/recommendation/internal/repository/dao"
	"github.com/clipflow/clipflow/internal/recommendation/internal/service"
	"github.com/clipflow/clipflow/internal/recommendation/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

// 推荐模块没有自己的表，直接读视频、用户和偏好表
func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		dao.NewRecommendationDAO,
		repository.NewRecommendationRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
