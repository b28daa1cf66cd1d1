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

package interactive

import (
	"sync"

	"github.com/clipflow/clipflow/internal/interactive/internal/repository"
	"github.com/clipflow/clipflow/internal/interactive/internal/repository/dao"
	"github.com/clipflow/clipflow/internal/interactive/internal/service"
	"github.com/clipflow/clipflow/internal/interactive/internal/web"
	"github.com/clipflow/clipflow/internal/preference"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, prefModule *preference.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		wire.FieldsOf(new(*preference.Module), "Svc"),
		repository.NewReactionRepository,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ReactionDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewReactionDAO(db)
}
