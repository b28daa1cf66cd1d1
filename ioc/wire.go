//go:build wireinject

package ioc

import (
	"github.com/clipflow/clipflow/internal/comment"
	"github.com/clipflow/clipflow/internal/history"
	"github.com/clipflow/clipflow/internal/interactive"
	"github.com/clipflow/clipflow/internal/preference"
	"github.com/clipflow/clipflow/internal/recommendation"
	"github.com/clipflow/clipflow/internal/search"
	"github.com/clipflow/clipflow/internal/subscription"
	"github.com/clipflow/clipflow/internal/user"
	"github.com/clipflow/clipflow/internal/video"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		// 偏好模块要先起来，点赞、评论、订阅都会打它的分
		preference.InitModule,
		wire.FieldsOf(new(*preference.Module), "Hdl"),
		interactive.InitModule,
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		subscription.InitModule,
		wire.FieldsOf(new(*subscription.Module), "Hdl"),
		comment.InitModule,
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		history.InitModule,
		wire.FieldsOf(new(*history.Module), "Hdl"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		video.InitModule,
		wire.FieldsOf(new(*video.Module), "Hdl"),
		recommendation.InitModule,
		wire.FieldsOf(new(*recommendation.Module), "Hdl"),
		search.InitModule,
		wire.FieldsOf(new(*search.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
