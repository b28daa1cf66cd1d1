package ioc

import (
	"net/http"
	"strings"

	"github.com/clipflow/clipflow/internal/comment"
	"github.com/clipflow/clipflow/internal/history"
	"github.com/clipflow/clipflow/internal/interactive"
	"github.com/clipflow/clipflow/internal/preference"
	"github.com/clipflow/clipflow/internal/recommendation"
	"github.com/clipflow/clipflow/internal/search"
	"github.com/clipflow/clipflow/internal/subscription"
	"github.com/clipflow/clipflow/internal/user"
	"github.com/clipflow/clipflow/internal/video"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	videoHdl *video.Handler,
	intrHdl *interactive.Handler,
	historyHdl *history.Handler,
	subHdl *subscription.Handler,
	commentHdl *comment.Handler,
	prefHdl *preference.Handler,
	recHdl *recommendation.Handler,
	searchHdl *search.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "clipflow.cn")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	videoHdl.PublicRoutes(res.Engine)
	intrHdl.PublicRoutes(res.Engine)
	subHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	recHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	videoHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)
	historyHdl.PrivateRoutes(res.Engine)
	subHdl.PrivateRoutes(res.Engine)
	commentHdl.PrivateRoutes(res.Engine)
	prefHdl.PrivateRoutes(res.Engine)
	recHdl.PrivateRoutes(res.Engine)
	searchHdl.PrivateRoutes(res.Engine)
	return res
}
