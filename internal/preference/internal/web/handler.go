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

import (
	"github.com/clipflow/clipflow/internal/preference/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.PreferenceService
	logger *elog.Component
}

func NewHandler(svc service.PreferenceService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/preferences")
	// 点赞、评论、订阅产生的偏好变更在各自的服务里同步触发，
	// 观看是例外：有没有看满阈值只有播放端知道，由它上报
	g.POST("/watch", ginx.BS[VideoReq](h.Watch))
	g.POST("/scores", ginx.S(h.Scores))
	g.POST("/reset", ginx.S(h.Reset))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Watch(ctx *ginx.Context, req VideoReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.OnWatch(ctx, sess.Claims().Uid, req.VideoId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Scores(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	scores, err := h.svc.ScoresFor(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ScoresResp{Scores: scores},
	}, nil
}

func (h *Handler) Reset(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	cnt, err := h.svc.Reset(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ResetResp{Deleted: cnt},
	}, nil
}
