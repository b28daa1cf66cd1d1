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
	"github.com/clipflow/clipflow/internal/interactive/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.ReactionService
	logger *elog.Component
}

func NewHandler(svc service.ReactionService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/reactions")
	g.POST("/set", ginx.BS[SetReactionReq](h.SetReaction))
	g.POST("/remove", ginx.BS[VideoReq](h.RemoveReaction))
	g.POST("/state", ginx.BS[VideoReq](h.ReactionState))
	g.POST("/liked", ginx.S(h.Liked))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 播放计数不要求登录，由播放器在停留超过阈值之后上报
	server.POST("/videos/view", ginx.B[VideoReq](h.IncrView))
}

func (h *Handler) SetReaction(ctx *ginx.Context, req SetReactionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetReaction(ctx, req.VideoId, sess.Claims().Uid, req.IsLike)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RemoveReaction(ctx *ginx.Context, req VideoReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveReaction(ctx, req.VideoId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ReactionState(ctx *ginx.Context, req VideoReq, sess session.Session) (ginx.Result, error) {
	state, err := h.svc.ReactionState(ctx, req.VideoId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReactionStateResp{State: state.String()},
	}, nil
}

func (h *Handler) Liked(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ids, err := h.svc.LikedVideoIds(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: VideoIdsResp{VideoIds: ids},
	}, nil
}

func (h *Handler) IncrView(ctx *ginx.Context, req VideoReq) (ginx.Result, error) {
	err := h.svc.IncrViewCnt(ctx, req.VideoId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
