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
	"github.com/clipflow/clipflow/internal/subscription/internal/domain"
	"github.com/clipflow/clipflow/internal/subscription/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.SubscriptionService
	logger *elog.Component
}

func NewHandler(svc service.SubscriptionService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/subscriptions")
	g.POST("/subscribe", ginx.BS[ChannelReq](h.Subscribe))
	g.POST("/unsubscribe", ginx.BS[ChannelReq](h.Unsubscribe))
	g.POST("/status", ginx.BS[ChannelReq](h.Status))
	g.POST("/channels", ginx.S(h.Channels))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 频道粉丝列表是公开数据
	server.POST("/subscriptions/subscribers", ginx.B[ChannelReq](h.Subscribers))
}

func (h *Handler) Subscribe(ctx *ginx.Context, req ChannelReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Subscribe(ctx, sess.Claims().Uid, req.ChannelId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Unsubscribe(ctx *ginx.Context, req ChannelReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Unsubscribe(ctx, sess.Claims().Uid, req.ChannelId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Status(ctx *ginx.Context, req ChannelReq, sess session.Session) (ginx.Result, error) {
	ok, err := h.svc.IsSubscribed(ctx, sess.Claims().Uid, req.ChannelId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StatusResp{Subscribed: ok},
	}, nil
}

func (h *Handler) Channels(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	channels, err := h.svc.SubscribedChannels(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ChannelListResp{
			Channels: slice.Map(channels, func(idx int, src domain.Channel) Channel {
				return newChannel(src)
			}),
		},
	}, nil
}

func (h *Handler) Subscribers(ctx *ginx.Context, req ChannelReq) (ginx.Result, error) {
	subs, err := h.svc.Subscribers(ctx, req.ChannelId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ChannelListResp{
			Channels: slice.Map(subs, func(idx int, src domain.Channel) Channel {
				return newChannel(src)
			}),
		},
	}, nil
}
