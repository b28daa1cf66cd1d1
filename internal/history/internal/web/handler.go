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
	"github.com/clipflow/clipflow/internal/history/internal/domain"
	"github.com/clipflow/clipflow/internal/history/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.HistoryService
	logger *elog.Component
}

func NewHandler(svc service.HistoryService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/history")
	g.POST("/record", ginx.BS[RecordWatchReq](h.RecordWatch))
	g.POST("/duration", ginx.BS[VideoReq](h.WatchDuration))
	g.POST("/list", ginx.BS[ListReq](h.List))
	// 修复历史里的重复行，幂等，可以反复调
	g.POST("/cleanup", ginx.S(h.Cleanup))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) RecordWatch(ctx *ginx.Context, req RecordWatchReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RecordWatch(ctx, sess.Claims().Uid, req.VideoId, req.DurationSeconds)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) WatchDuration(ctx *ginx.Context, req VideoReq, sess session.Session) (ginx.Result, error) {
	d, err := h.svc.WatchDuration(ctx, sess.Claims().Uid, req.VideoId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: WatchDurationResp{DurationSeconds: d},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	records, err := h.svc.List(ctx, sess.Claims().Uid, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Records: slice.Map(records, func(idx int, src domain.WatchRecord) WatchRecord {
				return newWatchRecord(src)
			}),
		},
	}, nil
}

func (h *Handler) Cleanup(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	cnt, err := h.svc.CleanupDuplicates(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CleanupResp{Deleted: cnt},
	}, nil
}
