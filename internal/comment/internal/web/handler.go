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
	"errors"

	"github.com/clipflow/clipflow/internal/comment/internal/domain"
	"github.com/clipflow/clipflow/internal/comment/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.CommentService
	logger *elog.Component
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/comments/create", ginx.BS[CreateCommentReq](h.Create))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 评论列表是公开数据
	server.POST("/comments/list", ginx.B[VideoReq](h.List))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateCommentReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, sess.Claims().Uid, req.VideoId, req.Content)
	if errors.Is(err, service.ErrEmptyContent) {
		return emptyContentResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreateCommentResp{Id: id},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req VideoReq) (ginx.Result, error) {
	comments, total, err := h.svc.List(ctx, req.VideoId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CommentListResp{
			Total: total,
			Comments: slice.Map(comments, func(idx int, src domain.Comment) Comment {
				return newComment(src)
			}),
		},
	}, nil
}
