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

	"github.com/clipflow/clipflow/internal/video/internal/domain"
	"github.com/clipflow/clipflow/internal/video/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.VideoService
	logger *elog.Component
}

func NewHandler(svc service.VideoService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/videos")
	g.POST("/upload", ginx.BS[UploadReq](h.Upload))
	g.POST("/delete", ginx.BS[VideoReq](h.Delete))
	g.POST("/liked/list", ginx.S(h.Liked))
	// 重建默认分类目录，维护接口
	g.POST("/categories/seed", ginx.S(h.SeedCategories))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/videos")
	g.POST("/info", ginx.B[VideoReq](h.Info))
	g.POST("/profile", ginx.B[VideoReq](h.ProfileInfo))
	g.POST("/latest", ginx.B[ListReq](h.Latest))
	g.POST("/author", ginx.B[AuthorReq](h.ByAuthor))
	g.POST("/popular", ginx.B[ListReq](h.Popular))
	g.POST("/categories", ginx.B[ListReq](h.Categories))
}

func (h *Handler) Upload(ctx *ginx.Context, req UploadReq, sess session.Session) (ginx.Result, error) {
	receipt, err := h.svc.Upload(ctx, sess.Claims().Uid, domain.UploadVideo{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Duration:    req.Duration,
	})
	if errors.Is(err, service.ErrUnknownCategory) {
		return unknownCategoryResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UploadResp{
			Id:        receipt.Id,
			VideoKey:  receipt.VideoKey,
			Thumbnail: receipt.Thumbnail,
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req VideoReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.VideoId, sess.Claims().Uid)
	if errors.Is(err, service.ErrNotOwner) {
		return notOwnerResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Info(ctx *ginx.Context, req VideoReq) (ginx.Result, error) {
	info, err := h.svc.Info(ctx, req.VideoId)
	if errors.Is(err, service.ErrVideoNotFound) {
		return videoNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: VideoInfoResp{
			Id:          info.Id,
			Title:       info.Title,
			Description: info.Description,
			VideoKey:    info.VideoKey,
			Thumbnail:   info.Thumbnail,
			Duration:    info.Duration,
			ViewsCount:  info.ViewsCount,
			AuthorName:  info.AuthorName,
			UploadedAt:  info.UploadedAt,
			Tags:        info.Tags,
		},
	}, nil
}

func (h *Handler) ProfileInfo(ctx *ginx.Context, req VideoReq) (ginx.Result, error) {
	info, err := h.svc.ProfileInfo(ctx, req.VideoId)
	if errors.Is(err, service.ErrVideoNotFound) {
		return videoNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProfileInfoResp{
			SubscribersCount: info.SubscribersCount,
			LikesCount:       info.LikesCount,
			DislikesCount:    info.DislikesCount,
			AuthorAvatar:     info.AuthorAvatar,
		},
	}, nil
}

func (h *Handler) Latest(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	cards, err := h.svc.Latest(ctx, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return h.listResult(cards), nil
}

func (h *Handler) ByAuthor(ctx *ginx.Context, req AuthorReq) (ginx.Result, error) {
	cards, err := h.svc.ByAuthor(ctx, req.Uid, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return h.listResult(cards), nil
}

func (h *Handler) Popular(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	cards, err := h.svc.Popular(ctx, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return h.listResult(cards), nil
}

func (h *Handler) Liked(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cards, err := h.svc.Liked(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return h.listResult(cards), nil
}

func (h *Handler) Categories(ctx *ginx.Context, _ ListReq) (ginx.Result, error) {
	names, err := h.svc.Categories(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CategoriesResp{Categories: names},
	}, nil
}

func (h *Handler) SeedCategories(ctx *ginx.Context, _ session.Session) (ginx.Result, error) {
	err := h.svc.SeedCategories(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) listResult(cards []domain.VideoCard) ginx.Result {
	return ginx.Result{
		Data: VideoListResp{
			Videos: slice.Map(cards, func(idx int, src domain.VideoCard) VideoCard {
				return newVideoCard(src)
			}),
		},
	}
}
