package web

import (
	"github.com/clipflow/clipflow/internal/search/internal/domain"
	"github.com/clipflow/clipflow/internal/search/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.SearchService
}

func NewHandler(svc service.SearchService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/search")
	g.POST("/videos", ginx.B[SearchReq](h.Search))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/search")
	g.POST("/history", ginx.BS[SearchReq](h.SearchHistory))
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	videos, err := h.svc.Search(ctx, req.Query, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(videos, func(idx int, src domain.VideoResult) VideoResult {
			return VideoResult{
				Id:         src.Id,
				Title:      src.Title,
				Author:     src.Author,
				Thumbnail:  src.Thumbnail,
				ViewsCount: src.ViewsCount,
				Score:      src.Score,
			}
		}),
	}, nil
}

func (h *Handler) SearchHistory(ctx *ginx.Context, req SearchReq, sess session.Session) (ginx.Result, error) {
	rows, err := h.svc.SearchHistory(ctx, sess.Claims().Uid, req.Query, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(rows, func(idx int, src domain.HistoryResult) HistoryResult {
			return HistoryResult{
				VideoId:       src.VideoId,
				Title:         src.Title,
				Author:        src.Author,
				AuthorAvatar:  src.AuthorAvatar,
				Thumbnail:     src.Thumbnail,
				Duration:      src.Duration,
				ViewsCount:    src.ViewsCount,
				WatchedAt:     src.WatchedAt,
				WatchDuration: src.WatchDuration,
			}
		}),
	}, nil
}
