package web

import (
	"github.com/clipflow/clipflow/internal/recommendation/internal/domain"
	"github.com/clipflow/clipflow/internal/recommendation/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.RecommendationService
}

func NewHandler(svc service.RecommendationService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/recommendations")
	// 未登录用户也有推荐流，只是没有偏好加成
	g.POST("/list", ginx.B[FeedReq](h.List))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/recommendations")
	g.POST("/feed", ginx.BS[FeedReq](h.Feed))
}

func (h *Handler) List(ctx *ginx.Context, req FeedReq) (ginx.Result, error) {
	videos, err := h.svc.Recommend(ctx, 0, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toVOs(videos),
	}, nil
}

func (h *Handler) Feed(ctx *ginx.Context, req FeedReq, sess session.Session) (ginx.Result, error) {
	videos, err := h.svc.Recommend(ctx, sess.Claims().Uid, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toVOs(videos),
	}, nil
}

func toVOs(videos []domain.RankedVideo) []RankedVideo {
	return slice.Map(videos, func(idx int, src domain.RankedVideo) RankedVideo {
		return RankedVideo{
			Id:         src.Id,
			Title:      src.Title,
			Thumbnail:  src.Thumbnail,
			Author:     src.Author,
			ViewsCount: src.ViewsCount,
			UploadedAt: src.UploadedAt,
			Score:      src.Score,
		}
	})
}
