package web

import (
	"errors"

	"github.com/clipflow/clipflow/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/avatar", ginx.BS[EditAvatarReq](h.EditAvatar))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	uid, err := h.userSvc.Register(ctx, req.Username, req.Email, req.Password)
	if errors.Is(err, service.ErrDuplicateUser) {
		return duplicateUserResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 注册完直接算登录
	_, err = session.NewSessionBuilder(ctx, uid).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: uid,
	}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidUserOrPassword) {
		return invalidUserOrPasswordResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:               u.Id,
			Username:         u.Username,
			Avatar:           u.Avatar,
			SubscribersCount: u.SubscribersCount,
		},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:               u.Id,
			Username:         u.Username,
			Avatar:           u.Avatar,
			SubscribersCount: u.SubscribersCount,
		},
	}, nil
}

func (h *Handler) EditAvatar(ctx *ginx.Context, req EditAvatarReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateAvatar(ctx, sess.Claims().Uid, req.Avatar)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
