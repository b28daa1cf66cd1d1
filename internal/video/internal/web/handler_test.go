package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipflow/clipflow/internal/video/internal/domain"
	"github.com/clipflow/clipflow/internal/video/internal/errs"
	"github.com/clipflow/clipflow/internal/video/internal/service"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// 只覆盖查不到视频的分支，其余方法不会被调到
type notFoundVideoService struct {
	service.VideoService
}

func (s *notFoundVideoService) Info(_ context.Context, _ int64) (domain.VideoInfo, error) {
	return domain.VideoInfo{}, service.ErrVideoNotFound
}

func (s *notFoundVideoService) ProfileInfo(_ context.Context, _ int64) (domain.ProfileInfo, error) {
	return domain.ProfileInfo{}, service.ErrVideoNotFound
}

func TestHandler_VideoNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(&notFoundVideoService{}).PublicRoutes(server)

	for _, path := range []string{"/videos/info", "/videos/profile"} {
		t.Run(path, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				path, iox.NewJSONReader(VideoReq{VideoId: 999}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)

			var res struct {
				Code int    `json:"code"`
				Msg  string `json:"msg"`
			}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
			// 查不到不是系统错误
			require.Equal(t, errs.VideoNotFound.Code, res.Code)
			require.Equal(t, errs.VideoNotFound.Msg, res.Msg)
		})
	}
}
