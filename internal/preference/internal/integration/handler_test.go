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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/clipflow/clipflow/internal/preference"
	"github.com/clipflow/clipflow/internal/preference/internal/integration/startup"
	"github.com/clipflow/clipflow/internal/preference/internal/web"
	"github.com/clipflow/clipflow/internal/test"
	testioc "github.com/clipflow/clipflow/internal/test/ioc"
	videodao "github.com/clipflow/clipflow/internal/video/internal/repository/dao"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2077)

const videoId = int64(901)

// 视频所属的分类
const categoryId = int64(3)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    preference.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.svc = module.Svc
}

func (s *HandlerTestSuite) SetupTest() {
	err := s.db.Create(&videodao.Video{
		Id: videoId, Uid: 600, Title: "gaming-v1", CategoryId: categoryId,
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"user_preferences", "videos"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

// TestWatchThenDislike 有效观看 +3，再点踩 -7，分数止步于 0 不会变负
func (s *HandlerTestSuite) TestWatchThenDislike() {
	req, err := http.NewRequest(http.MethodPost,
		"/preferences/watch", iox.NewJSONReader(web.VideoReq{VideoId: videoId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), float64(3), s.score())

	err = s.svc.OnReaction(context.Background(), uid, videoId, false)
	require.NoError(s.T(), err)
	require.Equal(s.T(), float64(0), s.score())
}

func (s *HandlerTestSuite) TestScores() {
	err := s.svc.OnReaction(context.Background(), uid, videoId, true)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/preferences/scores", iox.NewJSONReader(struct{}{}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ScoresResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), map[int64]float64{categoryId: 5}, recorder.MustScan().Data.Scores)
}

func (s *HandlerTestSuite) TestReset() {
	err := s.svc.OnWatch(context.Background(), uid, videoId)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/preferences/reset", iox.NewJSONReader(struct{}{}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.ResetResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), int64(1), recorder.MustScan().Data.Deleted)

	var cnt int64
	err = s.db.Raw("SELECT COUNT(*) FROM user_preferences").Scan(&cnt).Error
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), cnt)
}

func (s *HandlerTestSuite) score() float64 {
	var score float64
	err := s.db.Raw("SELECT score FROM user_preferences WHERE uid = ? AND category_id = ?",
		uid, categoryId).Scan(&score).Error
	require.NoError(s.T(), err)
	return score
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
