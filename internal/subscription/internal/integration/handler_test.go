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
	"net/http"
	"testing"

	userdao "github.com/clipflow/clipflow/internal/user/internal/repository/dao"
	videodao "github.com/clipflow/clipflow/internal/video/internal/repository/dao"

	"github.com/clipflow/clipflow/internal/subscription/internal/integration/startup"
	"github.com/clipflow/clipflow/internal/subscription/internal/repository/dao"
	"github.com/clipflow/clipflow/internal/subscription/internal/web"
	"github.com/clipflow/clipflow/internal/test"
	testioc "github.com/clipflow/clipflow/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2051)

// 被订阅的频道
const channelId = int64(3001)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
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
}

func (s *HandlerTestSuite) SetupTest() {
	// 频道主加两个不同分类的视频，订阅要给每个分类都加分
	err := s.db.Create(&userdao.User{
		Id:       channelId,
		Username: "channel-owner",
		Email:    "channel-owner@example.com",
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create(&videodao.Video{
		Id: 1, Uid: channelId, Title: "v1", CategoryId: 1,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Create(&videodao.Video{
		Id: 2, Uid: channelId, Title: "v2", CategoryId: 2,
	}).Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"subscriptions", "users", "videos", "user_preferences"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestSubscribe() {
	req, err := http.NewRequest(http.MethodPost,
		"/subscriptions/subscribe", iox.NewJSONReader(web.ChannelReq{ChannelId: channelId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	var sub dao.Subscription
	err = s.db.Where("subscriber_id = ? AND channel_id = ?", uid, channelId).
		First(&sub).Error
	require.NoError(s.T(), err)

	var count int64
	err = s.db.Raw("SELECT subscribers_count FROM users WHERE id = ?", channelId).
		Scan(&count).Error
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), count)

	// 两个分类各得 5 分
	var scores []float64
	err = s.db.Raw("SELECT score FROM user_preferences WHERE uid = ? ORDER BY category_id", uid).
		Scan(&scores).Error
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{5, 5}, scores)

	// 重复订阅不叠加
	req, err = http.NewRequest(http.MethodPost,
		"/subscriptions/subscribe", iox.NewJSONReader(web.ChannelReq{ChannelId: channelId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	err = s.db.Raw("SELECT subscribers_count FROM users WHERE id = ?", channelId).
		Scan(&count).Error
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), count)
}

func (s *HandlerTestSuite) TestUnsubscribe() {
	err := s.db.Create(&dao.Subscription{
		SubscriberId: uid,
		ChannelId:    channelId,
	}).Error
	require.NoError(s.T(), err)
	err = s.db.Exec("UPDATE users SET subscribers_count = 1 WHERE id = ?", channelId).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/subscriptions/unsubscribe", iox.NewJSONReader(web.ChannelReq{ChannelId: channelId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	var cnt int64
	err = s.db.Model(&dao.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", uid, channelId).
		Count(&cnt).Error
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), cnt)

	var count int64
	err = s.db.Raw("SELECT subscribers_count FROM users WHERE id = ?", channelId).
		Scan(&count).Error
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), count)
}

func (s *HandlerTestSuite) TestStatus() {
	err := s.db.Create(&dao.Subscription{
		SubscriberId: uid,
		ChannelId:    channelId,
	}).Error
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		"/subscriptions/status", iox.NewJSONReader(web.ChannelReq{ChannelId: channelId}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.StatusResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.True(s.T(), recorder.MustScan().Data.Subscribed)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
