package service

import (
	"context"
	"errors"
	"testing"

	repomocks "github.com/clipflow/clipflow/internal/interactive/internal/repository/mocks"
	prefmocks "github.com/clipflow/clipflow/internal/preference/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReactionService_SetReaction(t *testing.T) {
	t.Run("重复点赞只打一次偏好分", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockReactionRepository(ctrl)
		// 第一次是 NONE→LIKED，第二次状态没变
		gomock.InOrder(
			repo.EXPECT().SetReaction(gomock.Any(), int64(42), int64(7), true).
				Return(true, nil),
			repo.EXPECT().SetReaction(gomock.Any(), int64(42), int64(7), true).
				Return(false, nil),
		)
		prefSvc := prefmocks.NewMockService(ctrl)
		prefSvc.EXPECT().OnReaction(gomock.Any(), int64(7), int64(42), true).
			Return(nil).Times(1)
		svc := NewService(repo, prefSvc)
		assert.NoError(t, svc.SetReaction(context.Background(), 42, 7, true))
		assert.NoError(t, svc.SetReaction(context.Background(), 42, 7, true))
	})

	t.Run("点赞改点踩，按新状态打分", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockReactionRepository(ctrl)
		repo.EXPECT().SetReaction(gomock.Any(), int64(42), int64(7), false).
			Return(true, nil)
		prefSvc := prefmocks.NewMockService(ctrl)
		prefSvc.EXPECT().OnReaction(gomock.Any(), int64(7), int64(42), false).
			Return(nil)
		svc := NewService(repo, prefSvc)
		assert.NoError(t, svc.SetReaction(context.Background(), 42, 7, false))
	})

	t.Run("偏好分失败不影响评价", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockReactionRepository(ctrl)
		repo.EXPECT().SetReaction(gomock.Any(), int64(42), int64(7), true).
			Return(true, nil)
		prefSvc := prefmocks.NewMockService(ctrl)
		prefSvc.EXPECT().OnReaction(gomock.Any(), int64(7), int64(42), true).
			Return(errors.New("模拟偏好分失败"))
		svc := NewService(repo, prefSvc)
		assert.NoError(t, svc.SetReaction(context.Background(), 42, 7, true))
	})

	t.Run("评价本身失败，不打偏好分", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockReactionRepository(ctrl)
		mockErr := errors.New("模拟数据库失败")
		repo.EXPECT().SetReaction(gomock.Any(), int64(42), int64(7), true).
			Return(false, mockErr)
		prefSvc := prefmocks.NewMockService(ctrl)
		svc := NewService(repo, prefSvc)
		assert.ErrorIs(t, svc.SetReaction(context.Background(), 42, 7, true), mockErr)
	})
}
