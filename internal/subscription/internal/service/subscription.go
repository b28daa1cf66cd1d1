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

package service

import (
	"context"

	"github.com/clipflow/clipflow/internal/preference"
	"github.com/clipflow/clipflow/internal/subscription/internal/domain"
	"github.com/clipflow/clipflow/internal/subscription/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

type SubscriptionService interface {
	// Subscribe 自己订阅自己静默忽略，重复订阅静默成功
	Subscribe(ctx context.Context, subscriberId, channelId int64) error
	Unsubscribe(ctx context.Context, subscriberId, channelId int64) error
	IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error)
	SubscribedChannels(ctx context.Context, subscriberId int64) ([]domain.Channel, error)
	Subscribers(ctx context.Context, channelId int64) ([]domain.Channel, error)
}

type subscriptionService struct {
	repo    repository.SubscriptionRepository
	prefSvc preference.Service
	logger  *elog.Component
}

func NewService(repo repository.SubscriptionRepository, prefSvc preference.Service) SubscriptionService {
	return &subscriptionService{
		repo:    repo,
		prefSvc: prefSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, subscriberId, channelId int64) error {
	if subscriberId == channelId {
		return nil
	}
	created, err := s.repo.Subscribe(ctx, subscriberId, channelId)
	if err != nil {
		return err
	}
	if !created {
		// 重复订阅不重复加偏好分
		return nil
	}
	// 偏好分更新失败不影响订阅本身
	err = s.prefSvc.OnSubscribe(ctx, subscriberId, channelId)
	if err != nil {
		s.logger.Error("更新分类偏好失败",
			elog.FieldErr(err),
			elog.Int64("uid", subscriberId),
			elog.Int64("channelId", channelId))
	}
	return nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, subscriberId, channelId int64) error {
	return s.repo.Unsubscribe(ctx, subscriberId, channelId)
}

func (s *subscriptionService) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return s.repo.IsSubscribed(ctx, subscriberId, channelId)
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberId int64) ([]domain.Channel, error) {
	return s.repo.SubscribedChannels(ctx, subscriberId)
}

func (s *subscriptionService) Subscribers(ctx context.Context, channelId int64) ([]domain.Channel, error) {
	return s.repo.Subscribers(ctx, channelId)
}
