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

package repository

import (
	"context"
	"errors"

	"github.com/clipflow/clipflow/internal/subscription/internal/domain"
	"github.com/clipflow/clipflow/internal/subscription/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

type SubscriptionRepository interface {
	// Subscribe 重复订阅静默成功，返回值标识这次是不是新建了订阅关系
	Subscribe(ctx context.Context, subscriberId, channelId int64) (bool, error)
	Unsubscribe(ctx context.Context, subscriberId, channelId int64) error
	IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error)
	SubscribedChannels(ctx context.Context, subscriberId int64) ([]domain.Channel, error)
	Subscribers(ctx context.Context, channelId int64) ([]domain.Channel, error)
}

type subscriptionRepository struct {
	subDao dao.SubscriptionDAO
	logger *elog.Component
}

func NewSubscriptionRepository(subDao dao.SubscriptionDAO) SubscriptionRepository {
	return &subscriptionRepository{
		subDao: subDao,
		logger: elog.DefaultLogger,
	}
}

func (r *subscriptionRepository) Subscribe(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	err := r.subDao.Subscribe(ctx, subscriberId, channelId)
	if errors.Is(err, dao.ErrDuplicateSubscription) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *subscriptionRepository) Unsubscribe(ctx context.Context, subscriberId, channelId int64) error {
	return r.subDao.Unsubscribe(ctx, subscriberId, channelId)
}

func (r *subscriptionRepository) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return r.subDao.IsSubscribed(ctx, subscriberId, channelId)
}

func (r *subscriptionRepository) SubscribedChannels(ctx context.Context, subscriberId int64) ([]domain.Channel, error) {
	rows, err := r.subDao.SubscribedChannels(ctx, subscriberId)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.ChannelRow) domain.Channel {
		return r.toDomain(src)
	}), nil
}

func (r *subscriptionRepository) Subscribers(ctx context.Context, channelId int64) ([]domain.Channel, error) {
	rows, err := r.subDao.Subscribers(ctx, channelId)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.ChannelRow) domain.Channel {
		return r.toDomain(src)
	}), nil
}

func (r *subscriptionRepository) toDomain(row dao.ChannelRow) domain.Channel {
	return domain.Channel{
		Id:               row.Id,
		Username:         row.Username,
		Avatar:           row.Avatar,
		SubscribersCount: row.SubscribersCount,
	}
}
