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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateSubscription 已经订阅过了
	ErrDuplicateSubscription = errors.New("重复订阅")
)

// 唯一索引冲突
const uniqueIndexErrNo uint16 = 1062

type SubscriptionDAO interface {
	// Subscribe 订阅。关系行和频道冗余粉丝数在同一个事务里变更，
	// 已订阅时返回 ErrDuplicateSubscription，计数不会被重复加
	Subscribe(ctx context.Context, subscriberId, channelId int64) error
	// Unsubscribe 取关。没有订阅关系时是幂等的 no-op
	Unsubscribe(ctx context.Context, subscriberId, channelId int64) error
	IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error)
	// SubscribedChannels 用户关注的频道，按订阅时间倒序
	SubscribedChannels(ctx context.Context, subscriberId int64) ([]ChannelRow, error)
	// Subscribers 频道的粉丝，按订阅时间倒序
	Subscribers(ctx context.Context, channelId int64) ([]ChannelRow, error)
}

type GORMSubscriptionDAO struct {
	db *egorm.Component
}

func NewSubscriptionDAO(db *egorm.Component) *GORMSubscriptionDAO {
	return &GORMSubscriptionDAO{
		db: db,
	}
}

func (g *GORMSubscriptionDAO) Subscribe(ctx context.Context, subscriberId, channelId int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		err := tx.Create(&Subscription{
			SubscriberId: subscriberId,
			ChannelId:    channelId,
			Utime:        now,
			Ctime:        now,
		}).Error
		if err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == uniqueIndexErrNo {
				return ErrDuplicateSubscription
			}
			return err
		}
		return tx.Table("users").Where("id = ?", channelId).
			Updates(map[string]any{
				"subscribers_count": gorm.Expr("subscribers_count + 1"),
				"utime":             now,
			}).Error
	})
}

func (g *GORMSubscriptionDAO) Unsubscribe(ctx context.Context, subscriberId, channelId int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
			Delete(&Subscription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			// 本来就没订阅，计数不动
			return nil
		}
		return tx.Table("users").Where("id = ?", channelId).
			Updates(map[string]any{
				"subscribers_count": gorm.Expr("GREATEST(subscribers_count - 1, 0)"),
				"utime":             now,
			}).Error
	})
}

func (g *GORMSubscriptionDAO) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var s Subscription
	err := g.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *GORMSubscriptionDAO) SubscribedChannels(ctx context.Context, subscriberId int64) ([]ChannelRow, error) {
	var rows []ChannelRow
	err := g.db.WithContext(ctx).Raw(`
SELECT u.id, u.username, u.avatar, u.subscribers_count
FROM subscriptions s
JOIN users u ON s.channel_id = u.id
WHERE s.subscriber_id = ?
ORDER BY s.ctime DESC`, subscriberId).Scan(&rows).Error
	return rows, err
}

func (g *GORMSubscriptionDAO) Subscribers(ctx context.Context, channelId int64) ([]ChannelRow, error) {
	var rows []ChannelRow
	err := g.db.WithContext(ctx).Raw(`
SELECT u.id, u.username, u.avatar, u.subscribers_count
FROM subscriptions s
JOIN users u ON s.subscriber_id = u.id
WHERE s.channel_id = ?
ORDER BY s.ctime DESC`, channelId).Scan(&rows).Error
	return rows, err
}
