package rocketmq

import (
	"Foodgram/config"
	"Foodgram/pkg/log"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

const (
	EventFollowed         = "user.followed"
	EventUnfollowed       = "user.unfollowed"
	EventFavorited        = "recipe.favorited"
	EventUnfavorited      = "recipe.unfavorited"
	EventCartAdded        = "shop_list.added"
	EventCartRemoved      = "shop_list.removed"
	EventShopListExported = "shop_list.exported"
)

// Event 领域事件，TargetID 按事件类型为用户或菜谱 ID
type Event struct {
	Type     string `json:"type"`
	UserID   int64  `json:"user_id"`
	TargetID int64  `json:"target_id"`
	At       int64  `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

func init() {
	rlog.SetLogLevel("error")
}

type Producer struct {
	producer rocketmq.Producer
	topic    string
}

// NewPublisher 未配置 nameserver 时返回空实现
func NewPublisher(cfg *config.RocketMQConfig) (Publisher, func(), error) {
	if !cfg.Enabled() {
		log.L.Info("rocketmq disabled, domain events are dropped")
		return Noop{}, func() {}, nil
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		return nil, nil, err
	}
	if err = p.Start(); err != nil {
		return nil, nil, err
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	cleanup := func() {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("shutdown producer", zap.Error(err))
		}
	}
	return &Producer{producer: p, topic: cfg.Topic}, cleanup, nil
}

func (p *Producer) Publish(ctx context.Context, ev Event) error {
	if ev.At == 0 {
		ev.At = time.Now().UnixMilli()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := primitive.NewMessage(p.topic, body)
	msg.WithTag(ev.Type)
	msg.WithKeys([]string{strconv.FormatInt(ev.UserID, 10)})
	msg.WithShardingKey(strconv.FormatInt(ev.UserID, 10))

	res, err := p.producer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID), zap.String("type", ev.Type))
	return nil
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
