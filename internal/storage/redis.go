package storage

import (
	"context"
	"encoding/json"

	"fila/internal/config"
	"fila/internal/events"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to redis and checks the connection with a ping.
func NewRedisClient(ctx context.Context, cfg config.Redis, logger *logrus.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.Wrapf(err, "redis: ping %s", cfg.Addr)
	}

	logger.WithContext(ctx).Infof("redis is running on %s on db %d", cfg.Addr, cfg.Database)
	return rdb, nil
}

// RedisPublisher publishes queue events as JSON on a redis pub/sub channel,
// so display boards outside this process can follow the line.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

// Publish implements events.Publisher.
func (p *RedisPublisher) Publish(ctx context.Context, ev events.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "redis: marshal event")
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errors.Wrapf(err, "redis: publish to %s", p.channel)
	}
	return nil
}
