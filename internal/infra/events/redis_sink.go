package events

import (
	"context"
	"encoding/json"
	"fmt"

	"visit-booking/internal/pkg/errs"
	"visit-booking/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

// Publisher is the subset of redis.UniversalClient used by RedisSink.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink publishes each event as JSON on a pub/sub channel.
type RedisSink struct {
	client  Publisher
	channel string
}

func NewRedisSink(client Publisher, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENTS_REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Send(ctx context.Context, ev shared.ReservationEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "marshal reservation event")
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "publish to %s", s.channel)
	}
	return nil
}
