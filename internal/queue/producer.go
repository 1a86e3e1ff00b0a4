package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Publish(ctx context.Context, event RunEvent) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *slog.Logger
}

// NewRedisProducer appends run events to a Redis stream, trimming it to
// roughly maxLen entries.
func NewRedisProducer(client *redis.Client, stream string, maxLen int64, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	if stream == "" {
		stream = DefaultRunEventStream
	}
	if maxLen <= 0 {
		maxLen = defaultRunEventStreamMaxLen
	}
	return &redisProducer{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event RunEvent) error {
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: event.values(),
	}).Result()
	if err != nil {
		return fmt.Errorf("publish run event: %w", err)
	}

	p.logger.DebugContext(ctx, "published run event", "stream", p.stream, "message_id", id, "event_type", event.Type, "run_id", event.RunID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
