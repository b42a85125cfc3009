package rolestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"go.uber.org/zap"
)

var _ interfaces.RoleBackend = (*RedisBackend)(nil)

// RedisBackend keeps the blob under one key and publishes on a channel after
// every mutation so other processes refresh immediately.
type RedisBackend struct {
	client  redis.UniversalClient
	key     string
	channel string
	logger  *zap.Logger
}

// NewRedisBackend connects using a redis:// URL.
func NewRedisBackend(ctx context.Context, redisURL, key string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisBackendWithClient(client, key), nil
}

// NewRedisBackendWithClient wraps an existing client.
func NewRedisBackendWithClient(client redis.UniversalClient, key string) *RedisBackend {
	return &RedisBackend{
		client:  client,
		key:     key,
		channel: key + ":changed",
		logger:  logger.Named(logger.ComponentRoles, zap.String("role_store", "redis"), zap.String("key", key)),
	}
}

func (b *RedisBackend) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read role config from redis: %w", err)
	}
	return data, true, nil
}

func (b *RedisBackend) Write(ctx context.Context, data []byte) error {
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, b.key, data, 0)
		pipe.Publish(ctx, b.channel, "set")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write role config to redis: %w", err)
	}
	return nil
}

func (b *RedisBackend) Delete(ctx context.Context) error {
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, b.key)
		pipe.Publish(ctx, b.channel, "del")
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete role config from redis: %w", err)
	}
	return nil
}

func (b *RedisBackend) Watch(ctx context.Context) (<-chan struct{}, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}

	out := make(chan struct{}, 1)
	messages := pubsub.Channel()
	go func() {
		defer close(out)
		defer func() {
			if err := pubsub.Close(); err != nil {
				b.logger.Warn("Failed to close redis subscription", zap.Error(err))
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-messages:
				if !ok {
					return
				}
				notify(out)
			}
		}
	}()
	return out, nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
