package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/config"
)

// RedisSlot keeps each blob under its key in Redis, the closest server-side
// analog of a string-keyed storage slot.
type RedisSlot struct {
	client *redis.Client
}

// NewRedisSlot connects to Redis using the provided configuration.
func NewRedisSlot(cfg config.RedisConfig, logger *zap.Logger) *RedisSlot {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}

	return &RedisSlot{client: client}
}

// Load reads the blob for key, or ErrSlotEmpty when the key is absent.
func (r *RedisSlot) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// Save overwrites the blob for key. No TTL: tracker state is durable.
func (r *RedisSlot) Save(ctx context.Context, key string, blob []byte) error {
	return r.client.Set(ctx, key, blob, 0).Err()
}

// Ping verifies Redis connectivity.
func (r *RedisSlot) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}

// Close closes the client.
func (r *RedisSlot) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}
