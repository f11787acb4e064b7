package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/config"
)

// ErrSlotEmpty signals an absent key. Callers treat it as "no saved state yet".
var ErrSlotEmpty = errors.New("slot empty")

// Slot is a durable string-keyed blob store. Saves overwrite prior content
// wholesale; there is no incremental diffing.
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Ping(ctx context.Context) error
	Close()
}

// Open constructs the slot backend selected by configuration.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Slot, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return NewFileSlot(cfg.Storage.Dir, logger)
	case config.BackendRedis:
		return NewRedisSlot(cfg.Redis, logger), nil
	case config.BackendPostgres:
		pg, err := NewPostgresSlot(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
