package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/config"
)

// PostgresSlot stores blobs one row per key in the slots table.
type PostgresSlot struct {
	pool *pgxpool.Pool
}

// NewPostgresSlot establishes a connection pool against the configured DSN.
func NewPostgresSlot(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*PostgresSlot, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &PostgresSlot{pool: pool}, nil
}

// Load reads the blob for key, or ErrSlotEmpty when no row exists.
func (p *PostgresSlot) Load(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT blob FROM slots WHERE key=$1`
	var blob []byte
	err := p.pool.QueryRow(ctx, query, key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// Save overwrites the blob for key wholesale.
func (p *PostgresSlot) Save(ctx context.Context, key string, blob []byte) error {
	const query = `
        INSERT INTO slots (key, blob, updated_at) VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET blob = EXCLUDED.blob, updated_at = NOW()`
	_, err := p.pool.Exec(ctx, query, key, blob)
	return err
}

// Ping verifies database connectivity.
func (p *PostgresSlot) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return errors.New("postgres pool not configured")
	}
	return p.pool.Ping(ctx)
}

// Close releases pool resources.
func (p *PostgresSlot) Close() {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
}

// PoolHandle returns the underlying pgx pool.
func (p *PostgresSlot) PoolHandle() *pgxpool.Pool {
	if p == nil {
		return nil
	}
	return p.pool
}
