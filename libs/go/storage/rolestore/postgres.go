package rolestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rescuedao/rescuedao-api/libs/go/helpers"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"go.uber.org/zap"
)

var _ interfaces.RoleBackend = (*PostgresBackend)(nil)

const (
	notifyChannel = "role_config_changed"

	createTableSQL = `CREATE TABLE IF NOT EXISTS role_config (
		key TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	selectSQL = `SELECT payload FROM role_config WHERE key = $1`
	upsertSQL = `INSERT INTO role_config (key, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	deleteSQL = `DELETE FROM role_config WHERE key = $1`
	notifySQL = `SELECT pg_notify($1, $2)`
)

// PostgresBackend stores the blob in a JSONB row and uses LISTEN/NOTIFY as
// the change notification.
type PostgresBackend struct {
	pool   *pgxpool.Pool
	key    string
	logger *zap.Logger
}

// NewPostgresBackend opens a pool and ensures the role_config table exists.
func NewPostgresBackend(ctx context.Context, dsn, key string) (*PostgresBackend, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database DSN: %w", err)
	}
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure role_config table: %w", err)
	}
	return &PostgresBackend{
		pool:   pool,
		key:    key,
		logger: logger.Named(logger.ComponentRoles, zap.String("role_store", "postgres"), zap.String("key", key)),
	}, nil
}

func (b *PostgresBackend) Read(ctx context.Context) ([]byte, bool, error) {
	var payload []byte
	err := b.pool.QueryRow(ctx, selectSQL, b.key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read role config: %w", err)
	}
	return payload, true, nil
}

func (b *PostgresBackend) Write(ctx context.Context, data []byte) error {
	return helpers.WithTransactionRetry(ctx, b.pool, 2, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsertSQL, b.key, string(data)); err != nil {
			return fmt.Errorf("failed to upsert role config: %w", err)
		}
		if _, err := tx.Exec(ctx, notifySQL, notifyChannel, b.key); err != nil {
			return fmt.Errorf("failed to notify role config change: %w", err)
		}
		return nil
	})
}

func (b *PostgresBackend) Delete(ctx context.Context) error {
	return helpers.WithTransaction(ctx, b.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteSQL, b.key); err != nil {
			return fmt.Errorf("failed to delete role config: %w", err)
		}
		if _, err := tx.Exec(ctx, notifySQL, notifyChannel, b.key); err != nil {
			return fmt.Errorf("failed to notify role config change: %w", err)
		}
		return nil
	})
}

// Watch holds one pooled connection in LISTEN for the lifetime of ctx.
func (b *PostgresBackend) Watch(ctx context.Context) (<-chan struct{}, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire listen connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("failed to listen on %s: %w", notifyChannel, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer conn.Release()
		for {
			n, err := conn.Conn().WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					b.logger.Warn("Role config listener stopped", zap.Error(err))
				}
				return
			}
			if n.Payload == b.key {
				notify(out)
			}
		}
	}()
	return out, nil
}

func (b *PostgresBackend) Close() error {
	b.pool.Close()
	return nil
}
