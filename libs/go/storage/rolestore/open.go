// Package rolestore holds the storage backends behind the role store: an
// in-memory blob for tests, a JSON file watched with fsnotify, a Redis key
// with pub/sub, and a Postgres row with LISTEN/NOTIFY.
package rolestore

import (
	"context"
	"fmt"

	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"github.com/rescuedao/rescuedao-api/libs/go/interfaces"
)

// Backend kinds accepted by Open.
const (
	KindMemory   = "memory"
	KindFile     = "file"
	KindRedis    = "redis"
	KindPostgres = "postgres"
)

// Config selects and parameterizes a backend.
type Config struct {
	Kind        string
	Path        string
	RedisURL    string
	DatabaseURL string
	Key         string
}

// Open builds the backend named by cfg.Kind.
func Open(ctx context.Context, cfg Config) (interfaces.RoleBackend, error) {
	key := cfg.Key
	if key == "" {
		key = constants.RoleConfigKey
	}
	switch cfg.Kind {
	case "", KindMemory:
		return NewMemoryBackend(), nil
	case KindFile:
		return NewFileBackend(cfg.Path)
	case KindRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required for the redis role store")
		}
		return NewRedisBackend(ctx, cfg.RedisURL, key)
	case KindPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres role store")
		}
		return NewPostgresBackend(ctx, cfg.DatabaseURL, key)
	default:
		return nil, fmt.Errorf("unknown role store kind: %s", cfg.Kind)
	}
}
