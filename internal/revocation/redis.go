package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openshelf/openshelf-server/internal/model"
)

const redisKeyPrefix = "revoked:"

// Redis is a revocation registry backed by a shared redis instance, for
// deployments where more than one server process must observe a logout.
type Redis struct {
	client *redis.Client
}

var _ model.RevocationRegistry = (*Redis)(nil)

// NewRedis creates a redis registry and verifies connectivity.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Redis{client: client}, nil
}

// Revoke stores the jti with a TTL equal to the remaining token lifetime.
func (r *Redis) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, redisKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to revoke token", model.ErrStorageUnavailable)
	}
	return nil
}

// IsRevoked reports whether the jti is currently revoked.
func (r *Redis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, redisKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("%w: failed to check revocation", model.ErrStorageUnavailable)
	}
	return n > 0, nil
}

// Close releases the underlying redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
