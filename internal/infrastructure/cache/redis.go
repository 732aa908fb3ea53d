package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/pkg/config"
)

const revokedKeyPrefix = "auth:revoked:"

// NewRedisClient connects to Redis, retrying the first ping with backoff
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, timeout time.Duration, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = timeout

	ping := func() error {
		return client.Ping(ctx).Err()
	}
	err := backoff.RetryNotify(ping, backoff.WithContext(policy, ctx), func(err error, wait time.Duration) {
		log.Warn("redis not ready, retrying",
			zap.String("addr", cfg.Addr),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("redis connected", zap.String("addr", cfg.Addr))
	return client, nil
}

// RedisBlocklist stores revoked token ids in Redis with a TTL equal to the
// token's remaining lifetime, so every API instance sees the same revocations.
type RedisBlocklist struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisBlocklist creates a blocklist backed by client
func NewRedisBlocklist(client redis.UniversalClient) *RedisBlocklist {
	return &RedisBlocklist{client: client, now: time.Now}
}

func revokedKey(tokenID string) string {
	return revokedKeyPrefix + tokenID
}

// Revoke blocks tokenID until the given time
func (b *RedisBlocklist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(b.now())
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID is blocked
func (b *RedisBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := b.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// Close releases the underlying client
func (b *RedisBlocklist) Close() error {
	return b.client.Close()
}
