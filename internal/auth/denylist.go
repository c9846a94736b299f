package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const denylistPrefix = "portal:revoked:"

// TokenDenylist records revoked token ids until their natural expiry,
// giving logout real revocation on top of stateless tokens.
type TokenDenylist struct {
	client *redis.Client
	logger *zap.Logger
}

// NewTokenDenylist builds a denylist over the shared Redis client.
func NewTokenDenylist(client *redis.Client, logger *zap.Logger) *TokenDenylist {
	return &TokenDenylist{client: client, logger: logger}
}

// Revoke marks a token id as revoked until the given expiry. Entries
// self-expire, so the set never outlives the tokens it names.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if d == nil || d.client == nil || jti == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistPrefix+jti, "1", ttl).Err()
}

// Revoked reports whether a token id has been revoked. Redis failures fail
// open with a warning: token expiry still bounds the exposure window.
func (d *TokenDenylist) Revoked(ctx context.Context, jti string) bool {
	if d == nil || d.client == nil || jti == "" {
		return false
	}
	n, err := d.client.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("denylist check failed", zap.Error(err))
		}
		return false
	}
	return n > 0
}
