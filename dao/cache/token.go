package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStorage 已注销令牌的黑名单，过期时间与令牌一致
type TokenStorage struct {
	redis *redis.Client
}

func NewTokenStorage(rds *redis.Client) *TokenStorage {
	return &TokenStorage{redis: rds}
}

// Revoke 拉黑 jti，已过期的令牌无需记录
func (t *TokenStorage) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return t.redis.Set(ctx, t.name(jti), 1, ttl).Err()
}

func (t *TokenStorage) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, err := t.redis.Get(ctx, t.name(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// auth:revoked:<jti>
func (t *TokenStorage) name(jti string) string {
	return fmt.Sprintf("auth:revoked:%s", jti)
}
