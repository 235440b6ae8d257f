package service

import (
	"Foodgram/config"
	"Foodgram/dao/cache"
	"Foodgram/pkg/jwt"
	"context"
	"time"
)

var _ ITokenService = (*TokenService)(nil)

type ITokenService interface {
	Issue(userID int64) (string, error)
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type TokenService struct {
	Config       *config.Config
	TokenStorage *cache.TokenStorage
}

// Issue 签发访问令牌
func (s *TokenService) Issue(userID int64) (string, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresIn) * time.Second
	token, _, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), userID, expire)
	return token, err
}

// Revoke 注销令牌，直到原定过期时间前都会被拒绝
func (s *TokenService) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return s.TokenStorage.Revoke(ctx, tokenID, expiresAt)
}
