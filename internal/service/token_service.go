package service

import (
	"context"
	"fmt"
	"time"

	"clinic-appointment-system/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key prefixes for issued tokens
const (
	accessTokenKeyPrefix  = "access_token:"
	refreshTokenKeyPrefix = "refresh_token:"
)

// TokenService tracks issued token IDs in Redis so that logout and admin
// deactivation can revoke tokens before they expire. A token missing from
// Redis is treated as revoked.
type TokenService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewTokenService(redisClient *redis.Client, log *logrus.Logger) *TokenService {
	return &TokenService{
		redisClient: redisClient,
		log:         log,
	}
}

func tokenKey(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	prefix := accessTokenKeyPrefix
	if tokenType == jwt.RefreshToken {
		prefix = refreshTokenKeyPrefix
	}
	return fmt.Sprintf("%s%s:%s", prefix, userID.String(), tokenID)
}

// Store registers an issued token ID with the TTL of the token itself.
func (s *TokenService) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store %s token in Redis: %+v", tokenType, err)
		return err
	}
	return nil
}

// IsValid reports whether the token ID is still registered (not revoked).
func (s *TokenService) IsValid(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

// Revoke removes a single token ID.
func (s *TokenService) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	if err := s.redisClient.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to revoke %s token: %+v", tokenType, err)
		return err
	}
	return nil
}

// RevokeAllForUser removes every token issued to a user. Used when an
// account is deactivated so a soft-deleted identity cannot keep an
// authenticated session alive.
func (s *TokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s%s:*", prefix, userID.String())
		keys, err := s.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			s.log.Warnf("Failed to list token keys for user %s: %+v", userID, err)
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to revoke tokens for user %s: %+v", userID, err)
				return err
			}
		}
	}
	return nil
}
