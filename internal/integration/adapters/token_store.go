// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	userTokensKeyPrefix   = "user_tokens:"
	resetTokenKeyPrefix   = "password_reset:"
)

// ErrTokenNotFound is returned when a token is absent from the store.
var ErrTokenNotFound = errors.New("token not found in store")

// TokenStore tracks issued refresh tokens and password reset tokens in
// Redis. Entries expire with their token, so the store never needs a
// cleanup job.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a new TokenStore backed by the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// SaveRefreshToken records an issued refresh token with its TTL and indexes
// it under the owning user for bulk invalidation.
func (s *TokenStore) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, refreshTokenKeyPrefix+token, userID.String(), ttl)
	pipe.SAdd(ctx, userTokensKeyPrefix+userID.String(), token)
	pipe.Expire(ctx, userTokensKeyPrefix+userID.String(), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// IsRefreshTokenValid reports whether a refresh token is still tracked.
func (s *TokenStore) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", err)
	}
	return count > 0, nil
}

// InvalidateRefreshToken removes a refresh token from the store.
func (s *TokenStore) InvalidateRefreshToken(ctx context.Context, token string) error {
	userID, err := s.client.Get(ctx, refreshTokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, refreshTokenKeyPrefix+token)
	pipe.SRem(ctx, userTokensKeyPrefix+userID, token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}
	return nil
}

// InvalidateAllUserTokens removes every tracked refresh token for a user.
func (s *TokenStore) InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	setKey := userTokensKeyPrefix + userID.String()
	tokens, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return fmt.Errorf("failed to list user tokens: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, refreshTokenKeyPrefix+token)
	}
	pipe.Del(ctx, setKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate user tokens: %w", err)
	}
	return nil
}

// resetTokenRecord is the stored form of a password reset token.
type resetTokenRecord struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// SaveResetToken records a password reset token with its TTL.
func (s *TokenStore) SaveResetToken(ctx context.Context, token string, userID uuid.UUID, email string, ttl time.Duration) error {
	payload, err := json.Marshal(resetTokenRecord{
		UserID: userID.String(),
		Email:  email,
	})
	if err != nil {
		return fmt.Errorf("failed to encode reset token: %w", err)
	}

	if err := s.client.Set(ctx, resetTokenKeyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

// GetResetToken retrieves a password reset token's owner and email.
// Returns ErrTokenNotFound for unknown or expired tokens.
func (s *TokenStore) GetResetToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	payload, err := s.client.Get(ctx, resetTokenKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, "", ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to look up reset token: %w", err)
	}

	var record resetTokenRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to decode reset token: %w", err)
	}

	userID, err := uuid.Parse(record.UserID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid user ID in reset token: %w", err)
	}
	return userID, record.Email, nil
}

// DeleteResetToken removes a password reset token after use.
func (s *TokenStore) DeleteResetToken(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, resetTokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}
	return nil
}
