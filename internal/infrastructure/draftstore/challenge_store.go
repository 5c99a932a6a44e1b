package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/microlend/lending-console/internal/domain/model"
	"github.com/microlend/lending-console/internal/domain/port"
)

// RedisChallengeStore implements port.ChallengeStore on Redis. The challenge
// lives under its token with the TTL baked in; Take uses GETDEL so a token is
// consumed in one round trip and can never be presented twice.
type RedisChallengeStore struct {
	client *redis.Client
}

// NewRedisChallengeStore creates the store.
func NewRedisChallengeStore(client *redis.Client) *RedisChallengeStore {
	return &RedisChallengeStore{client: client}
}

func challengeKey(token string) string {
	return "stepup:" + token
}

// Put stores a challenge until its expiry.
func (s *RedisChallengeStore) Put(ctx context.Context, c model.StepUpChallenge) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal challenge: %w", err)
	}
	ttl := time.Until(c.ExpiresAt)
	if ttl <= 0 {
		return errors.New("challenge is already expired")
	}
	if err := s.client.Set(ctx, challengeKey(c.Token), raw, ttl).Err(); err != nil {
		return fmt.Errorf("store challenge: %w", err)
	}
	return nil
}

// Take removes and returns the challenge for the token.
func (s *RedisChallengeStore) Take(ctx context.Context, token string) (model.StepUpChallenge, error) {
	raw, err := s.client.GetDel(ctx, challengeKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.StepUpChallenge{}, port.ErrChallengeNotFound
	}
	if err != nil {
		return model.StepUpChallenge{}, fmt.Errorf("take challenge: %w", err)
	}
	var c model.StepUpChallenge
	if err := json.Unmarshal(raw, &c); err != nil {
		return model.StepUpChallenge{}, fmt.Errorf("decode challenge: %w", err)
	}
	return c, nil
}
