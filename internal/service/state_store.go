package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const oauthStateKeyPrefix = "oauth_state:"

// ErrStateNotFound is returned for unknown, expired or already used states.
var ErrStateNotFound = errors.New("oauth state not found")

// StateStore issues single-use OAuth state tokens.
type StateStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewStateStore(redisClient *redis.Client, ttl time.Duration) *StateStore {
	return &StateStore{redisClient: redisClient, ttl: ttl}
}

// Issue returns a new state bound to value (provider and mode).
func (s *StateStore) Issue(ctx context.Context, value string) (string, error) {
	state := uuid.New().String()
	if err := s.redisClient.Set(ctx, oauthStateKeyPrefix+state, value, s.ttl).Err(); err != nil {
		return "", err
	}
	return state, nil
}

// Consume returns the value bound to state and deletes it.
func (s *StateStore) Consume(ctx context.Context, state string) (string, error) {
	value, err := s.redisClient.GetDel(ctx, oauthStateKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrStateNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
