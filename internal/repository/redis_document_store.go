package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const redisDocumentKeyPrefix = "doc:"

// redisDocumentStore keeps each document in a hash; every field value is
// JSON encoded so numbers and booleans survive the round trip.
type redisDocumentStore struct {
	client *redis.Client
}

func NewRedisDocumentStore(client *redis.Client) domainRepo.DocumentStore {
	return &redisDocumentStore{client: client}
}

func redisDocumentKey(collection, id string) string {
	return fmt.Sprintf("%s%s:%s", redisDocumentKeyPrefix, collection, id)
}

func (s *redisDocumentStore) Get(ctx context.Context, collection, id string) (entity.JSON, error) {
	fields, err := s.client.HGetAll(ctx, redisDocumentKey(collection, id)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s/%s: %w", collection, id, err)
	}
	if len(fields) == 0 {
		return nil, domainRepo.ErrDocumentNotFound
	}

	doc := make(entity.JSON, len(fields))
	for field, raw := range fields {
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("decode field %q of %s/%s: %w", field, collection, id, err)
		}
		doc[field] = v
	}
	return doc, nil
}

func (s *redisDocumentStore) Set(ctx context.Context, collection, id string, partial entity.JSON, merge bool) error {
	values := make(map[string]interface{}, len(partial))
	for field, v := range partial {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode field %q of %s/%s: %w", field, collection, id, err)
		}
		values[field] = string(raw)
	}

	key := redisDocumentKey(collection, id)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if !merge {
			pipe.Del(ctx, key)
		}
		if len(values) > 0 {
			pipe.HSet(ctx, key, values)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis write %s/%s: %w", collection, id, err)
	}
	return nil
}
