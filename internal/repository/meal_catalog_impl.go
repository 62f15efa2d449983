package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"calorie-planner/internal/domain/entity"
	domainRepo "calorie-planner/internal/domain/repository"
	"calorie-planner/internal/infrastructure/recipeapi"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const mealCacheKeyPrefix = "meals:"

// mealCatalog reads through a Redis cache to the recipe API. A nil Redis
// client disables caching; cache failures are logged and bypassed.
type mealCatalog struct {
	api         *recipeapi.Client
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewMealCatalog(api *recipeapi.Client, redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) domainRepo.MealCatalog {
	return &mealCatalog{
		api:         api,
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *mealCatalog) ListRecipes(ctx context.Context) ([]entity.Recipe, error) {
	var recipes []entity.Recipe
	err := c.cached(ctx, "recipes", &recipes, func() (interface{}, error) {
		return c.api.Recipes(ctx)
	})
	return recipes, err
}

func (c *mealCatalog) GetRecipe(ctx context.Context, id int) (*entity.Recipe, error) {
	var recipe entity.Recipe
	err := c.cached(ctx, fmt.Sprintf("recipe:%d", id), &recipe, func() (interface{}, error) {
		return c.api.Recipe(ctx, id)
	})
	if errors.Is(err, recipeapi.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (c *mealCatalog) ListProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	var products []entity.Product
	err := c.cached(ctx, "products:"+category, &products, func() (interface{}, error) {
		return c.api.ProductsByCategory(ctx, category)
	})
	return products, err
}

// cached decodes the cached value for key into out, or calls fetch and
// stores its result.
func (c *mealCatalog) cached(ctx context.Context, key string, out interface{}, fetch func() (interface{}, error)) error {
	key = mealCacheKeyPrefix + key

	if c.redisClient != nil {
		raw, err := c.redisClient.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			if err := json.Unmarshal(raw, out); err == nil {
				return nil
			}
			c.log.Warnf("Failed to decode cached %s, refetching", key)
		case !errors.Is(err, redis.Nil):
			c.log.Warnf("Failed to read meal cache: %+v", err)
		}
	}

	value, err := fetch()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return err
	}

	if c.redisClient != nil {
		if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warnf("Failed to write meal cache: %+v", err)
		}
	}
	return nil
}
