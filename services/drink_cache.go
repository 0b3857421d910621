package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
)

const (
	drinkCachePrefix     = "drink:detail:"
	drinkListCachePrefix = "drinks:v:"
	drinkCacheVersionKey = "drinks:version"
)

// DrinkCache keeps catalog reads in Redis. List entries are versioned so
// a single counter bump invalidates every cached list at once.
type DrinkCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDrinkCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DrinkCache {
	return &DrinkCache{redis: client, ttl: ttl, logger: logger}
}

// GetDrink returns a cached drink, if present.
func (c *DrinkCache) GetDrink(ctx context.Context, id string) (*models.Drink, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.redis.Get(ctx, drinkCachePrefix+id).Result()
	if err != nil {
		return nil, false
	}

	var drink models.Drink
	if err := json.Unmarshal([]byte(data), &drink); err != nil {
		c.logger.Warn("corrupt drink cache entry", zap.String("drink_id", id), zap.Error(err))
		return nil, false
	}
	return &drink, true
}

// SetDrinkAsync caches a single drink without blocking the request.
func (c *DrinkCache) SetDrinkAsync(id string, drink *models.Drink) {
	if c == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(drink)
		if err != nil {
			return
		}
		if err := c.redis.Set(ctx, drinkCachePrefix+id, data, c.ttl).Err(); err != nil {
			c.logger.Warn("drink cache write failed", zap.String("drink_id", id), zap.Error(err))
		}
	}()
}

// GetList returns the cached full catalog list for the current version.
func (c *DrinkCache) GetList(ctx context.Context) ([]models.Drink, bool) {
	if c == nil {
		return nil, false
	}

	version, err := c.redis.Get(ctx, drinkCacheVersionKey).Int64()
	if err != nil || version == 0 {
		return nil, false
	}

	data, err := c.redis.Get(ctx, c.listKey(version)).Result()
	if err != nil {
		return nil, false
	}

	var drinks []models.Drink
	if err := json.Unmarshal([]byte(data), &drinks); err != nil {
		c.logger.Warn("corrupt drink list cache entry", zap.Error(err))
		return nil, false
	}
	return drinks, true
}

// SetListAsync caches the full catalog list without blocking the request.
func (c *DrinkCache) SetListAsync(drinks []models.Drink) {
	if c == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := c.redis.Get(ctx, drinkCacheVersionKey).Int64()
		if err != nil {
			if err := c.redis.Set(ctx, drinkCacheVersionKey, 1, 0).Err(); err != nil {
				return
			}
			version = 1
		}

		data, err := json.Marshal(drinks)
		if err != nil {
			return
		}
		if err := c.redis.Set(ctx, c.listKey(version), data, c.ttl).Err(); err != nil {
			c.logger.Warn("drink list cache write failed", zap.Error(err))
		}
	}()
}

// Invalidate drops a drink's cached detail and bumps the list version.
// Called after every catalog write, including stock adjustments.
func (c *DrinkCache) Invalidate(ctx context.Context, id string) {
	if c == nil {
		return
	}

	if err := c.redis.Del(ctx, drinkCachePrefix+id).Err(); err != nil {
		c.logger.Warn("drink cache delete failed", zap.String("drink_id", id), zap.Error(err))
	}
	if err := c.redis.Incr(ctx, drinkCacheVersionKey).Err(); err != nil {
		c.logger.Warn("drink list cache invalidation failed", zap.Error(err))
	}
}

func (c *DrinkCache) listKey(version int64) string {
	return fmt.Sprintf("%s%d", drinkListCachePrefix, version)
}
