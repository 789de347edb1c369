package cache

import (
	"context"
	"encoding/json"
	"time"

	"beachrent/config"
	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisCache holds the beach catalog as a TTL'd JSON blob. The platform is
// the source of truth; a miss or decode failure just falls through to it.

type RedisCache struct {
	client     *redis.Client
	beachesTTL time.Duration
}

var _ interfaces.IBeachCache = (*RedisCache)(nil)

func NewRedisCache(cfg config.RedisConfig, beachesTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		beachesTTL: beachesTTL,
	}
}

func (c *RedisCache) GetBeaches(ctx context.Context) ([]entities.Beach, error) {
	data, err := c.client.Get(ctx, beachesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var beaches []entities.Beach
	if err := json.Unmarshal(data, &beaches); err != nil {
		return nil, err
	}
	return beaches, nil
}

func (c *RedisCache) SetBeaches(ctx context.Context, beaches []entities.Beach) error {
	payload, err := json.Marshal(beaches)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, beachesKey(), payload, c.beachesTTL).Err()
}

func beachesKey() string {
	return "cache:beaches"
}
