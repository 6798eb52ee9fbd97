package storage

import (
	"context"

	"foodordering/catalog-svc/internal/service"

	"github.com/redis/go-redis/v9"
)

// RedisPopularityStore mirrors menu item popularity in a sorted set per
// restaurant, keyed menu:{restaurantID}, member = item ID, score = total
// quantity ordered.
type RedisPopularityStore struct {
	client *redis.Client
}

func NewRedisPopularityStore(client *redis.Client) *RedisPopularityStore {
	return &RedisPopularityStore{client: client}
}

var _ service.PopularityStore = (*RedisPopularityStore)(nil)

func (s *RedisPopularityStore) Increment(ctx context.Context, restaurantID, itemID string, delta int) error {
	return s.client.ZIncrBy(ctx, "menu:"+restaurantID, float64(delta), itemID).Err()
}

func (s *RedisPopularityStore) TopItemIDs(ctx context.Context, restaurantID string, limit int) ([]string, error) {
	return s.client.ZRevRange(ctx, "menu:"+restaurantID, 0, int64(limit-1)).Result()
}
