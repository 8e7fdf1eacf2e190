package storage

import (
	"context"
	"strconv"
	"time"

	"tableside/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PopularityCache keeps a per-day sorted set of menu item order counts.
// Keys expire after TTL so old leaderboards clean themselves up.
type PopularityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewPopularityCache(client *redis.Client, ttl time.Duration) *PopularityCache {
	return &PopularityCache{Client: client, TTL: ttl}
}

func (c *PopularityCache) dailyKey(day string) string {
	return "popularity:daily:" + day
}

func (c *PopularityCache) RecordOrderItems(ctx context.Context, day string, items []domain.OrderItem) error {
	key := c.dailyKey(day)
	for _, item := range items {
		if err := c.Client.ZIncrBy(ctx, key, float64(item.Quantity), strconv.Itoa(item.MenuItemID)).Err(); err != nil {
			return err
		}
	}
	return c.Client.Expire(ctx, key, c.TTL).Err()
}

func (c *PopularityCache) TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	results, err := c.Client.ZRevRangeWithScores(ctx, c.dailyKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.PopularItem, 0, len(results))
	for _, member := range results {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		top = append(top, domain.PopularItem{
			MenuItemID: id,
			Count:      int(member.Score),
		})
	}
	return top, nil
}
