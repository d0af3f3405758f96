package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fastfood_backend/internal/models"

	"github.com/go-redis/redis/v8"
)

const statsKey = "order_stats"

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// SetOrderStats caches the dashboard counters for a short TTL so repeated
// admin polls do not hit the database five times each.
func (c *Client) SetOrderStats(ctx context.Context, stats *models.OrderStats, ttl time.Duration) error {
	jsonData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal order stats: %w", err)
	}

	return c.rdb.Set(ctx, statsKey, jsonData, ttl).Err()
}

func (c *Client) GetOrderStats(ctx context.Context) (*models.OrderStats, error) {
	val, err := c.rdb.Get(ctx, statsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order stats: %w", err)
	}

	var stats models.OrderStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order stats: %w", err)
	}

	return &stats, nil
}

func (c *Client) InvalidateOrderStats(ctx context.Context) error {
	return c.rdb.Del(ctx, statsKey).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
