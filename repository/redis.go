// redis.go
package repository

import (
	"context"
	"fmt"

	"card24/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis 连接 Redis 并 Ping 一次
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}
	return rdb, nil
}
