package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"card24/entities"

	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"
)

// ErrGameNotFound 游戏不存在或已过期
var ErrGameNotFound = errors.New("游戏不存在或已过期")

// GameStore 游戏记录存储，记录到期后自动失效
type GameStore interface {
	SaveGame(ctx context.Context, info entities.GameInfo, ttl time.Duration) error
	GetGame(ctx context.Context, gameID string) (entities.GameInfo, error)
}

// RedisGameStore 以 Hash 形式把游戏记录存入 Redis
type RedisGameStore struct {
	rdb redis.Cmdable
}

func NewRedisGameStore(rdb redis.Cmdable) *RedisGameStore {
	return &RedisGameStore{rdb: rdb}
}

func gameKey(gameID string) string {
	return fmt.Sprintf("game24:%s:info", gameID)
}

// SaveGame 写入记录并设置过期时间
func (s *RedisGameStore) SaveGame(ctx context.Context, info entities.GameInfo, ttl time.Duration) error {
	key := gameKey(info.GameID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, info.ToHash())
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("保存游戏[%s]失败: %w", info.GameID, err)
	}
	return nil
}

// GetGame 读取记录
func (s *RedisGameStore) GetGame(ctx context.Context, gameID string) (entities.GameInfo, error) {
	fields, err := s.rdb.HGetAll(ctx, gameKey(gameID)).Result()
	if err != nil {
		return entities.GameInfo{}, fmt.Errorf("获取游戏[%s]失败: %w", gameID, err)
	}
	if len(fields) == 0 {
		return entities.GameInfo{}, ErrGameNotFound
	}
	return decodeGameInfo(fields)
}

func decodeGameInfo(fields map[string]string) (entities.GameInfo, error) {
	var info entities.GameInfo
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: stringToIntHookFunc(),
		Result:     &info,
		TagName:    "json",
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return info, err
	}
	if err := decoder.Decode(fields); err != nil {
		return info, fmt.Errorf("游戏数据解析失败: %w", err)
	}
	return info, nil
}

// 自定义 HookFunc，把字符串转换成 int / int64
func stringToIntHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String {
			return data, nil
		}
		switch to {
		case reflect.Int:
			return strconv.Atoi(data.(string))
		case reflect.Int64:
			return strconv.ParseInt(data.(string), 10, 64)
		}
		return data, nil
	}
}
