package config

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rdb is nil when redis is unreachable; the cache helpers degrade to no-ops.
var Rdb *redis.Client

const cacheTTL = 10 * time.Minute

func InitRedis() {
	client := redis.NewClient(&redis.Options{
		Addr:     App.RedisAddr,
		Password: App.RedisPassword,
		DB:       App.RedisDB,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis unavailable, running without cache:", err)
		return
	}
	Rdb = client
	log.Println("Connected to Redis:", App.RedisAddr)
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if Rdb == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Rdb.Set(ctx, key, data, cacheTTL).Err()
}

// GetCache decodes the cached JSON into result. The bool reports a hit.
func GetCache(ctx context.Context, key string, result interface{}) (bool, error) {
	if Rdb == nil {
		return false, nil
	}
	data, err := Rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), result); err != nil {
		return false, err
	}
	return true, nil
}

func DeleteCache(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}
