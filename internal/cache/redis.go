package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// redisClient 定義了 NewRedisClient 內部使用的必要方法，便於測試時替換。
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 用來建立 redis client，測試可覆寫此變數。
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewLazyRedisClient 建立 client 但不 Ping，連線在第一次使用時才建立
func NewLazyRedisClient(addr string, password string, db int) Cache {
	return newClient(addr, password, db)
}

// NewRedisClient 建立 client 並在 5 秒內完成 Ping，失敗時關閉 client 並回傳錯誤
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := newClient(addr, password, db)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func newClient(addr string, password string, db int) redisClient {
	return redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
