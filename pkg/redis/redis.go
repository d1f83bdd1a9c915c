package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
)

// Client Redis 客戶端封裝
// 目前用於管理員工作階段狀態與登入限流；後續可擴充快取等場景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 建立 Redis 連線並執行 Ping 健康檢查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 連線失敗: %w", err)
	}

	logger.Info("Redis 連線成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// NewClientFromRDB 以現成的 go-redis 客戶端建立封裝（測試用）
func NewClientFromRDB(rdb *goredis.Client, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// ── 鍵值儲存（實作 kv.Store） ──

const kvPrefix = "labsite:kv:"

// Get 讀取鍵值；鍵不存在時 ok 為 false
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.rdb.Get(ctx, kvPrefix+key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set 寫入鍵值
func (c *Client) Set(ctx context.Context, key, value string) error {
	return c.rdb.Set(ctx, kvPrefix+key, value, 0).Err()
}

// Delete 刪除鍵
func (c *Client) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, kvPrefix+key).Err()
}

// ── 登入限流 ──

// CheckRateLimit 固定窗口限流
// 窗口內第一次請求時設定 TTL，超過 limit 回傳 false
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 關閉 Redis 連線
func (c *Client) Close() error {
	return c.rdb.Close()
}
