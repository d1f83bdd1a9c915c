package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	t.Cleanup(func() { mr.Close() })

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return NewClientFromRDB(rdb, zap.NewNop()), mr
}

func TestClientKVRoundTrip(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	if err := c.Set(ctx, "isAdminLoggedIn", "true"); err != nil {
		t.Fatalf("寫入失敗: %v", err)
	}

	v, ok, err := c.Get(ctx, "isAdminLoggedIn")
	if err != nil {
		t.Fatalf("讀取失敗: %v", err)
	}
	if !ok || v != "true" {
		t.Errorf("讀取結果應為 true，實際為 %q (ok=%v)", v, ok)
	}

	if err := c.Delete(ctx, "isAdminLoggedIn"); err != nil {
		t.Fatalf("刪除失敗: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "isAdminLoggedIn"); ok {
		t.Error("刪除後讀取應回傳 ok=false")
	}
}

func TestClientGetMissing(t *testing.T) {
	c, _ := newTestClient(t)

	v, ok, err := c.Get(context.Background(), "no-such-key")
	if err != nil {
		t.Fatalf("讀取不存在的鍵不應出錯: %v", err)
	}
	if ok || v != "" {
		t.Errorf("不存在的鍵應回傳空值與 ok=false，實際為 %q (ok=%v)", v, ok)
	}
}

func TestClientKeyPrefixIsolation(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	c.Set(ctx, "adminLoginTime", "1748768400000")

	// 實際鍵帶命名空間前綴，避免與其他用途的鍵相撞
	if !mr.Exists("labsite:kv:adminLoginTime") {
		t.Error("底層鍵應帶 labsite:kv: 前綴")
	}
	if mr.Exists("adminLoginTime") {
		t.Error("不應寫入無前綴的裸鍵")
	}
}

func TestClientCheckRateLimit(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	const key = "rate_limit:test"

	for i := 0; i < 3; i++ {
		allowed, err := c.CheckRateLimit(ctx, key, 3, time.Minute)
		if err != nil {
			t.Fatalf("第 %d 次檢查失敗: %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("第 %d 次請求應放行", i+1)
		}
	}

	allowed, err := c.CheckRateLimit(ctx, key, 3, time.Minute)
	if err != nil {
		t.Fatalf("檢查失敗: %v", err)
	}
	if allowed {
		t.Error("超過上限的請求應被拒絕")
	}

	// 窗口過期後重新計數
	mr.FastForward(time.Minute + time.Second)
	allowed, _ = c.CheckRateLimit(ctx, key, 3, time.Minute)
	if !allowed {
		t.Error("窗口過期後應重新放行")
	}
}
