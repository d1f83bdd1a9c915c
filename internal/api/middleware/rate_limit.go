package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/pkg/redis"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// RateLimit 基於 Redis 固定窗口的速率限制中間件
// limit: 窗口內允許的最大請求數
// window: 窗口時長
// rdb 為 nil（展示模式未接 Redis）時降級放行
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			// Redis 出錯時降級放行
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 42900, "請求過於頻繁，請稍後再試")
			c.Abort()
			return
		}

		c.Next()
	}
}
