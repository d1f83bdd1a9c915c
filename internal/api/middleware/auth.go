package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/session"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
	"github.com/Rogerszheng0724/my-lab-website/pkg/token"
)

// AdminAuth 管理員認證中間件
// 從 Authorization: Bearer <token> 取出並驗證 Token，
// 再向工作階段閘門確認狀態仍有效（登出或逾時後 Token 立即失效）
func AdminAuth(tokenMgr *token.Manager, gate *session.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 40100, "缺少認證標頭")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 40100, "認證標頭格式無效")
			c.Abort()
			return
		}

		claims, err := tokenMgr.Parse(parts[1])
		if err != nil {
			response.Unauthorized(c, 40100, "Token 無效或已過期")
			c.Abort()
			return
		}

		active, err := gate.Active(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}
		if !active {
			response.Unauthorized(c, 40100, "工作階段已結束，請重新登入")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}
