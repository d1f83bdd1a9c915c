package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// MustGetIDParam 解析路徑參數 :id 為正整數
// 解析失敗時寫入 400 回應並回傳 ok=false，呼叫端直接 return 即可
func MustGetIDParam(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "ID 必須為正整數")
		return 0, false
	}
	return id, true
}
