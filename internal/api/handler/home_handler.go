package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// HomeHandler 首頁與儀表板 HTTP 處理器
type HomeHandler struct {
	homeSvc service.HomeService
}

// NewHomeHandler 建立 HomeHandler
func NewHomeHandler(homeSvc service.HomeService) *HomeHandler {
	return &HomeHandler{homeSvc: homeSvc}
}

// Home 取得首頁聚合資料
// GET /api/v1/home
func (h *HomeHandler) Home(c *gin.Context) {
	result, err := h.homeSvc.Home(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Stats 取得後台儀表板統計
// GET /api/v1/admin/stats
func (h *HomeHandler) Stats(c *gin.Context) {
	stats, err := h.homeSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}
