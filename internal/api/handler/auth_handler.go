package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/pkg/response"
)

// AuthHandler 認證模組 HTTP 處理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 建立 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 管理員登入
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "參數校驗失敗")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "帳號或密碼錯誤")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout 管理員登出
// POST /api/v1/auth/logout
// 無論工作階段是否存在都回報成功
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authSvc.Logout(c.Request.Context())
	response.OK(c, nil)
}

// Session 查詢工作階段狀態
// GET /api/v1/auth/session
// 前端頁面守衛輪詢用；逾時的工作階段在本次檢查時順帶清除
func (h *AuthHandler) Session(c *gin.Context) {
	active, err := h.authSvc.SessionActive(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.SessionResponse{Active: active})
}
