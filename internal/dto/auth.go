package dto

// ── 認證模組 DTO ──

// LoginRequest 管理員登入請求
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
}

// LoginResponse 登入成功回應
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // Token 有效期（秒）
}

// SessionResponse 工作階段狀態回應（頁面守衛輪詢用）
type SessionResponse struct {
	Active bool `json:"active"`
}
