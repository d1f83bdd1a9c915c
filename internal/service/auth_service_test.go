package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/session"
	"github.com/Rogerszheng0724/my-lab-website/pkg/kv"
	"github.com/Rogerszheng0724/my-lab-website/pkg/token"
)

func newTestAuthService() AuthService {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			AdminUsername: "admin",
			AdminPassword: "lab2024",
			SessionTTL:    24 * time.Hour,
			TokenSecret:   "test-secret-0123456789abcdef",
		},
	}
	gate := session.NewGate(kv.NewMemoryStore(), &cfg.Auth, nil, zap.NewNop())
	tokenMgr := token.NewManager(&cfg.Auth)
	return NewAuthService(cfg, gate, tokenMgr, zap.NewNop())
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	result, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "lab2024"})
	if err != nil {
		t.Fatalf("登入應成功: %v", err)
	}
	if result.Token == "" {
		t.Error("登入成功應簽發 Token")
	}
	if result.ExpiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("Token 有效期應為 86400 秒，實際為 %d", result.ExpiresIn)
	}

	active, err := svc.SessionActive(ctx)
	if err != nil {
		t.Fatalf("查詢工作階段失敗: %v", err)
	}
	if !active {
		t.Error("登入後工作階段應為有效")
	}
}

func TestAuthServiceLoginInvalidCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("錯誤密碼應回傳 ErrInvalidCredentials，實際為 %v", err)
	}

	if active, _ := svc.SessionActive(ctx); active {
		t.Error("登入失敗不應開啟工作階段")
	}
}

func TestAuthServiceLogout(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	svc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "lab2024"})
	svc.Logout(ctx)

	if active, _ := svc.SessionActive(ctx); active {
		t.Error("登出後工作階段不應有效")
	}

	// 重複登出不應造成任何影響
	svc.Logout(ctx)
}
