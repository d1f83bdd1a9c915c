package token

import (
	"errors"
	"testing"
	"time"

	"github.com/Rogerszheng0724/my-lab-website/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		TokenSecret: "test-secret-0123456789abcdef",
		SessionTTL:  ttl,
	})
}

func TestManagerGenerateAndParse(t *testing.T) {
	mgr := newTestManager(24 * time.Hour)

	tok, err := mgr.Generate("admin")
	if err != nil {
		t.Fatalf("簽發 Token 失敗: %v", err)
	}

	claims, err := mgr.Parse(tok)
	if err != nil {
		t.Fatalf("解析 Token 失敗: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username 應為 admin，實際為 %q", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("Role 應為 admin，實際為 %q", claims.Role)
	}
	if claims.ID == "" {
		t.Error("每個 Token 應有唯一 jti")
	}
}

func TestManagerParseWrongSecret(t *testing.T) {
	mgr := newTestManager(24 * time.Hour)
	other := NewManager(&config.AuthConfig{
		TokenSecret: "another-secret-0123456789abcdef",
		SessionTTL:  24 * time.Hour,
	})

	tok, _ := mgr.Generate("admin")

	if _, err := other.Parse(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("不同密鑰簽發的 Token 應回傳 ErrTokenInvalid，實際為 %v", err)
	}
}

func TestManagerParseExpired(t *testing.T) {
	// TTL 為負值，簽發即過期
	mgr := newTestManager(-time.Minute)

	tok, _ := mgr.Generate("admin")

	if _, err := mgr.Parse(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("過期 Token 應回傳 ErrTokenExpired，實際為 %v", err)
	}
}

func TestManagerParseGarbage(t *testing.T) {
	mgr := newTestManager(24 * time.Hour)

	if _, err := mgr.Parse("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("非法字串應回傳 ErrTokenInvalid，實際為 %v", err)
	}
}
