package token

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Rogerszheng0724/my-lab-website/config"
)

var (
	ErrTokenExpired = errors.New("token 已過期")
	ErrTokenInvalid = errors.New("token 無效")
)

// Claims 管理員 Token 聲明
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwtv5.RegisteredClaims
}

// Manager 管理員 Token 管理器
// Token 只證明持有者通過過登入；工作階段是否仍有效由 session.Gate 決定，
// 因此登出與逾時都能即時生效
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager 建立 Token 管理器，TTL 與工作階段 TTL 一致
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.TokenSecret),
		ttl:    cfg.SessionTTL,
	}
}

// Generate 簽發管理員 Token
func (m *Manager) Generate(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "my-lab-website",
		},
	}

	t := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse 解析並驗證 Token
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	t, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
