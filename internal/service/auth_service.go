package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/session"
	"github.com/Rogerszheng0724/my-lab-website/pkg/token"
)

var (
	ErrInvalidCredentials = errors.New("帳號或密碼錯誤")
)

// AuthService 管理員認證業務介面
type AuthService interface {
	// Login 核對帳密並簽發管理員 Token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout 關閉工作階段；一律成功
	Logout(ctx context.Context)
	// SessionActive 回報工作階段是否仍有效
	SessionActive(ctx context.Context) (bool, error)
}

type authService struct {
	cfg      *config.Config
	gate     *session.Gate
	tokenMgr *token.Manager
	logger   *zap.Logger
}

// NewAuthService 建立 AuthService 實例
func NewAuthService(
	cfg *config.Config,
	gate *session.Gate,
	tokenMgr *token.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:      cfg,
		gate:     gate,
		tokenMgr: tokenMgr,
		logger:   logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ok, err := s.gate.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.Error("寫入工作階段狀態失敗", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	t, err := s.tokenMgr.Generate(req.Username)
	if err != nil {
		s.logger.Error("簽發 Token 失敗", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     t,
		ExpiresIn: int(s.cfg.Auth.SessionTTL.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context) {
	s.gate.Logout(ctx)
}

func (s *authService) SessionActive(ctx context.Context) (bool, error) {
	return s.gate.Active(ctx)
}
