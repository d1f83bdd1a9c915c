package session

import (
	"context"
	"crypto/subtle"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/pkg/kv"
)

// 工作階段狀態鍵，沿用前端既有的鍵名
const (
	keyLoggedIn  = "isAdminLoggedIn"
	keyLoginTime = "adminLoginTime"
)

// Gate 管理員工作階段閘門
// 狀態為一個布林旗標加登入時間戳（毫秒），存於注入的鍵值儲存；
// 逾時與否在每次檢查時以注入的時鐘判斷，沒有背景計時器
type Gate struct {
	store    kv.Store
	now      func() time.Time
	username string
	password string
	ttl      time.Duration
	logger   *zap.Logger
}

// NewGate 建立工作階段閘門
// now 為 nil 時使用 time.Now
func NewGate(store kv.Store, cfg *config.AuthConfig, now func() time.Time, logger *zap.Logger) *Gate {
	if now == nil {
		now = time.Now
	}
	return &Gate{
		store:    store,
		now:      now,
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		ttl:      cfg.SessionTTL,
		logger:   logger,
	}
}

// Login 核對帳號密碼並開啟工作階段
// 與固定的一組帳密做等值比對（明文設定值，非正式身分系統）；
// 不符時回傳 false，無鎖定也無次數限制
func (g *Gate) Login(ctx context.Context, username, password string) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		return false, nil
	}

	if err := g.store.Set(ctx, keyLoggedIn, "true"); err != nil {
		return false, err
	}
	ms := g.now().UnixMilli()
	if err := g.store.Set(ctx, keyLoginTime, strconv.FormatInt(ms, 10)); err != nil {
		return false, err
	}

	g.logger.Info("管理員登入成功")
	return true, nil
}

// Active 檢查工作階段是否仍有效
// 旗標為 true 且登入未滿 TTL 時有效；已逾時則清除狀態並回報無效
func (g *Gate) Active(ctx context.Context) (bool, error) {
	flag, ok, err := g.store.Get(ctx, keyLoggedIn)
	if err != nil {
		return false, err
	}
	if !ok || flag != "true" {
		return false, nil
	}

	raw, ok, err := g.store.Get(ctx, keyLoginTime)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// 時間戳毀損視同逾時，清除後重新登入即可
		g.clear(ctx)
		return false, nil
	}

	elapsed := g.now().Sub(time.UnixMilli(ms))
	if elapsed >= g.ttl {
		g.clear(ctx)
		g.logger.Info("管理員工作階段已逾時", zap.Duration("elapsed", elapsed))
		return false, nil
	}

	return true, nil
}

// Logout 無條件關閉工作階段，一律成功
func (g *Gate) Logout(ctx context.Context) {
	g.clear(ctx)
	g.logger.Info("管理員登出")
}

// clear 清除旗標與時間戳
func (g *Gate) clear(ctx context.Context) {
	if err := g.store.Delete(ctx, keyLoggedIn); err != nil {
		g.logger.Warn("清除登入旗標失敗", zap.Error(err))
	}
	if err := g.store.Delete(ctx, keyLoginTime); err != nil {
		g.logger.Warn("清除登入時間戳失敗", zap.Error(err))
	}
}
