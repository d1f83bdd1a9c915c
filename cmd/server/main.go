package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/internal/api/handler"
	"github.com/Rogerszheng0724/my-lab-website/internal/api/router"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
	"github.com/Rogerszheng0724/my-lab-website/internal/service"
	"github.com/Rogerszheng0724/my-lab-website/internal/session"
	"github.com/Rogerszheng0724/my-lab-website/pkg/database"
	"github.com/Rogerszheng0724/my-lab-website/pkg/kv"
	applogger "github.com/Rogerszheng0724/my-lab-website/pkg/logger"
	"github.com/Rogerszheng0724/my-lab-website/pkg/redis"
	"github.com/Rogerszheng0724/my-lab-website/pkg/token"
)

func main() {
	// 1. 載入設定
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "載入設定失敗: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日誌
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日誌失敗: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("應用啟動中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 初始化資料層
	// memory 驅動附示範資料，開箱即可瀏覽前台；postgres 驅動執行遷移後啟動
	var repo *repository.Repository
	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.NewDB(&cfg.Database, logger)
		if err != nil {
			logger.Fatal("資料庫連線失敗", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("取得底層 sql.DB 失敗", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("資料庫遷移失敗", zap.Error(err))
		}
		defer sqlDB.Close()

		repo = repository.NewGormRepository(db)
		logger.Info("資料庫連線成功")
	default:
		repo = repository.NewMemoryRepository()
		if err := repository.Seed(context.Background(), repo); err != nil {
			logger.Fatal("載入示範資料失敗", zap.Error(err))
		}
		logger.Info("使用記憶體資料層（展示模式）")
	}

	// 4. 連接 Redis（可選：連線失敗時工作階段狀態退回行程內記憶體）
	var sessionStore kv.Store
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 連線失敗，工作階段狀態改存行程內記憶體", zap.Error(err))
		rdb = nil
		sessionStore = kv.NewMemoryStore()
	} else {
		defer rdb.Close()
		sessionStore = rdb
	}

	// 5. 初始化工作階段閘門與 Token 管理器
	gate := session.NewGate(sessionStore, &cfg.Auth, nil, logger)
	tokenMgr := token.NewManager(&cfg.Auth)

	// 6. 依賴注入: Repository → Service → Handler
	svc := service.NewService(cfg, repo, gate, tokenMgr, logger)
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, tokenMgr, gate, rdb, logger)

	// 8. 啟動 HTTP 伺服器（優雅關閉）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 伺服器已啟動", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 伺服器異常", zap.Error(err))
		}
	}()

	// 9. 監聽系統訊號，優雅關閉
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到關閉訊號，開始優雅關閉...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("伺服器關閉異常", zap.Error(err))
	}

	logger.Info("伺服器已關閉")
}
