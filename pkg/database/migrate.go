package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations 執行資料庫遷移
// 自動偵測目前版本並套用所有未執行的遷移
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("載入遷移檔案失敗: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("建立遷移驅動失敗: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("初始化遷移實例失敗: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("執行遷移失敗: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("資料庫遷移處於 dirty 狀態", zap.Uint("version", version))
	} else {
		logger.Info("資料庫遷移完成", zap.Uint("version", version))
	}

	return nil
}
