package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 應用全域設定結構體
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP 伺服器設定
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域設定
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig 資料庫設定
// driver 為 memory 時使用內建記憶體資料層（展示模式，附示範資料）
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // memory | postgres
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // 連線最大生命週期（分鐘）
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 閒置連線最大存活時間（分鐘）
}

// DSN 產生 PostgreSQL 連線字串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 設定（管理員工作階段狀態與登入限流）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig 管理員認證設定
// 帳號密碼為固定一組明文（僅供內部展示，非正式身分系統）
type AuthConfig struct {
	AdminUsername string        `mapstructure:"admin_username"`
	AdminPassword string        `mapstructure:"admin_password"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	TokenSecret   string        `mapstructure:"token_secret"`
}

// LogConfig 日誌設定
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 從設定檔與環境變數載入設定
// 優先順序：環境變數 > 設定檔 > 預設值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 預設值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.driver", "memory")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "lab_website")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Taipei")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)  // 60分鐘
	v.SetDefault("db.conn_max_idle_time", 30) // 30分鐘

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("auth.admin_password", "lab2024")
	v.SetDefault("auth.session_ttl", "24h")
	// 空字串佔位，實際值須由設定檔或 LAB_AUTH_TOKEN_SECRET 提供
	v.SetDefault("auth.token_secret", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 設定檔 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 環境變數 ──
	v.SetEnvPrefix("LAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("讀取設定檔失敗: %w", err)
		}
		// 設定檔不存在時僅依賴預設值和環境變數
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析設定失敗: %w", err)
	}

	// ── 關鍵設定校驗 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校驗關鍵設定項
func (c *Config) Validate() error {
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("設定校驗失敗: auth.token_secret 不能為空")
	}
	if len(c.Auth.TokenSecret) < 16 {
		return fmt.Errorf("設定校驗失敗: auth.token_secret 長度不能少於 16 字元")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("設定校驗失敗: server.port 必須在 1-65535 之間")
	}
	switch c.Database.Driver {
	case "memory", "postgres":
	default:
		return fmt.Errorf("設定校驗失敗: db.driver 必須為 memory 或 postgres")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("設定校驗失敗: auth.session_ttl 必須為正值")
	}
	return nil
}
