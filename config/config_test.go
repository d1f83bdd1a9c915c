package config

import (
	"os"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Driver: "memory",
		},
		Auth: AuthConfig{
			AdminUsername: "admin",
			AdminPassword: "lab2024",
			SessionTTL:    24 * time.Hour,
			TokenSecret:   "test-secret-0123456789abcdef",
		},
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Setenv("LAB_AUTH_TOKEN_SECRET", "test-secret-0123456789abcdef")
	defer os.Unsetenv("LAB_AUTH_TOKEN_SECRET")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("載入預設設定失敗: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("預設埠應為 8080，實際為 %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "memory" {
		t.Errorf("預設資料層驅動應為 memory，實際為 %q", cfg.Database.Driver)
	}
	if cfg.Auth.AdminUsername != "admin" || cfg.Auth.AdminPassword != "lab2024" {
		t.Error("預設管理員帳密不符")
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("預設工作階段 TTL 應為 24h，實際為 %v", cfg.Auth.SessionTTL)
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("合法設定不應校驗失敗: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"缺少 token_secret", func(c *Config) { c.Auth.TokenSecret = "" }},
		{"token_secret 過短", func(c *Config) { c.Auth.TokenSecret = "short" }},
		{"埠號為 0", func(c *Config) { c.Server.Port = 0 }},
		{"埠號超界", func(c *Config) { c.Server.Port = 70000 }},
		{"未知資料層驅動", func(c *Config) { c.Database.Driver = "sqlite" }},
		{"TTL 非正值", func(c *Config) { c.Auth.SessionTTL = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("%s 應校驗失敗", tc.name)
			}
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "pw",
		Name:     "lab_website",
		SSLMode:  "disable",
		Timezone: "Asia/Taipei",
	}

	dsn := cfg.DSN()
	want := "host=localhost port=5432 user=postgres password=pw dbname=lab_website sslmode=disable TimeZone=Asia/Taipei"
	if dsn != want {
		t.Errorf("DSN 不符:\n得到 %s\n期望 %s", dsn, want)
	}
}
