package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LoteCount != 400 {
		t.Errorf("LoteCount = %d, want 400", cfg.LoteCount)
	}
	if cfg.LowStockLimit != 4 {
		t.Errorf("LowStockLimit = %d, want 4", cfg.LowStockLimit)
	}
	if cfg.ShoeSizeMin != 16 || cfg.ShoeSizeMax != 59 {
		t.Errorf("shoe band = %d-%d, want 16-59", cfg.ShoeSizeMin, cfg.ShoeSizeMax)
	}
	if cfg.TelegramEnabled() {
		t.Error("telegram must be disabled without a token")
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOTE_COUNT", "120")
	t.Setenv("LOW_STOCK_LIMIT", "2")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1m")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.LoteCount != 120 {
		t.Errorf("LoteCount = %d", cfg.LoteCount)
	}
	if cfg.LowStockLimit != 2 {
		t.Errorf("LowStockLimit = %d", cfg.LowStockLimit)
	}
	if cfg.ConnMaxLifetime != time.Minute {
		t.Errorf("ConnMaxLifetime = %v", cfg.ConnMaxLifetime)
	}
	if !cfg.TelegramEnabled() {
		t.Error("telegram must be enabled with token and chat id")
	}
	if cfg.TelegramChatID != -100200300 {
		t.Errorf("TelegramChatID = %d", cfg.TelegramChatID)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:          "8080",
			DatabasePath:  "x.db",
			LoteCount:     400,
			LowStockLimit: 4,
			ShoeSizeMin:   16,
			ShoeSizeMax:   59,
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"zero lots", func(c *Config) { c.LoteCount = 0 }},
		{"negative limit", func(c *Config) { c.LowStockLimit = -1 }},
		{"inverted shoe band", func(c *Config) { c.ShoeSizeMin = 40; c.ShoeSizeMax = 20 }},
		{"token without chat", func(c *Config) { c.TelegramBotToken = "123:abc" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted an invalid config")
			}
		})
	}
}
