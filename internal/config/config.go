package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration, loaded from the environment.
type Config struct {
	Port string `json:"port"`

	DatabasePath string `json:"database_path"`

	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	LogLevel string `json:"log_level"`

	// Lot numbering: lots run from 1 to LoteCount.
	LoteCount int `json:"lote_count"`

	// Stock alerting.
	LowStockLimit int `json:"low_stock_limit"`

	// Numeric sizes inside this band count as shoe sizes.
	ShoeSizeMin int `json:"shoe_size_min"`
	ShoeSizeMax int `json:"shoe_size_max"`

	// Telegram alerts; alerting is disabled when the token is empty.
	TelegramBotToken string `json:"-"`
	TelegramChatID   int64  `json:"telegram_chat_id"`

	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`
}

// LoadConfig reads the configuration from environment variables with
// sensible defaults for a single-site deployment.
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:         getEnv("SERVER_PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "gestorlotes.db"),

		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 3),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		LoteCount:     getEnvInt("LOTE_COUNT", 400),
		LowStockLimit: getEnvInt("LOW_STOCK_LIMIT", 4),

		ShoeSizeMin: getEnvInt("SHOE_SIZE_MIN", 16),
		ShoeSizeMax: getEnvInt("SHOE_SIZE_MAX", 59),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   getEnvInt64("TELEGRAM_CHAT_ID", 0),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.LoteCount < 1 {
		return fmt.Errorf("lote count must be positive, got %d", c.LoteCount)
	}
	if c.LowStockLimit < 0 {
		return fmt.Errorf("low stock limit must not be negative, got %d", c.LowStockLimit)
	}
	if c.ShoeSizeMin < 1 || c.ShoeSizeMax < c.ShoeSizeMin {
		return fmt.Errorf("invalid shoe size band %d-%d", c.ShoeSizeMin, c.ShoeSizeMax)
	}
	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("telegram bot token set but TELEGRAM_CHAT_ID missing")
	}
	return nil
}

// TelegramEnabled reports whether alerts should go to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != 0
}

// getEnv reads an environment variable with a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable with a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 reads an int64 environment variable with a default.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat reads a float environment variable with a default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable with a default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
