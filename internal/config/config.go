package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/valeevte/PriceTracker/internal/database"
	"github.com/valeevte/PriceTracker/internal/scraper"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config собирает настройки сервиса из окружения
type Config struct {
	Port         string
	GinMode      string
	StoreDriver  string
	SQLitePath   string
	FetchTimeout time.Duration
	UserAgent    string
	DB           database.DBConfig
}

// FromEnv читает переменные окружения и подставляет значения по умолчанию.
// .env к этому моменту уже должен быть загружен.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        getenv("PORT", "8080"),
		GinMode:     getenv("GIN_MODE", gin.DebugMode),
		StoreDriver: getenv("STORE_DRIVER", DriverPostgres),
		SQLitePath:  getenv("SQLITE_PATH", "pricetrack.db"),
		UserAgent:   getenv("USER_AGENT", scraper.DefaultUserAgent),
		DB:          database.NewDBConfigFromEnv(),
	}

	if raw := os.Getenv("FETCH_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", raw, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid FETCH_TIMEOUT %q: must not be negative", raw)
		}
		cfg.FetchTimeout = d
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if err := cfg.DB.Validate(); err != nil {
			return Config{}, err
		}
	case DriverSQLite, DriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
