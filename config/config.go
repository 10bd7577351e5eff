package config

import (
	"errors"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port       string
	DBDriver   string
	DBDSN      string
	JWTSecret  string
	GinMode    string
	CORSOrigin string
	StaticDir  string
}

// Load reads configuration from the environment. JWT_SECRET has no
// default on purpose; main treats its absence as fatal.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBDSN:      getEnv("DB_DSN", "restaurant.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		GinMode:    os.Getenv("GIN_MODE"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		StaticDir:  getEnv("STATIC_DIR", "client/dist"),
	}
}

// OpenDB connects to the configured database. MySQL for deployments,
// SQLite for local runs and tests.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, errors.New("unsupported DB_DRIVER: " + cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
