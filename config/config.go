package config

import (
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	BindAddress string
	DBPath      string
	StaticDir   string
}

func Load() *Config {
	// Best effort; real environment variables win when no .env file exists
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8002"),
		BindAddress: getEnv("BIND_ADDRESS", "0.0.0.0"),
		DBPath:      getEnv("DB_PATH", "game_scores.db"),
		StaticDir:   getEnv("STATIC_DIR", "./static"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// InitDB opens the embedded SQLite database at the configured path. The file
// is created on first open, so calling this on every process start is safe.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
