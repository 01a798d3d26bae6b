package config

import (
	"fmt"
	"os"
	"time"

	"gametracker/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath         string
	ServerPort     string
	LogLevel       string
	JWTSecret      string
	TokenTTL       time.Duration
	NewsFeedURL    string
	NewsFeedAPIKey string
	NewsRefreshTTL time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "gametracker.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       getDuration("TOKEN_TTL", constants.DefaultTokenTTL),
		NewsFeedURL:    getEnv("NEWS_FEED_URL", "https://api.gamingnewsapi.dev/v1"),
		NewsFeedAPIKey: getEnv("NEWS_FEED_API_KEY", ""),
		NewsRefreshTTL: getDuration("NEWS_REFRESH_TTL", constants.NewsRefreshTTL),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("token_ttl", cfg.TokenTTL).
		Bool("news_feed_enabled", cfg.NewsFeedAPIKey != "").
		Dur("news_refresh_ttl", cfg.NewsRefreshTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
