package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"promptlab/internal/domain"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv                 string
	LogLevel               string
	Port                   string
	DatabaseURL            string
	DBMaxConns             int
	RedisURL               string
	CORSAllowedOrigins     []string
	DefaultArtworkImageURL string
	HTTPReadTimeout        time.Duration
	HTTPWriteTimeout       time.Duration
	HTTPIdleTimeout        time.Duration
	RateLimitPerMin        int
	TrustProxyHeaders      bool
	QuizAttemptTTL         time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
// DATABASE_URL and REDIS_URL are optional; without them the service keeps its state in memory.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
		Port:                   getEnv("PORT", "8080"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		DBMaxConns:             getEnvInt("DB_MAX_CONNS", 10),
		RedisURL:               os.Getenv("REDIS_URL"),
		CORSAllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		DefaultArtworkImageURL: getEnv("DEFAULT_ARTWORK_IMAGE_URL", domain.DefaultArtworkImageURL),
		HTTPReadTimeout:        time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:       time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:        time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:        getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		TrustProxyHeaders:      getEnvBool("TRUST_PROXY_HEADERS", false),
		QuizAttemptTTL:         time.Minute * time.Duration(getEnvInt("QUIZ_ATTEMPT_TTL_MINUTES", 60)),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	if cfg.RateLimitPerMin <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	if cfg.QuizAttemptTTL <= 0 {
		return nil, fmt.Errorf("QUIZ_ATTEMPT_TTL_MINUTES must be positive")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
