package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

// UpstreamConfig points at the platform API this service projects from.
type UpstreamConfig struct {
	BaseURL      string
	ServiceToken string
	Timeout      time.Duration
	PollInterval time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey string
}

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	JWT      JWTConfig

	// How long a previously derived status stays in the cache for change
	// detection between polls.
	StatusCacheTTL time.Duration
	// How long onboarding flags live without being touched.
	OnboardingTTL time.Duration
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found or could not be loaded")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL:      getEnv("UPSTREAM_BASE_URL", "http://localhost:9090"),
			ServiceToken: getEnv("UPSTREAM_SERVICE_TOKEN", ""),
			Timeout:      getDuration("UPSTREAM_TIMEOUT", 20*time.Second),
			PollInterval: getDuration("POLL_INTERVAL", 15*time.Second),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "dev-only-secret"),
		},
		StatusCacheTTL: getDuration("STATUS_CACHE_TTL", 24*time.Hour),
		OnboardingTTL:  getDuration("ONBOARDING_TTL", 90*24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
