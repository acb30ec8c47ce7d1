package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration. Every field maps to one
// environment variable; Load fails fast when a required one is missing.
type Config struct {
	AppEnv      string
	Port        string
	MetricsPort string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDB       string

	JWTSecret    string
	AccessTTLMin int
	BcryptCost   int

	CacheBackend    string // "memory" or "redis"
	CacheTTLSeconds int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

func Load() Config {
	return Config{
		AppEnv:      getenv("APP_ENV", "development"),
		Port:        getenv("APP_PORT", "8080"),
		MetricsPort: getenv("METRICS_PORT", "9091"),

		PGHost:     must("PG_HOST"),
		PGPort:     must("PG_PORT"),
		PGUser:     must("PG_USER"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGDB:       must("PG_DB"),

		JWTSecret:    must("JWT_SECRET"),
		AccessTTLMin: getenvInt("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:   getenvInt("BCRYPT_COST", 12),

		CacheBackend:    getenv("CACHE_BACKEND", "memory"),
		CacheTTLSeconds: getenvInt("CACHE_TTL_SECONDS", 300),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getenvInt("REDIS_DB", 0),
	}
}

// DSN builds the postgres connection string shared by sqlx and GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
