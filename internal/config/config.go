package config

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env  string
	Port string

	RedisURL  string
	RedisPass string
	RedisDB   int

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string // sha256 hex of ADMIN_PASSWORD

	// Behavior flags for quirks inherited from the original economy.
	EnforceAuraExpiry    bool
	KeepPassesOnPrestige bool

	// Bot pool pacing. Seconds in production; tests shrink these.
	BotActionMinDelay time.Duration
	BotActionMaxDelay time.Duration
	BotRoundPause     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		RedisURL:  getEnv("REDIS_URL", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),
		RedisDB:   getEnvInt("REDIS_DB", 0),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),

		EnforceAuraExpiry:    getEnvBool("ENFORCE_AURA_EXPIRY", false),
		KeepPassesOnPrestige: getEnvBool("KEEP_PASSES_ON_PRESTIGE", false),

		BotActionMinDelay: time.Duration(getEnvInt("BOT_ACTION_MIN_SECONDS", 30)) * time.Second,
		BotActionMaxDelay: time.Duration(getEnvInt("BOT_ACTION_MAX_SECONDS", 120)) * time.Second,
		BotRoundPause:     time.Duration(getEnvInt("BOT_ROUND_PAUSE_SECONDS", 60)) * time.Second,
	}

	hash := sha256.Sum256([]byte(getEnv("ADMIN_PASSWORD", "admin123")))
	cfg.AdminPasswordHash = hex.EncodeToString(hash[:])

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
