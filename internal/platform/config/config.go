package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration

	SessionPath string

	RunMinLatency time.Duration
	RunBudget     time.Duration

	CacheAddr     string
	CachePassword string
	CacheDB       int
	CacheTTL      time.Duration

	Debug bool

	// Mock judge settings (cmd/mockjudge only).
	MockJudgePort string
	JWTKey        []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIBaseURL:    getEnv("API_BASE_URL", "http://127.0.0.1:8000"),
		HTTPTimeout:   time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		SessionPath:   getEnv("SESSION_PATH", defaultSessionPath()),
		RunMinLatency: time.Duration(getEnvAsInt("RUN_MIN_LATENCY_MS", 1000)) * time.Millisecond,
		RunBudget:     time.Duration(getEnvAsInt("RUN_BUDGET_MS", 5000)) * time.Millisecond,
		CacheAddr:     getEnv("CACHE_REDIS_ADDR", ""),
		CachePassword: getEnv("CACHE_REDIS_PASSWORD", ""),
		CacheDB:       getEnvAsInt("CACHE_REDIS_DB", 0),
		CacheTTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		Debug:         getEnv("DEBUG", "") != "",
		MockJudgePort: getEnv("MOCK_JUDGE_PORT", "8000"),
		JWTKey:        []byte(getEnv("JWT_SECRET", "defaultsecret")),
		AccessTTL:     time.Duration(getEnvAsInt("ACCESS_TTL_MINUTES", 30)) * time.Minute,
		RefreshTTL:    time.Duration(getEnvAsInt("REFRESH_TTL_HOURS", 24)) * time.Hour,
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".createathon/session.json"
	}
	return filepath.Join(dir, "createathon", "session.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
