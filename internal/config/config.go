package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Leaderboard backends
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port     string
	LogLevel string
	GinMode  string

	AllowedOrigins []string

	LeaderboardBackend string
	LeaderboardFile    string
	SQLitePath         string

	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	RedisURL       string
	RedisPassword  string
	RedisKeyPrefix string
}

func LoadConfig() *Config {
	backend := strings.ToLower(GetEnv("LEADERBOARD_BACKEND", BackendFile))
	switch backend {
	case BackendFile, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		log.Warn().Str("backend", backend).Msg("unknown LEADERBOARD_BACKEND, using file")
		backend = BackendFile
	}

	// CSV of extra origins next to local development
	allowedOrigins := []string{"http://localhost:5173"}
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	return &Config{
		Port:     GetEnv("PORT", "8080"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
		GinMode:  GetEnv("GIN_MODE", "release"),

		AllowedOrigins: allowedOrigins,

		LeaderboardBackend: backend,
		LeaderboardFile:    GetEnv("LEADERBOARD_FILE", "connect4_leaderboard.txt"),
		SQLitePath:         GetEnv("SQLITE_PATH", "data/connect4.db"),

		DatabaseURL:          GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", "")),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),

		RedisURL:       GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		RedisKeyPrefix: GetEnv("REDIS_KEY_PREFIX", "connect4:leaderboard"),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer value, using default")
		return defaultValue
	}
	return value
}
