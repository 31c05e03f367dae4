package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
// It is built once in main and passed explicitly to the components that need it.
type Config struct {
	ServerPort string
	BaseURL    string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	port := getEnv("SERVER_PORT", "3000")
	return &Config{
		ServerPort: port,
		BaseURL:    getEnv("BASE_URL", "http://localhost:"+port),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/sharemypics?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
