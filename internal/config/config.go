package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SQLitePath    string
	RedisHost     string
	RedisPort     string
	AdminEmail    string
	AdminPassword string
	CovidDataPath string
	SessionTTL    time.Duration
	GinMode       string
}

func Load() *Config {
	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "healthuser"),
		DBPassword:    getEnv("DB_PASSWORD", "healthpassword"),
		DBName:        getEnv("DB_NAME", "aditya_setu"),
		SQLitePath:    getEnv("SQLITE_PATH", "aditya_setu.db"),
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@adityasetu.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		CovidDataPath: getEnv("COVID_DATA_PATH", "statw.txt"),
		SessionTTL:    getDurationEnv("SESSION_TTL_HOURS", 24*7),
		GinMode:       getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultHours int) time.Duration {
	value := os.Getenv(key)
	if value != "" {
		if hours, err := strconv.Atoi(value); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return time.Duration(defaultHours) * time.Hour
}
