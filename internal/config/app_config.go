package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppPort               string
	AppEnv                string
	AppCorsAllowedOrigins []string

	CatboxAPIURL    string
	LitterboxAPIURL string
	CatboxUserHash  string

	MaxUploadSizeMB          int
	HTTPClientTimeoutSeconds int
}

func LoadAppConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, reading from system environment variables")
	}

	return &AppConfig{
		AppPort:               getEnv("APP_PORT", "8080"),
		AppEnv:                getEnv("APP_ENV", "production"),
		AppCorsAllowedOrigins: strings.Split(getEnv("APP_CORS_ALLOWED_ORIGINS", "*"), ","),

		CatboxAPIURL:    getEnv("CATBOX_API_URL", "https://catbox.moe/user/api.php"),
		LitterboxAPIURL: getEnv("LITTERBOX_API_URL", "https://litterbox.catbox.moe/resources/internals/api.php"),
		CatboxUserHash:  getEnv("CATBOX_USER_HASH", ""),

		MaxUploadSizeMB:          getEnvAsInt("MAX_UPLOAD_SIZE_MB", 200),
		HTTPClientTimeoutSeconds: getEnvAsInt("HTTP_CLIENT_TIMEOUT_SECONDS", 300),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		slog.Warn("Environment variable must be an integer, using fallback", "key", key, "value", valStr, "fallback", fallback)
		return fallback
	}
	return val
}
