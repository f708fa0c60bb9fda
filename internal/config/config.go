package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"portfolio-api/internal/service"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv           string
	LogLevel         slog.Level
	HTTPAddr         string
	DatabaseURL      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	DownloadDir      string
	PasswordMode     service.PasswordMode
	CORSAllowOrigins []string
}

// 供測試替換
var loadDotEnv = func() error { return godotenv.Load() }

// Load 讀取環境變數；若工作目錄有 .env 會先載入 (不覆蓋已存在的變數)
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("載入 .env 失敗: %w", err)
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		DownloadDir:      getEnv("DOWNLOAD_DIR", "."),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		return nil, fmt.Errorf("無效的 REDIS_DB: %q", os.Getenv("REDIS_DB"))
	}
	cfg.RedisDB = redisDB

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "INFO"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	mode, err := service.ParsePasswordMode(strings.ToLower(getEnv("PASSWORD_HASHING", string(service.PasswordPlain))))
	if err != nil {
		return nil, fmt.Errorf("無效的 PASSWORD_HASHING: %w", err)
	}
	cfg.PasswordMode = mode

	return cfg, nil
}

// DatabaseURL 只讀取 DATABASE_URL，供不需要其他設定的 migrate 指令使用
func DatabaseURL() (string, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("載入 .env 失敗: %w", err)
	}
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return "", fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	return url, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("無效的 LOG_LEVEL: %q", s)
	}
	return level, nil
}
