package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"portfolio-api/internal/api"
	"portfolio-api/internal/cache"
	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	databaseURL     = config.DatabaseURL
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	newLazyRedis    = cache.NewLazyRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackFn      = database.RollbackAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
)

func serve(cfg *config.Config) error {
	log := newLogger(cfg.AppEnv, cfg.LogLevel)

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		// Redis 不可用時仍啟動，/ping 會回報 cache unhealthy
		log.Warn("Redis 連線失敗，稍後重試", slog.String("addr", cfg.RedisAddr), slog.Any("error", err))
		rdb = newLazyRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn("關閉 Redis 連線失敗", "error", err)
		}
	}()

	// 只建立缺少的資料表，從不回滾
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: api.NewValidator()}

	router.Setup(e, db, rdb, router.Options{
		DownloadDir:      cfg.DownloadDir,
		PasswordMode:     cfg.PasswordMode,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Logger:           log,
	})

	log.Info("server starting", slog.String("addr", cfg.HTTPAddr), slog.String("env", cfg.AppEnv))
	if err := startServer(e, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func migrateUp(url string) error {
	if err := runMigrationsFn(url); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}
	slog.Info("migrations applied")
	return nil
}

func migrateDown(url string) error {
	if err := rollbackFn(url); err != nil {
		return fmt.Errorf("RollbackAll 失敗: %w", err)
	}
	slog.Info("migrations rolled back")
	return nil
}
