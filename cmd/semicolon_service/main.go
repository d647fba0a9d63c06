package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"semicolon_service/internal/memory/app"
	"semicolon_service/internal/memory/repository"
	"semicolon_service/internal/memory/router"
	"semicolon_service/pkg/config"
	"semicolon_service/pkg/database"
	"semicolon_service/pkg/logger"
	testtool "semicolon_service/pkg/test_tool"
	"semicolon_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.Service, config.EnvConfig.LogPath)
	defer logger.Log.Sync()

	cfg, err := config.LoadSemicolon()
	if err != nil {
		logger.Log.Fatal("load config", zap.Error(err))
	}
	if cfg.Mongo.URI == "" {
		// 不中止, 每個需要資料庫的請求都會回 503
		logger.Log.Warn("mongo uri is empty, set MONGODB_URI")
	}

	token.Configure(cfg.Gate.TokenSecret, cfg.Gate.TokenTTL)
	testtool.StartPprof(cfg.Debug.PprofAddr)

	// 連線延遲到第一個請求
	manager := database.NewManager(database.Connection{
		ConnectStr:             cfg.Mongo.URI,
		ConnectTimeout:         cfg.Mongo.ConnectTimeout,
		ServerSelectionTimeout: cfg.Mongo.ServerSelectionTimeout,
		RetryCount:             cfg.Mongo.RetryCount,
		RetryInterval:          cfg.Mongo.RetryInterval,
	}, cfg.Mongo.Database)

	settingRepo := repository.NewMongoSettingRepository(manager)
	memoryRepo := repository.NewMongoMemoryRepository(manager)

	gateUC := app.NewGateUseCase(settingRepo, memoryRepo, cfg.Gate.AdminCode,
		app.WithAdminCodeHash(cfg.Gate.AdminCodeHash))
	seedUC := app.NewSeedUseCase(settingRepo, memoryRepo, cfg.Seed.File)
	handler := app.NewMemoryHandler(gateUC, seedUC, manager, cfg.Gate.ExposeUnlockCode)

	// 创建 Fiber 应用
	r := fiber.New(fiber.Config{
		AppName:               config.EnvConfig.Service,
		DisableStartupMessage: config.IsProduction(),
		EnablePrintRoutes:     config.IsLocal(),
	})

	accessLog, closeLog, err := accessLogWriter(config.EnvConfig.LogPath)
	if err != nil {
		logger.Log.Fatal("open access log", zap.Error(err))
	}
	defer closeLog()
	r.Use(fiber_log.New(fiber_log.Config{
		Output: accessLog,
	}))

	router.RegisterRoutes(r, handler, manager, cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Log.Info("shutting down")
		if err := r.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("fiber shutdown", zap.Error(err))
		}
	}()

	logger.Log.Info(fmt.Sprintf("Semicolon listening on : %s", cfg.Port))
	if err := r.Listen(":" + cfg.Port); err != nil {
		cleanup(manager)
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
	cleanup(manager)
}

// accessLogWriter access.log under logDir, stdout when logDir is empty
func accessLogWriter(logDir string) (io.Writer, func(), error) {
	if logDir == "" {
		return os.Stdout, func() {}, nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(filepath.Join(logDir, "access.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

func cleanup(manager *database.Manager) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := manager.Reset(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Log.Error("mongo disconnect", zap.Error(err))
	}
}
