package router

import (
	"semicolon_service/internal/memory/app"
	"semicolon_service/internal/memory/domain"
	"semicolon_service/pkg/config"
	"semicolon_service/pkg/database"
	"semicolon_service/pkg/middlewares"

	// swagger docs
	_ "semicolon_service/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes 注册解鎖相关的路由
// @title Semicolon API
// @version 1.0
// @description Time-locked memory story gated by an unlock code
// @host localhost:3001
// @BasePath /
func RegisterRoutes(r *fiber.App, h *app.MemoryHandler, db database.Provider, cfg config.Semicolon) {
	r.Get("/swagger/*", swagger.HandlerDefault)

	api := r.Group("/api")
	api.Get("/health", h.Health)

	// everything below needs the store
	r.Use(middlewares.MongoConnection(db))

	api.Get("/status", h.Status)
	api.Post("/login", h.Login)
	if cfg.Gate.RequireToken {
		api.Get("/memories", middlewares.JWTMiddleware(), h.Memories)
	} else {
		api.Get("/memories", h.Memories)
	}
	api.Post("/debug", middlewares.JWTMiddleware(), middlewares.RequireRole(string(domain.RoleAdmin)), h.DebugLogFlag)

	if cfg.Seed.Enabled {
		r.Get("/init", h.Init)
	}

	if cfg.Static.Dir != "" {
		r.Static("/", cfg.Static.Dir)
	}
}
