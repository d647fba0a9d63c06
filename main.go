package main

import (
	"semicolon_service/internal/memory/router"
	"semicolon_service/pkg/config"

	"github.com/gofiber/fiber/v2"
)

// 此程式只用於 swag init, 服務入口在 cmd/semicolon_service
// swag init -g main.go --output ./docs
func main() {
	app := fiber.New()
	router.RegisterRoutes(app, nil, nil, config.Semicolon{})
}
