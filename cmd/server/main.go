// main.go
//
// Hooomz OS — back-office data service for the Hooomz construction management application
// Copyright (c) 2026 Hooomz
//
// This file is part of hooomz-os.
// hooomz-os is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// hooomz-os is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with hooomz-os.
// If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/config"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/database"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/handlers"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/middleware"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/notify"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/types"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/visibility"

	_ "github.com/nrmontgomery1984-cell/hooomz-os/docs/api" // Swagger docs
)

// @title Hooomz OS API
// @version 1.0.0
// @description Back-office data service for the Hooomz construction management application
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/nrmontgomery1984-cell/hooomz-os

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Visibility settings store. Without Redis the matrix still works from
	// the authority-level defaults; overrides just don't survive restarts.
	var store visibility.Store
	if cfg.RedisAddr != "" {
		store = visibility.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	} else {
		log.Printf("No REDIS_ADDR configured, visibility overrides are in-memory only")
		store = &visibility.MemoryStore{}
	}
	resolver := visibility.New(store)

	// Phase change webhook (optional)
	webhook := notify.NewWebhook(cfg.PhaseWebhookURL)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("hooomz")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	projectHandler := &handlers.ProjectHandler{DB: db, Webhook: webhook}
	loopHandler := &handlers.LoopHandler{DB: db}
	taskHandler := &handlers.TaskHandler{DB: db}
	changeOrderHandler := &handlers.ChangeOrderHandler{DB: db}
	visibilityHandler := &handlers.VisibilityHandler{Resolver: resolver}
	navigationHandler := &handlers.NavigationHandler{Resolver: resolver}
	teamHandler := &handlers.TeamHandler{DB: db}
	reportHandler := &handlers.ReportHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Health (unauthenticated, used by the container healthcheck)
	api.Get("/health", healthHandler.Health)

	// Project routes
	api.Get("/projects", middleware.AuthUser(), projectHandler.ListProjects)
	api.Post("/projects", middleware.AuthUser(), projectHandler.CreateProject)
	api.Get("/projects/:id", middleware.AuthUser(), projectHandler.GetProject)
	api.Patch("/projects/:id", middleware.AuthUser(), projectHandler.UpdateProject)
	api.Delete("/projects/:id", middleware.AuthAdmin(), projectHandler.DeleteProject)
	api.Post("/projects/:id/phase", middleware.AuthUser(), projectHandler.TransitionPhase)

	// Loop routes
	api.Get("/projects/:id/loops", middleware.AuthUser(), loopHandler.ListLoops)
	api.Post("/projects/:id/loops", middleware.AuthUser(), loopHandler.CreateLoop)
	api.Get("/loops/:id", middleware.AuthUser(), loopHandler.GetLoop)
	api.Patch("/loops/:id", middleware.AuthUser(), loopHandler.UpdateLoop)
	api.Get("/loops/:id/can-modify", middleware.AuthUser(), loopHandler.CanModify)

	// Task routes
	api.Post("/loops/:id/tasks", middleware.AuthUser(), taskHandler.CreateTask)
	api.Patch("/tasks/:id/status", middleware.AuthUser(), taskHandler.UpdateTaskStatus)
	api.Delete("/tasks/:id", middleware.AuthUser(), taskHandler.DeleteTask)

	// Change order routes
	api.Get("/projects/:id/change-orders", middleware.AuthUser(), changeOrderHandler.ListChangeOrders)
	api.Post("/projects/:id/change-orders", middleware.AuthUser(), changeOrderHandler.CreateChangeOrder)
	api.Get("/change-orders/:id", middleware.AuthUser(), changeOrderHandler.GetChangeOrder)
	api.Post("/change-orders/:id/approve", middleware.AuthAdmin(), changeOrderHandler.ApproveChangeOrder)
	api.Post("/change-orders/:id/reject", middleware.AuthAdmin(), changeOrderHandler.RejectChangeOrder)
	api.Delete("/change-orders/:id", middleware.AuthUser(), changeOrderHandler.DeleteChangeOrder)

	// Visibility matrix (admin-only mutations)
	api.Get("/visibility", middleware.AuthUser(), visibilityHandler.GetMatrix)
	api.Patch("/visibility", middleware.AuthAdmin(), visibilityHandler.UpdateMatrix)
	api.Post("/visibility/reset", middleware.AuthAdmin(), visibilityHandler.ResetMatrix)

	// Navigation for the acting role
	api.Get("/navigation/sections", middleware.AuthUser(), navigationHandler.Sections)
	api.Get("/navigation/route-access", middleware.AuthUser(), navigationHandler.CheckRoute)

	// Team, time and costs
	api.Get("/team", middleware.AuthUser(), teamHandler.ListTeamMembers)
	api.Post("/team", middleware.AuthAdmin(), teamHandler.CreateTeamMember)
	api.Get("/team/:id", middleware.AuthUser(), teamHandler.GetTeamMember)
	api.Patch("/team/:id", middleware.AuthAdmin(), teamHandler.UpdateTeamMember)
	api.Delete("/team/:id", middleware.AuthAdmin(), teamHandler.DeleteTeamMember)
	api.Get("/projects/:id/time", middleware.AuthUser(), teamHandler.ListTimeEntries)
	api.Post("/projects/:id/time", middleware.AuthUser(), teamHandler.CreateTimeEntry)
	api.Get("/projects/:id/expenses", middleware.AuthUser(), teamHandler.ListExpenses)
	api.Post("/projects/:id/expenses", middleware.AuthUser(), teamHandler.CreateExpense)

	// Reports
	api.Get("/projects/:id/report", middleware.AuthUser(), reportHandler.ProjectWorkbook)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	middleware.Setup(cfg)
	log.Printf("Authorizer will be initialized on first authenticated request")

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
