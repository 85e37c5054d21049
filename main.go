package main

import (
	"aula/config"
	"aula/database"
	"aula/middleware"
	authRoutes "aula/routers/authRoutes"
	courseRoutes "aula/routers/courseRoutes"
	moduleRoutes "aula/routers/moduleRoutes"
	scheduleRoutes "aula/routers/scheduleRoutes"
	userRoutes "aula/routers/userRoutes"
	"aula/utils"
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	app.Use(middleware.RequestID)
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:reqid} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	moduleRoutes.SetupModuleRoutes(app)
	scheduleRoutes.SetupScheduleRoutes(app)
	userRoutes.SetupUserRoutes(app)

	// Serve the SPA from the public folder; unknown non-API paths fall back to
	// index.html so client-side navigation survives a reload.
	app.Static("/", "./public")
	app.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Recurso no encontrado")
		}
		return c.SendFile("./public/index.html")
	})

	utils.InitializeScheduleReminder()

	go func() {
		log.Printf("Server is running on port %s", config.AppConfig.Port)
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.Database.Db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
