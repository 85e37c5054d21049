package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"aula/config"
	"aula/database"
	authRoutes "aula/routers/authRoutes"
	courseRoutes "aula/routers/courseRoutes"
	moduleRoutes "aula/routers/moduleRoutes"
	scheduleRoutes "aula/routers/scheduleRoutes"
	userRoutes "aula/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var dbCounter atomic.Int64

// SetupApp wires a fresh in-memory database into the global handle and
// returns a fiber app with every route registered. Tests within a package run
// sequentially, so swapping the global per test is safe.
func SetupApp(tb testing.TB) *fiber.App {
	tb.Helper()

	config.AppConfig = &config.Config{
		Port:      "0",
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	moduleRoutes.SetupModuleRoutes(app)
	scheduleRoutes.SetupScheduleRoutes(app)
	userRoutes.SetupUserRoutes(app)
	return app
}

// Request performs a JSON request against the app and returns the response.
func Request(tb testing.TB, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	tb.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			tb.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		tb.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// DecodeBody unmarshals the response body into out.
func DecodeBody(tb testing.TB, resp *http.Response, out interface{}) {
	tb.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		tb.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		tb.Fatalf("decode response body %q: %v", data, err)
	}
}
