package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dale-waterworth/HealthyMe/internal/api"
	"github.com/dale-waterworth/HealthyMe/internal/db"
	"github.com/dale-waterworth/HealthyMe/internal/notify"
	"github.com/dale-waterworth/HealthyMe/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local runs; real env always wins.
	_ = godotenv.Load()

	location := mustLoadLocation(getEnv("TZ", "Local"))
	time.Local = location

	dbPath := getEnv("DB_PATH", filepath.Join("data", "healthyme.db"))
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	notifier := buildNotifier(getEnv("NOTIFY_CHANNEL", "log"))
	repositories := db.NewRepositories(database)
	scheduler := services.NewReminderScheduler(
		repositories.Profiles,
		repositories.Reminders,
		repositories.Intakes,
		notifier,
		location,
	)

	handler := api.NewHandler(database, scheduler, notifier, location)

	app := fiber.New(fiber.Config{
		AppName:               "HealthyMe",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	scheduler.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("HealthyMe listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildNotifier(channel string) notify.Dispatcher {
	switch channel {
	case "telegram":
		return notify.NewTelegramDispatcherFromEnv()
	default:
		return notify.NewLogDispatcher()
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
