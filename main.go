package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JojerDojer/web-420/internal/app"
	"github.com/JojerDojer/web-420/internal/config"
	"github.com/JojerDojer/web-420/pkg/logging"
	"github.com/JojerDojer/web-420/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	// --- Initialize Stores, Services and Routes ---
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.New(startCtx, cfg)
	cancel()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	// --- Start RabbitMQ Audit Consumer ---
	if application.MQ != nil {
		slog.Info("Starting RabbitMQ consumer for domain events...")
		if err := application.MQ.ConsumeEvents(rabbitmq.AuditEvent); err != nil {
			slog.Error("Failed to start RabbitMQ consumer", "error", err)
		}
	}

	// --- Start HTTP Server ---
	slog.Info("Starting server", "port", cfg.AppPort, "store", cfg.StoreDriver)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Fiber.Listen(cfg.AppPort); err != nil {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("Shutting down server...")

	if err := application.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("Error during Fiber shutdown", "error", err)
	}
	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := application.Close(closeCtx); err != nil {
		slog.Error("Error closing resources", "error", err)
	}
	slog.Info("Server gracefully stopped")
}
