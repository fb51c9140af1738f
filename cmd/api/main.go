package main

import (
	"context"
	"log"
	"time"

	"shipment-ledger/internal/core/config"
	"shipment-ledger/internal/core/logger"
	"shipment-ledger/internal/core/server"
	"shipment-ledger/internal/core/store"
	"shipment-ledger/internal/features/shipments/adapters"
	"shipment-ledger/internal/features/shipments/handler"
	"shipment-ledger/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Shipment Ledger API
// @version 1.0
// @description This API manages shipments and their append-only tracking-event history.
// @contact.name API Support
// @contact.email support@shipmentledger.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the document store and verify connectivity.
	st, err := store.NewRedisAdapter(cfg.Store.RedisURL)
	if err != nil {
		l.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer st.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.Ping(pingCtx); err != nil {
		l.Fatal("Store health check failed", zap.Error(err))
	}
	l.Info("Store connection verified")

	// Initialize shipment adapters.
	shipmentRepo := adapters.NewRedisShipmentRepository(st)
	eventLedger := adapters.NewRedisEventLedger(st)
	notifier := adapters.NewWebhookNotifier(
		cfg.Notify.WebhookURL,
		time.Duration(cfg.Notify.TimeoutSeconds)*time.Second,
	)
	if cfg.Notify.WebhookURL == "" {
		l.Warn("Notification webhook not configured, dispatch disabled")
	}

	// Initialize Shipment Service & Handler.
	shipmentSvc := service.NewShipmentService(shipmentRepo, eventLedger, notifier)
	shipmentHdl := handler.NewShipmentHandler(shipmentSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Post("/shipments", shipmentHdl.CreateShipment)
	srv.App.Get("/shipments/:tracking", shipmentHdl.GetShipment)
	srv.App.Patch("/shipments/:tracking", shipmentHdl.UpdateShipment)
	srv.App.Get("/healthz", func(c *fiber.Ctx) error {
		if err := st.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
