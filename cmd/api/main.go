package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Monish892/Payment-integration/internal/adapter/handler"
	"github.com/Monish892/Payment-integration/internal/adapter/middleware"
	"github.com/Monish892/Payment-integration/internal/adapter/remote"
	"github.com/Monish892/Payment-integration/internal/adapter/storage"
	"github.com/Monish892/Payment-integration/internal/core/config"
	"github.com/Monish892/Payment-integration/internal/core/orchestrator"
	"github.com/Monish892/Payment-integration/internal/core/resolver"
	"github.com/Monish892/Payment-integration/internal/core/security"
	"github.com/Monish892/Payment-integration/internal/core/worker"
	"github.com/Monish892/Payment-integration/pkg/logging"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logging.Setup(cfg.Env)

	// 3. Build Stores
	ledger := storage.NewLedger()
	directory := storage.NewDirectory()

	// 4. Core flow: resolver behind the remote/local orchestrator
	res := resolver.New(ledger, resolver.NewSource(time.Now().UnixNano()))

	var remoteChannel orchestrator.RemoteChannel
	if cfg.RemoteURL != "" {
		remoteChannel = remote.New(cfg.RemoteURL, cfg.RemoteTimeout)
		slog.Info("Remote resolution enabled", "url", cfg.RemoteURL)
	} else {
		slog.Info("No REMOTE_URL configured, resolving locally only")
	}
	flow := orchestrator.New(res, remoteChannel, orchestrator.Options{
		MinLatency:    cfg.MinLatency,
		RemoteTimeout: cfg.RemoteTimeout,
	})

	// 5. Webhook worker
	hooks := worker.StartWebhookWorker(cfg.WebhookURL, cfg.WebhookSecret)

	// 6. API keys (auth is optional; enabled when API_KEY is set)
	keys := security.NewKeyStore()
	if cfg.APIKey != "" {
		keys.Add(security.HashKey(cfg.APIKey))
	}

	// 7. Handlers
	qrHandler := &handler.QRHandler{Directory: directory}
	paymentHandler := &handler.PaymentHandler{Flow: flow, Hooks: hooks}
	transactionHandler := &handler.TransactionHandler{Ledger: ledger}
	keyHandler := &handler.KeyHandler{Keys: keys}

	// 8. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	// Public
	app.Post("/generate-qr", qrHandler.GenerateQR)
	app.Post("/scan-qr", qrHandler.ScanQR)
	app.Post("/validate-upi", qrHandler.ValidateUPI)
	app.Get("/transaction/:id", transactionHandler.GetTransaction)
	app.Get("/transactions", transactionHandler.ListTransactions)
	app.Post("/keys", keyHandler.GenerateKey)

	// Protected (only when a key is configured)
	idem := middleware.NewIdempotencyStore()
	if cfg.APIKey != "" {
		private := app.Use(middleware.Protected(keys))
		private.Post("/pay", middleware.Idempotency(idem), paymentHandler.MakePayment)
	} else {
		app.Post("/pay", middleware.Idempotency(idem), paymentHandler.MakePayment)
	}

	// Graceful shutdown: stop accepting requests, then drain the worker.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	hooks.Stop()

	slog.Info("👋 Server exited successfully")
}
