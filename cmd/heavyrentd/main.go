package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"heavyrent-backend/config"
	"heavyrent-backend/internal/api"
	"heavyrent-backend/internal/auth"
	"heavyrent-backend/internal/db"
	"heavyrent-backend/internal/notification"
	"heavyrent-backend/internal/service"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "heavyrent-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire the services explicitly; there is no global registry.
	users := service.NewUsers(gormDB)
	machines := service.NewMachines(gormDB, users)
	rentals := service.NewRentals(gormDB, machines)
	subscriptions := service.NewSubscriptions(gormDB)

	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	identity := auth.NewGoogleVerifier(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret, cfg.OAuth.CallbackURL)

	// Owner push notifications run only when VAPID keys are configured.
	var notifier api.Notifier
	var webpushOptions *webpush.Options
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool := notification.NewWorkerPool(cfg.WorkerPool.Size, gormDB, webpushOptions)
		pool.Start(ctx)
		notifier = pool
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	} else {
		logger.Println("VAPID keys are not configured; web push notifications disabled")
	}

	// Initialize router
	handler := api.NewHandler(api.HandlerConfig{
		Users:         users,
		Machines:      machines,
		Rentals:       rentals,
		Subscriptions: subscriptions,
		Tokens:        tokens,
		Identity:      identity,
		Notifier:      notifier,
		WebPush:       webpushOptions,
	})
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
