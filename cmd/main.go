package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza-workshop/internal/config"
	"pizza-workshop/internal/hub"
	"pizza-workshop/internal/logger"
	"pizza-workshop/internal/services/workshop"
	"pizza-workshop/internal/settings"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to configuration file")
		port       = flag.Int("port", 0, "HTTP port (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	log := logger.New("pizza-workshop")
	requestID := logger.GenerateRequestID()

	log.Info("service_started", requestID, "Starting pizza workshop", map[string]any{
		"port":     cfg.Server.Port,
		"currency": cfg.Defaults.Currency,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", requestID, "Received shutdown signal", nil)
		cancel()
	}()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("service_failed", requestID, "Workshop failed", err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", requestID, "Service stopped gracefully", nil)
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	requestID := logger.GenerateRequestID()

	// The one shared settings instance for the whole process; every
	// component holds this same pointer.
	shared := settings.New(
		settings.Currency(cfg.Defaults.Currency),
		cfg.Defaults.TaxPercent,
		cfg.Defaults.DiscountPercent,
	)

	liveLog := hub.New()
	service := workshop.NewService(shared, liveLog)
	handler := workshop.NewHandler(service, liveLog, log)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler.SetupRoutes(),
	}

	go func() {
		log.Info("server_started", requestID, fmt.Sprintf("Workshop started on port %d", cfg.Server.Port), map[string]any{
			"port": cfg.Server.Port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server_failed", requestID, "HTTP server failed", err, nil)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}
