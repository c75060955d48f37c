package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pageza/alchemorsel-v2/price-estimator/config"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/logging"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment.IsProduction())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	gin.SetMode(cfg.Environment.GinMode())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := server.New(cfg, logger, registry)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.WithError(err).Fatal("Server error")
		}
		return
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("Received signal")
	}

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server shutdown error")
	}
	logger.Info("Server stopped")
}
