package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/pageza/alchemorsel-v2/price-estimator/config"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/api"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/metrics"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/router"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *logrus.Logger
}

// New wires the pricing service, handlers and router from cfg.
// Metrics are registered on registry when enabled; pass a fresh registry in tests.
func New(cfg *config.Config, logger *logrus.Logger, registry *prometheus.Registry) *Server {
	var (
		recorder metrics.Recorder = metrics.Noop{}
		gatherer prometheus.Gatherer
	)
	if cfg.MetricsEnabled && registry != nil {
		recorder = metrics.NewManager(registry)
		gatherer = registry
	}

	if !cfg.HasAPIKey() {
		logger.Warn("SPOONACULAR_API_KEY is not set; price estimates will fail until it is configured")
	}
	if cfg.SpoonacularTimeout == 0 {
		logger.Warn("SPOONACULAR_TIMEOUT is not set; upstream calls have no deadline")
	}

	pricing := service.NewPricingService(cfg, recorder, logger)
	engine := router.SetupRouter(cfg, router.Handlers{
		PriceEstimator: api.NewPriceEstimatorHandler(pricing, recorder, logger),
		Health:         api.NewHealthHandler(),
		Static:         api.NewStaticHandler(cfg.StaticDir),
	}, logger, gatherer)

	return &Server{
		router: engine,
		logger: logger,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: engine,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until the server is shut down. It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("Starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
