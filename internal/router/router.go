package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/pageza/alchemorsel-v2/price-estimator/config"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/api"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/middleware"
)

// Handlers groups the route handlers mounted by SetupRouter
type Handlers struct {
	PriceEstimator *api.PriceEstimatorHandler
	Health         *api.HealthHandler
	Static         *api.StaticHandler
}

// SetupRouter configures the application routes.
// A nil gatherer leaves /metrics unmounted.
func SetupRouter(cfg *config.Config, handlers Handlers, logger *logrus.Logger, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}

	handlers.Health.RegisterRoutes(router)
	handlers.Static.RegisterRoutes(router)
	handlers.PriceEstimator.RegisterRoutes(router)

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}
