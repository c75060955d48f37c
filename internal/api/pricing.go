package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/sirupsen/logrus"

	"github.com/pageza/alchemorsel-v2/price-estimator/internal/logging"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/metrics"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/middleware"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/service"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/types"
)

// PriceEstimatorHandler handles price estimation requests
type PriceEstimatorHandler struct {
	pricingService service.IPricingService
	metrics        metrics.Recorder
	log            *logrus.Logger
}

// NewPriceEstimatorHandler creates a new PriceEstimatorHandler
func NewPriceEstimatorHandler(pricingService service.IPricingService, recorder metrics.Recorder, logger *logrus.Logger) *PriceEstimatorHandler {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &PriceEstimatorHandler{
		pricingService: pricingService,
		metrics:        recorder,
		log:            logger,
	}
}

// RegisterRoutes registers the price estimator route
func (h *PriceEstimatorHandler) RegisterRoutes(router gin.IRoutes) {
	router.POST("/price-estimator", h.EstimatePrice)
}

// EstimatePrice relays the submitted ingredient list and returns the assembled HTML page
func (h *PriceEstimatorHandler) EstimatePrice(c *gin.Context) {
	req := &types.PriceEstimateRequest{
		IngredientList: c.PostForm("ingredientList"),
		Servings:       c.DefaultPostForm("servings", types.DefaultServings),
	}

	fragment, err := h.pricingService.EstimatePrice(c.Request.Context(), req)
	if err != nil {
		status, body, outcome := errorResponse(err)
		h.metrics.ObserveRequest(outcome)
		h.log.WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"outcome":    outcome,
			"status":     status,
		}).WithError(err).Warn("Price estimate failed")
		c.JSON(status, body)
		return
	}

	h.metrics.ObserveRequest(metrics.OutcomeSuccess)
	c.Render(http.StatusOK, render.HTML{
		Template: shellTemplate,
		Name:     shellTemplateName,
		Data:     newShellData(fragment),
	})
}
