package api

import (
	"errors"
	"net/http"

	"github.com/pageza/alchemorsel-v2/price-estimator/internal/metrics"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/service"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/types"
)

// errorResponse maps a service error onto a status code, JSON body and metrics outcome
func errorResponse(err error) (int, types.ErrorResponse, string) {
	var (
		cfgErr *service.ConfigurationError
		valErr *service.ValidationError
		upErr  *service.UpstreamError
	)

	switch {
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, types.ErrorResponse{Error: types.MsgMissingAPIKey}, metrics.OutcomeConfigurationError
	case errors.As(err, &valErr):
		return http.StatusBadRequest, types.ErrorResponse{Error: types.MsgMissingIngredients}, metrics.OutcomeValidationError
	case errors.As(err, &upErr):
		return http.StatusInternalServerError, types.ErrorResponse{Error: types.MsgUpstreamFailure, Details: upErr.Error()}, metrics.OutcomeUpstreamError
	default:
		return http.StatusInternalServerError, types.ErrorResponse{Error: types.MsgUnexpected, Details: err.Error()}, metrics.OutcomeUnexpectedError
	}
}
