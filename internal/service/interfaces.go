package service

import (
	"context"

	"github.com/pageza/alchemorsel-v2/price-estimator/internal/types"
)

// IPricingService defines the interface for price estimation
type IPricingService interface {
	EstimatePrice(ctx context.Context, req *types.PriceEstimateRequest) (string, error)
}

var _ IPricingService = (*PricingService)(nil)
