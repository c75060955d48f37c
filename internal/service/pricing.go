package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageza/alchemorsel-v2/price-estimator/config"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/logging"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/metrics"
	"github.com/pageza/alchemorsel-v2/price-estimator/internal/types"
)

const (
	// maxErrorBodyBytes bounds how much of a failed upstream body is kept for details
	maxErrorBodyBytes = 512

	redactedKey = "REDACTED"
)

// PricingService relays ingredient lists to the Spoonacular price estimator
type PricingService struct {
	apiKey  string
	apiURL  string
	client  *http.Client
	metrics metrics.Recorder
	log     *logrus.Logger
}

// NewPricingService creates a PricingService from the loaded configuration.
// A zero SpoonacularTimeout leaves the upstream call without a deadline.
func NewPricingService(cfg *config.Config, recorder metrics.Recorder, logger *logrus.Logger) *PricingService {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &PricingService{
		apiKey:  cfg.SpoonacularAPIKey,
		apiURL:  cfg.SpoonacularAPIURL,
		client:  &http.Client{Timeout: cfg.SpoonacularTimeout},
		metrics: recorder,
		log:     logger,
	}
}

// EstimatePrice forwards req to the pricing service and returns the HTML fragment it renders.
// The configuration check runs before input validation, and no call is made if either fails.
func (s *PricingService) EstimatePrice(ctx context.Context, req *types.PriceEstimateRequest) (string, error) {
	if s.apiKey == "" {
		return "", &ConfigurationError{Setting: "SPOONACULAR_API_KEY"}
	}
	if req == nil || req.IngredientList == "" {
		return "", &ValidationError{Field: "ingredientList"}
	}

	endpoint, err := s.endpoint()
	if err != nil {
		return "", &UnexpectedError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(buildPayload(req).Encode()))
	if err != nil {
		return "", &UnexpectedError{Err: redact(err, s.apiKey)}
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "text/html")

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.metrics.ObserveUpstream(0, time.Since(start))
		err = redact(err, s.apiKey)
		s.log.WithError(err).Error("[PricingService] Request to pricing service failed")
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.metrics.ObserveUpstream(resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt := string(body)
		if len(excerpt) > maxErrorBodyBytes {
			excerpt = excerpt[:maxErrorBodyBytes]
		}
		s.log.WithField("status", resp.StatusCode).Error("[PricingService] Pricing service returned non-success status")
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(excerpt)}
	}
	if err != nil {
		err = redact(err, s.apiKey)
		s.log.WithError(err).Error("[PricingService] Failed to read pricing service response")
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	s.log.WithField("bytes", len(body)).Debug("[PricingService] Received price breakdown")
	return string(body), nil
}

// endpoint returns the upstream URL with the API key attached as a query parameter
func (s *PricingService) endpoint() (string, error) {
	u, err := url.Parse(s.apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid pricing service URL: %w", err)
	}
	q := u.Query()
	q.Set("apiKey", s.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// buildPayload assembles the form body, applying the servings default and the fixed widget options
func buildPayload(req *types.PriceEstimateRequest) url.Values {
	servings := req.Servings
	if servings == "" {
		servings = types.DefaultServings
	}

	form := url.Values{}
	form.Set("ingredientList", req.IngredientList)
	form.Set("servings", servings)
	form.Set("mode", "1")
	form.Set("defaultCss", "true")
	form.Set("showBacklink", "true")
	form.Set("language", "en")
	return form
}

// redact strips the API key from errors that embed the request URL
func redact(err error, apiKey string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(apiKey), redactedKey)
	}
	if apiKey != "" && strings.Contains(err.Error(), apiKey) {
		return errors.New(strings.ReplaceAll(err.Error(), apiKey, redactedKey))
	}
	return err
}
