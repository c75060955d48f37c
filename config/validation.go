package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is structurally usable.
// The API key is deliberately not required here.
func ValidateConfig(cfg *Config) error {
	var errs []error

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if u, err := url.Parse(cfg.SpoonacularAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "SPOONACULAR_API_URL", Message: fmt.Sprintf("invalid URL %q", cfg.SpoonacularAPIURL)})
	}

	if cfg.SpoonacularTimeout < 0 {
		errs = append(errs, ValidationError{Field: "SPOONACULAR_TIMEOUT", Message: "must not be negative"})
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, ValidationError{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}

	if cfg.StaticDir == "" {
		errs = append(errs, ValidationError{Field: "STATIC_DIR", Message: "must not be empty"})
	}

	return errors.Join(errs...)
}
