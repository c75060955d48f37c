package service

import (
	"fmt"
)

// ConfigurationError reports that the upstream API key is not configured
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Setting)
}

// ValidationError reports a missing required request field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// UpstreamError reports a transport failure or a non-2xx answer from the pricing service.
// StatusCode is zero when no response was received.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("pricing service request failed: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("pricing service returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("pricing service returned status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// UnexpectedError wraps any failure outside the other categories
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}
