package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultSpoonacularAPIURL is the price estimator visualization endpoint
	DefaultSpoonacularAPIURL = "https://api.spoonacular.com/recipes/visualizePriceEstimator"

	defaultServerHost = "0.0.0.0"
	defaultServerPort = "8080"
	defaultStaticDir  = "static"
	defaultLogLevel   = "info"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Spoonacular configuration
	SpoonacularAPIKey  string
	SpoonacularAPIURL  string
	SpoonacularTimeout time.Duration

	// Static assets
	StaticDir string

	// CORS configuration
	CORSAllowedOrigins []string

	// Observability
	LogLevel       string
	MetricsEnabled bool

	Environment Environment
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// HasAPIKey reports whether an upstream API key is configured
func (c *Config) HasAPIKey() bool {
	return c.SpoonacularAPIKey != ""
}

// LoadConfig creates a new Config instance from a .env file, the environment and secret files.
// A missing API key is not a load error; price requests fail individually instead.
func LoadConfig() (*Config, error) {
	// .env is optional and only used for local development
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost:         getEnv("SERVER_HOST", defaultServerHost),
		ServerPort:         getEnv("SERVER_PORT", defaultServerPort),
		SpoonacularAPIURL:  getEnv("SPOONACULAR_API_URL", DefaultSpoonacularAPIURL),
		StaticDir:          getEnv("STATIC_DIR", defaultStaticDir),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		LogLevel:           getEnv("LOG_LEVEL", defaultLogLevel),
		MetricsEnabled:     true,
		Environment:        GetEnvironment(),
	}

	apiKey, err := readAPIKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load Spoonacular API key: %w", err)
	}
	cfg.SpoonacularAPIKey = apiKey

	if raw := os.Getenv("SPOONACULAR_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, ValidationError{Field: "SPOONACULAR_TIMEOUT", Message: fmt.Sprintf("invalid duration %q", raw)}
		}
		cfg.SpoonacularTimeout = timeout
	}

	if raw := os.Getenv("METRICS_ENABLED"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, ValidationError{Field: "METRICS_ENABLED", Message: fmt.Sprintf("invalid boolean %q", raw)}
		}
		cfg.MetricsEnabled = enabled
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// readAPIKey reads the key from SPOONACULAR_API_KEY, falling back to the file named by SPOONACULAR_API_KEY_FILE
func readAPIKey() (string, error) {
	if apiKey := strings.TrimSpace(os.Getenv("SPOONACULAR_API_KEY")); apiKey != "" {
		return apiKey, nil
	}

	apiKeyFile := os.Getenv("SPOONACULAR_API_KEY_FILE")
	if apiKeyFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(filepath.Clean(apiKeyFile))
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
