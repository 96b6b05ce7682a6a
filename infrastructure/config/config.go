package config

import (
	"fmt"
	"os"
)

// Auth modes supported by the identity resolver.
const (
	AuthModeCognito = "cognito"
	AuthModeMock    = "mock"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string
	IndexName     string // GSI for todoId lookups
	EventBusName  string // empty disables event publishing

	// Authentication
	AuthMode   string
	MockUserID string

	// Observability
	LogLevel         string
	MetricsNamespace string
	EnableMetrics    bool
	EnableTracing    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		DynamoDBTable: getEnv("TABLE_NAME", ""),
		IndexName:     getEnv("INDEX_NAME", ""),
		EventBusName:  getEnv("EVENT_BUS_NAME", ""),

		AuthMode:   getEnv("AUTH_MODE", AuthModeCognito),
		MockUserID: getEnv("MOCK_USER_ID", "MR_FAKE"),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "TodoBackend"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", false),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	if c.IndexName == "" {
		return fmt.Errorf("INDEX_NAME is required")
	}
	switch c.AuthMode {
	case AuthModeCognito, AuthModeMock:
	default:
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeCognito, AuthModeMock, c.AuthMode)
	}
	if c.AuthMode == AuthModeMock && c.MockUserID == "" {
		return fmt.Errorf("MOCK_USER_ID is required in mock auth mode")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
