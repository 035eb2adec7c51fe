package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

// AppConfig holds all application configuration loaded from environment
// variables. These are populated at startup by the LoadConfig function.
var (
	// WebPort is the listen port for the HTTP API.
	WebPort string

	// AnthropicAPIKey authenticates against the Anthropic messages API.
	// An empty value is a valid, explicit "unconfigured" state: strategy
	// generation still works and deterministically routes to the heuristic
	// fallback.
	AnthropicAPIKey string
	// AnthropicModel is the model identifier for strategy generation.
	AnthropicModel string
	// AnthropicMaxTokens caps the completion size of a strategy response.
	AnthropicMaxTokens int

	// PulseAPI is the base URL of the viral-score service. Empty disables
	// viral enrichment for requests that carry no social data.
	PulseAPI string

	// Database settings. An empty DBHost disables suggestion history.
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
)

const (
	defaultWebPort   = "8080"
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 1500
	defaultDBPort    = 5432
	defaultSSLMode   = "disable"
)

// LoadConfig loads configuration from environment variables and sets the
// global config vars. Only the variables that gate hard requirements are
// mandatory; credentials and endpoints that have a degradation path are
// optional by design.
func LoadConfig() error {
	log.Info().Msg("Loading application configuration from environment variables...")

	WebPort = getEnvOrDefault("WEB_PORT", defaultWebPort)

	AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	if AnthropicAPIKey == "" {
		log.Warn().Msg("ANTHROPIC_API_KEY not set; all strategies will use the deterministic fallback")
	}
	AnthropicModel = getEnvOrDefault("ANTHROPIC_MODEL", defaultModel)

	var err error
	AnthropicMaxTokens, err = getEnvAsIntOrDefault("ANTHROPIC_MAX_TOKENS", defaultMaxTokens)
	if err != nil {
		return err
	}
	if AnthropicMaxTokens <= 0 {
		return errors.New("ANTHROPIC_MAX_TOKENS must be positive")
	}

	PulseAPI = os.Getenv("PULSE_API")

	DBHost = os.Getenv("DB_HOST")
	if DBHost != "" {
		DBPort, err = getEnvAsIntOrDefault("DB_PORT", defaultDBPort)
		if err != nil {
			return err
		}
		DBUser = os.Getenv("DB_USER")
		DBPassword = os.Getenv("DB_PASSWORD")
		DBName = os.Getenv("DB_NAME")
		if DBUser == "" || DBName == "" {
			return errors.New("DB_USER and DB_NAME are required when DB_HOST is set")
		}
		DBSSLMode = getEnvOrDefault("DB_SSLMODE", defaultSSLMode)
	} else {
		log.Warn().Msg("DB_HOST not set; suggestion history is disabled")
	}

	log.Debug().
		Str("webPort", WebPort).
		Str("model", AnthropicModel).
		Int("maxTokens", AnthropicMaxTokens).
		Bool("anthropicConfigured", AnthropicAPIKey != "").
		Bool("pulseConfigured", PulseAPI != "").
		Bool("historyEnabled", DBHost != "").
		Msg("Configuration loaded successfully.")

	return nil
}

// getEnvOrDefault reads an environment variable with a fallback value.
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsIntOrDefault reads an integer environment variable with a fallback.
func getEnvAsIntOrDefault(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("environment variable " + key + " must be an integer")
	}
	return parsed, nil
}
