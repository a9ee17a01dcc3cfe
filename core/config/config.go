// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
)

type WorkOSConfig struct {
	APIKey      string
	ClientID    string
	RedirectURI string
}

type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string
}

type Config struct {
	Port               string
	Environment        string
	DashboardURL       string
	DatabaseURL        string
	ServiceDatabaseURL string
	OTLPEndpoint       string
	WorkOS             WorkOSConfig
	ElevenLabs         ElevenLabsConfig
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from the environment. Credentials for the external
// voice provider are required up front; a missing key is a fatal configuration
// error, never a silent default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               envOr("PORT", "8080"),
		Environment:        envOr("ENVIRONMENT", "development"),
		DashboardURL:       envOr("DASHBOARD_URL", "http://localhost:3000"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ServiceDatabaseURL: os.Getenv("SERVICE_DATABASE_URL"),
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		WorkOS: WorkOSConfig{
			APIKey:      os.Getenv("WORKOS_API_KEY"),
			ClientID:    os.Getenv("WORKOS_CLIENT_ID"),
			RedirectURI: os.Getenv("WORKOS_REDIRECT_URI"),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:  os.Getenv("ELEVENLABS_API_KEY"),
			BaseURL: envOr("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	// The service scope falls back to the user scope when no elevated
	// credential is configured (single-role local development).
	if cfg.ServiceDatabaseURL == "" {
		cfg.ServiceDatabaseURL = cfg.DatabaseURL
	}
	if cfg.WorkOS.APIKey == "" || cfg.WorkOS.ClientID == "" {
		return nil, fmt.Errorf("WORKOS_API_KEY and WORKOS_CLIENT_ID are required")
	}
	if cfg.ElevenLabs.APIKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY is required")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
