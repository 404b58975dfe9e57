package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port                   string
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseAnonKey        string
	StripeSecretKey        string
	StripeWebhookSecret    string
	BaseURL                string
	FrontendURL            string
	Environment            string
	LogLevel               string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                   getEnvWithDefault("PORT", "8080"),
		SupabaseURL:            os.Getenv("SUPABASE_URL"),
		SupabaseServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseAnonKey:        os.Getenv("SUPABASE_ANON_KEY"),
		StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:    os.Getenv("STRIPE_WEBHOOK_SECRET"),
		BaseURL:                os.Getenv("BASE_URL"),
		FrontendURL:            getEnvWithDefault("FRONTEND_URL", "http://localhost:3000"),
		Environment:            getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:               getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// Validate required fields. BASE_URL and STRIPE_WEBHOOK_SECRET are
	// checked at request time instead so the guest-facing site stays up
	// even when payments are misconfigured.
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseServiceRoleKey == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
