package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-role-key")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("FrontendURL = %q", cfg.FrontendURL)
	}
	if cfg.Environment != "development" || !cfg.IsDevelopment() {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	cases := []string{"SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY", "STRIPE_SECRET_KEY"}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")

			if _, err := LoadConfig(); err == nil {
				t.Fatalf("LoadConfig succeeded without %s", missing)
			}
		})
	}
}

func TestLoadConfigWebhookSecretOptionalAtStartup(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")
	t.Setenv("BASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig should not require webhook secret at startup: %v", err)
	}
	if cfg.StripeWebhookSecret != "" || cfg.BaseURL != "" {
		t.Errorf("unexpected values: %+v", cfg)
	}
}

func TestLoadConfigProduction(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if !cfg.IsProduction() || cfg.IsDevelopment() {
		t.Errorf("environment flags wrong for production")
	}
}
