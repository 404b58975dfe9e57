package connect

import (
	"fmt"

	"github.com/stripe/stripe-go/v83"
	"github.com/supabase-community/supabase-go"
)

// InitSupabase builds the backend-service client once at startup. The
// server talks to Supabase with the service-role key; row-level
// policies still apply to anything issued with the anon key on the
// frontend.
func InitSupabase(url, key string) (*supabase.Client, error) {
	if url == "" || key == "" {
		return nil, fmt.Errorf("supabase URL and key are required")
	}
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %v", err)
	}
	return client, nil
}

// InitStripe sets the process-wide Stripe API key. The stripe-go
// bindings use a package-level key for the static client.
func InitStripe(secretKey string) error {
	if secretKey == "" {
		return fmt.Errorf("stripe secret key is required")
	}
	stripe.Key = secretKey
	return nil
}
