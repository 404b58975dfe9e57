package models

import (
	"context"
	"fmt"

	"github.com/supabase-community/gotrue-go/types"
)

// AdminRepo wraps the Supabase auth endpoints used by the dashboard.
// Access control itself (row-level policies) lives on the remote
// service; this only brokers sessions.
type AdminRepo interface {
	SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error)
	RefreshSession(ctx context.Context, refreshToken string) (*types.TokenResponse, error)
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshSession(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh session: %v", err)
	}
	return resp, nil
}
