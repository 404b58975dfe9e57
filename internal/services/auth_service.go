package services

import (
	"context"
	"fmt"

	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

type AuthService struct {
	adminRepo models.AdminRepo
}

func NewAuthService(adminRepo models.AdminRepo) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
	}
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, fmt.Errorf("invalid password format: %v", err)
	}
	resp, err := as.adminRepo.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}
	return resp, nil
}

func (as *AuthService) RefreshSession(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}
	resp, err := as.adminRepo.RefreshSession(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("session refresh failed: %v", err)
	}
	return resp, nil
}
