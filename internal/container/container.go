package container

import (
	"log/slog"

	"github.com/nataliejames/wedding-api/internal/config"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
	"github.com/supabase-community/supabase-go"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *slog.Logger
	SupabaseClient *supabase.Client

	GuestService   *services.GuestService
	RSVPService    *services.RSVPService
	PhotoService   *services.PhotoService
	PaymentService *services.PaymentService
	ShuttleService *services.ShuttleService
	AuthService    *services.AuthService
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger, supabaseClient *supabase.Client) *Container {
	repo := models.SupabaseNewRepo(supabaseClient)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		SupabaseClient: supabaseClient,
		GuestService:   services.NewGuestService(repo, repo),
		RSVPService:    services.NewRSVPService(repo, repo, logger),
		PhotoService:   services.NewPhotoService(repo, logger),
		PaymentService: services.NewPaymentService(repo, logger, cfg.BaseURL),
		ShuttleService: services.NewShuttleService(repo),
		AuthService:    services.NewAuthService(repo),
	}
}
