package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Minimal in-memory repos backing the service layer under test.

type stubGuestRepo struct {
	guests []*models.Guest
}

func (s *stubGuestRepo) SearchGuests(ctx context.Context, query string, exclude []uuid.UUID, limit int) ([]*models.Guest, error) {
	return s.guests, nil
}

func (s *stubGuestRepo) ListGuests(ctx context.Context) ([]*models.Guest, error) {
	return s.guests, nil
}

func (s *stubGuestRepo) CreateGuest(ctx context.Context, guest *models.Guest) (*models.Guest, error) {
	s.guests = append(s.guests, guest)
	return guest, nil
}

func (s *stubGuestRepo) UpdateGuestEmail(ctx context.Context, id uuid.UUID, email string) error {
	return nil
}

type stubRSVPRepo struct {
	rows      []*models.RSVP
	insertErr error
}

func (s *stubRSVPRepo) InsertRSVPs(ctx context.Context, rows []*models.RSVP) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.rows = append(s.rows, rows...)
	return nil
}

func (s *stubRSVPRepo) ListRSVPs(ctx context.Context) ([]*models.RSVP, error) {
	return s.rows, nil
}

func (s *stubRSVPRepo) RespondedGuestIDs(ctx context.Context, guestIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return map[uuid.UUID]bool{}, nil
}

type stubContributionRepo struct {
	contributions []*models.Contribution
}

func (s *stubContributionRepo) InsertContribution(ctx context.Context, c *models.Contribution) (*models.Contribution, error) {
	saved := *c
	saved.ID = uuid.New()
	s.contributions = append(s.contributions, &saved)
	return &saved, nil
}

func (s *stubContributionRepo) GetContributionBySessionID(ctx context.Context, sessionID string) (*models.Contribution, error) {
	for _, c := range s.contributions {
		if c.StripeSessionID == sessionID {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubContributionRepo) ListContributions(ctx context.Context) ([]*models.Contribution, error) {
	return s.contributions, nil
}
