package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/models"
)

// Each missing required item gets its own message so the form can
// point at the exact field.
var (
	ErrGuestRequired      = errors.New("please select your name from the guest list")
	ErrEmailInvalid       = errors.New("a valid email address is required")
	ErrAttendanceRequired = errors.New("please let us know whether you will be attending")
)

type RSVPService struct {
	guestRepo models.GuestRepo
	rsvpRepo  models.RSVPRepo
	logger    *slog.Logger
}

func NewRSVPService(guestRepo models.GuestRepo, rsvpRepo models.RSVPRepo, logger *slog.Logger) *RSVPService {
	return &RSVPService{
		guestRepo: guestRepo,
		rsvpRepo:  rsvpRepo,
		logger:    logger,
	}
}

// SubmitRSVP validates the submission, inserts one RSVP row per
// attending individual, and then updates the guest's stored email.
// The insert runs first so a failure leaves no partial state; the
// email update afterwards is best-effort and never fails the
// submission. A duplicate submission surfaces models.ErrDuplicateRSVP.
func (rs *RSVPService) SubmitRSVP(ctx context.Context, sub *models.RSVPSubmission) (*models.RSVPResult, error) {
	if sub.GuestID == uuid.Nil {
		return nil, ErrGuestRequired
	}
	if err := models.Validate.Var(sub.Email, "required,email"); err != nil {
		return nil, ErrEmailInvalid
	}
	if sub.Attending != models.AttendingYes && sub.Attending != models.AttendingNo {
		return nil, ErrAttendanceRequired
	}

	// A declining response never carries a party, even when the form
	// still holds additional-guest state from an earlier choice.
	additional := sub.AdditionalGuests
	dietary := sub.DietaryRequirements
	song := sub.SongRequest
	if sub.Attending == models.AttendingNo {
		additional = nil
		dietary = ""
		song = ""
	}

	rows := make([]*models.RSVP, 0, 1+len(additional))
	rows = append(rows, &models.RSVP{
		GuestID:             sub.GuestID,
		Name:                sub.Name,
		Email:               sub.Email,
		Attending:           sub.Attending,
		GuestCount:          1 + len(additional),
		DietaryRequirements: dietary,
		SongRequest:         song,
		Message:             sub.Message,
		AdditionalGuests:    additional,
	})
	for _, g := range additional {
		rows = append(rows, &models.RSVP{
			GuestID:             g.ID,
			Name:                g.Name,
			Email:               sub.Email,
			Attending:           sub.Attending,
			GuestCount:          1,
			DietaryRequirements: g.DietaryRequirements,
		})
	}

	if err := rs.rsvpRepo.InsertRSVPs(ctx, rows); err != nil {
		return nil, err
	}

	if err := rs.guestRepo.UpdateGuestEmail(ctx, sub.GuestID, sub.Email); err != nil {
		rs.logger.Warn("Failed to update guest email after RSVP",
			"guest_id", sub.GuestID,
			"error", err,
		)
	}

	attending := sub.Attending == models.AttendingYes
	return &models.RSVPResult{
		Attending:  attending,
		GuestCount: 1 + len(additional),
		Celebrate:  attending,
	}, nil
}

// ListRSVPs returns RSVP rows for the dashboard, optionally filtered
// by a name/email substring and an attendance value.
func (rs *RSVPService) ListRSVPs(ctx context.Context, query, attending string) ([]*models.RSVP, error) {
	rsvps, err := rs.rsvpRepo.ListRSVPs(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" && attending == "" {
		return rsvps, nil
	}

	filtered := make([]*models.RSVP, 0, len(rsvps))
	for _, r := range rsvps {
		if attending != "" && attending != "all" && r.Attending != attending {
			continue
		}
		if query != "" && !containsFold(r.Name, query) && !containsFold(r.Email, query) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}
