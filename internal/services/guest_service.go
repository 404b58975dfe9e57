package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/models"
)

const (
	// Queries shorter than this never reach the backend; the form
	// clears its dropdown instead.
	minSearchQueryLength = 2
	searchResultLimit    = 5
)

type GuestService struct {
	guestRepo models.GuestRepo
	rsvpRepo  models.RSVPRepo
}

func NewGuestService(guestRepo models.GuestRepo, rsvpRepo models.RSVPRepo) *GuestService {
	return &GuestService{
		guestRepo: guestRepo,
		rsvpRepo:  rsvpRepo,
	}
}

// SearchGuests looks up guests by partial name, omitting excluded ids
// and annotating results that already have an RSVP row so the form can
// render them as non-selectable.
func (gs *GuestService) SearchGuests(ctx context.Context, query string, exclude []uuid.UUID) ([]*models.GuestMatch, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minSearchQueryLength {
		return []*models.GuestMatch{}, nil
	}

	guests, err := gs.guestRepo.SearchGuests(ctx, trimmed, exclude, searchResultLimit)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return []*models.GuestMatch{}, nil
	}

	ids := make([]uuid.UUID, 0, len(guests))
	for _, g := range guests {
		ids = append(ids, g.ID)
	}
	responded, err := gs.rsvpRepo.RespondedGuestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	matches := make([]*models.GuestMatch, 0, len(guests))
	for _, g := range guests {
		matches = append(matches, &models.GuestMatch{
			ID:               g.ID,
			Name:             g.Name,
			Email:            g.Email,
			AlreadyResponded: responded[g.ID],
		})
	}
	return matches, nil
}

func (gs *GuestService) CreateGuest(ctx context.Context, guest *models.Guest) (*models.Guest, error) {
	if err := models.Validate.Struct(guest); err != nil {
		return nil, fmt.Errorf("invalid guest data provided: %v", err)
	}
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	guest.CreatedAt = time.Now()
	return gs.guestRepo.CreateGuest(ctx, guest)
}

// ListGuestsWithStatus joins every guest with the RSVP rows and
// derives status at read time: waiting when no row matches, otherwise
// accepted/declined from the attending field. Matching is by guest id
// first, then case-insensitive email as a fallback.
func (gs *GuestService) ListGuestsWithStatus(ctx context.Context, query, statusFilter string) ([]*models.GuestWithStatus, *models.GuestStats, error) {
	guests, err := gs.guestRepo.ListGuests(ctx)
	if err != nil {
		return nil, nil, err
	}
	rsvps, err := gs.rsvpRepo.ListRSVPs(ctx)
	if err != nil {
		return nil, nil, err
	}

	byGuestID := make(map[uuid.UUID]*models.RSVP, len(rsvps))
	byEmail := make(map[string]*models.RSVP, len(rsvps))
	for _, r := range rsvps {
		if _, ok := byGuestID[r.GuestID]; !ok {
			byGuestID[r.GuestID] = r
		}
		if r.Email != "" {
			key := strings.ToLower(r.Email)
			if _, ok := byEmail[key]; !ok {
				byEmail[key] = r
			}
		}
	}

	stats := &models.GuestStats{Invited: len(guests)}
	combined := make([]*models.GuestWithStatus, 0, len(guests))
	queryLower := strings.ToLower(strings.TrimSpace(query))

	for _, g := range guests {
		rsvp := byGuestID[g.ID]
		if rsvp == nil && g.Email != "" {
			rsvp = byEmail[strings.ToLower(g.Email)]
		}

		entry := &models.GuestWithStatus{
			ID:     g.ID,
			Name:   g.Name,
			Email:  g.Email,
			Status: models.StatusWaiting,
		}
		if rsvp != nil {
			if rsvp.Attending == models.AttendingYes {
				entry.Status = models.StatusAccepted
			} else {
				entry.Status = models.StatusDeclined
			}
			entry.GuestCount = rsvp.GuestCount
			entry.DietaryRequirements = rsvp.DietaryRequirements
			entry.SongRequest = rsvp.SongRequest
			entry.Message = rsvp.Message
			if !rsvp.CreatedAt.IsZero() {
				entry.RespondedAt = rsvp.CreatedAt.Format(time.RFC3339)
			}
		}

		switch entry.Status {
		case models.StatusAccepted:
			stats.Accepted++
		case models.StatusDeclined:
			stats.Declined++
		default:
			stats.Waiting++
		}

		if queryLower != "" &&
			!strings.Contains(strings.ToLower(entry.Name), queryLower) &&
			!strings.Contains(strings.ToLower(entry.Email), queryLower) {
			continue
		}
		if statusFilter != "" && statusFilter != "all" && entry.Status != statusFilter {
			continue
		}
		combined = append(combined, entry)
	}

	return combined, stats, nil
}
