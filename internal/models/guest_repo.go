package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type GuestRepo interface {
	SearchGuests(ctx context.Context, query string, exclude []uuid.UUID, limit int) ([]*Guest, error)
	ListGuests(ctx context.Context) ([]*Guest, error)
	CreateGuest(ctx context.Context, guest *Guest) (*Guest, error)
	UpdateGuestEmail(ctx context.Context, id uuid.UUID, email string) error
}

// SearchGuests performs a case-insensitive substring match on guest
// name, excluding the given ids. The caller is responsible for the
// minimum-length guard; this always issues a query.
func (su *SupabaseRepo) SearchGuests(ctx context.Context, query string, exclude []uuid.UUID, limit int) ([]*Guest, error) {
	fb := su.supabaseClient.From(GuestsTable).
		Select("id,name,email", "", false).
		Ilike("name", "%"+query+"%")

	if len(exclude) > 0 {
		ids := make([]string, 0, len(exclude))
		for _, id := range exclude {
			ids = append(ids, id.String())
		}
		fb = fb.Not("id", "in", "("+strings.Join(ids, ",")+")")
	}

	raw, _, err := fb.Limit(limit, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to search guests: %v", err)
	}

	var guests []*Guest
	if err := json.Unmarshal(raw, &guests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest rows: %v", err)
	}
	return guests, nil
}

func (su *SupabaseRepo) ListGuests(ctx context.Context) ([]*Guest, error) {
	raw, _, err := su.supabaseClient.From(GuestsTable).
		Select("*", "", false).
		Order("name", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %v", err)
	}

	var guests []*Guest
	if err := json.Unmarshal(raw, &guests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest rows: %v", err)
	}
	return guests, nil
}

func (su *SupabaseRepo) CreateGuest(ctx context.Context, guest *Guest) (*Guest, error) {
	guestData := map[string]interface{}{
		"id":         guest.ID,
		"name":       guest.Name,
		"created_at": guest.CreatedAt.Format(time.RFC3339),
	}
	if guest.Email != "" {
		guestData["email"] = guest.Email
	}

	raw, count, err := su.supabaseClient.From(GuestsTable).
		Insert(guestData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create guest: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no guest data returned after insert")
	}

	var created []*Guest
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created guest: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no guest data returned after insert")
	}
	return created[0], nil
}

func (su *SupabaseRepo) UpdateGuestEmail(ctx context.Context, id uuid.UUID, email string) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid guest ID")
	}

	_, count, err := su.supabaseClient.From(GuestsTable).
		Update(map[string]interface{}{"email": email}, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update guest email: %v", err)
	}
	if count == 0 {
		return fmt.Errorf("no guest found to update")
	}
	return nil
}
