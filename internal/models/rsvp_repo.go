package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDuplicateRSVP is returned when a guest already has an RSVP row.
// The rsvps table carries a uniqueness constraint on guest_id; that
// constraint, not application logic, is the safeguard against two
// tabs racing to submit the same guest.
var ErrDuplicateRSVP = errors.New("an RSVP has already been submitted for this guest")

type RSVPRepo interface {
	InsertRSVPs(ctx context.Context, rows []*RSVP) error
	ListRSVPs(ctx context.Context) ([]*RSVP, error)
	RespondedGuestIDs(ctx context.Context, guestIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

func (su *SupabaseRepo) InsertRSVPs(ctx context.Context, rows []*RSVP) error {
	if len(rows) == 0 {
		return fmt.Errorf("no RSVP rows to insert")
	}

	records := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		record := map[string]interface{}{
			"guest_id":    r.GuestID,
			"name":        r.Name,
			"email":       r.Email,
			"attending":   r.Attending,
			"guest_count": r.GuestCount,
		}
		if r.DietaryRequirements != "" {
			record["dietary_requirements"] = r.DietaryRequirements
		}
		if r.SongRequest != "" {
			record["song_request"] = r.SongRequest
		}
		if r.Message != "" {
			record["message"] = r.Message
		}
		if len(r.AdditionalGuests) > 0 {
			record["additional_guests"] = r.AdditionalGuests
		}
		records = append(records, record)
	}

	_, _, err := su.supabaseClient.From(RSVPsTable).
		Insert(records, false, "", "", "exact").
		Execute()
	if err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateRSVP
		}
		return fmt.Errorf("failed to insert RSVP rows: %v", err)
	}
	return nil
}

func (su *SupabaseRepo) ListRSVPs(ctx context.Context) ([]*RSVP, error) {
	raw, _, err := su.supabaseClient.From(RSVPsTable).
		Select("*", "", false).
		Order("created_at", nil).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list RSVPs: %v", err)
	}

	var rsvps []*RSVP
	if err := json.Unmarshal(raw, &rsvps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RSVP rows: %v", err)
	}
	return rsvps, nil
}

// RespondedGuestIDs returns the subset of the given guest ids that
// already have an RSVP row, keyed for quick lookup.
func (su *SupabaseRepo) RespondedGuestIDs(ctx context.Context, guestIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	responded := make(map[uuid.UUID]bool)
	if len(guestIDs) == 0 {
		return responded, nil
	}

	ids := make([]string, 0, len(guestIDs))
	for _, id := range guestIDs {
		ids = append(ids, id.String())
	}

	raw, _, err := su.supabaseClient.From(RSVPsTable).
		Select("guest_id", "", false).
		In("guest_id", ids).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to check existing RSVPs: %v", err)
	}

	var rows []struct {
		GuestID uuid.UUID `json:"guest_id"`
	}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RSVP ids: %v", err)
	}
	for _, row := range rows {
		responded[row.GuestID] = true
	}
	return responded, nil
}
