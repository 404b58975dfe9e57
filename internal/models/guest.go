package models

import (
	"time"

	"github.com/google/uuid"
)

// Guest is an entry on the invitation list. Email is optional until an
// RSVP fills it in.
type Guest struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Email     string    `db:"email" json:"email,omitempty" validate:"omitempty,email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GuestMatch is a guest-directory search hit. AlreadyResponded marks
// guests who have an RSVP row so the caller can render them as
// non-selectable.
type GuestMatch struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	AlreadyResponded bool      `json:"already_responded"`
}

// RSVP status as derived for the dashboard. "waiting" is the absence
// of an RSVP row, never a stored field on the guest.
const (
	StatusWaiting  = "waiting"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// GuestWithStatus is the read-time projection of a guest joined with
// their RSVP row, used by the admin dashboard.
type GuestWithStatus struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email,omitempty"`
	Status              string    `json:"status"`
	GuestCount          int       `json:"guest_count,omitempty"`
	DietaryRequirements string    `json:"dietary_requirements,omitempty"`
	SongRequest         string    `json:"song_request,omitempty"`
	Message             string    `json:"message,omitempty"`
	RespondedAt         string    `json:"responded_at,omitempty"`
}

// GuestStats is the dashboard summary block.
type GuestStats struct {
	Invited  int `json:"invited"`
	Accepted int `json:"accepted"`
	Declined int `json:"declined"`
	Waiting  int `json:"waiting"`
}
