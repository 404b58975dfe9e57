package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendingYes = "yes"
	AttendingNo  = "no"
)

// AdditionalGuest is a party member added to a primary RSVP. It
// references another guest row by id but is embedded in the primary
// row as structured data.
type AdditionalGuest struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	DietaryRequirements string    `json:"dietary_requirements,omitempty"`
}

// RSVP is one response row per individual attendee. The primary
// respondent's row carries the full party size and the embedded
// additional-guest detail; rows generated for additional guests carry
// a party size of 1 and only their own dietary text.
type RSVP struct {
	ID                  uuid.UUID         `db:"id" json:"id,omitempty"`
	GuestID             uuid.UUID         `db:"guest_id" json:"guest_id"`
	Name                string            `db:"name" json:"name"`
	Email               string            `db:"email" json:"email"`
	Attending           string            `db:"attending" json:"attending"`
	GuestCount          int               `db:"guest_count" json:"guest_count"`
	DietaryRequirements string            `db:"dietary_requirements" json:"dietary_requirements,omitempty"`
	SongRequest         string            `db:"song_request" json:"song_request,omitempty"`
	Message             string            `db:"message" json:"message,omitempty"`
	AdditionalGuests    []AdditionalGuest `db:"additional_guests" json:"additional_guests,omitempty"`
	CreatedAt           time.Time         `db:"created_at" json:"created_at,omitempty"`
}

// RSVPSubmission is the request payload for the RSVP form. Name is a
// snapshot of the selected guest's display name at submission time,
// kept on the RSVP row independent of later guest edits.
type RSVPSubmission struct {
	GuestID             uuid.UUID         `json:"guest_id"`
	Name                string            `json:"name"`
	Email               string            `json:"email"`
	Attending           string            `json:"attending"`
	DietaryRequirements string            `json:"dietary_requirements"`
	SongRequest         string            `json:"song_request"`
	Message             string            `json:"message"`
	AdditionalGuests    []AdditionalGuest `json:"additional_guests"`
}

// RSVPResult reports a successful submission back to the form.
// Celebrate is only set for an accepting party.
type RSVPResult struct {
	Attending  bool `json:"attending"`
	GuestCount int  `json:"guest_count"`
	Celebrate  bool `json:"celebrate"`
}
