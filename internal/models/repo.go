package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
)

var Validate = validator.New()

const (
	GuestsTable          = "guests"
	RSVPsTable           = "rsvps"
	PhotosTable          = "photos"
	ContributionsTable   = "contributions"
	ShuttleBookingsTable = "shuttle_bookings"

	PhotosBucket = "photos"
)

type SupabaseRepo struct {
	supabaseClient *supabase.Client
}

func SupabaseNewRepo(supabaseClient *supabase.Client) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
	}
}

// IsUniqueViolation reports whether a postgrest error is a unique
// constraint violation (Postgres error code 23505). Supabase surfaces
// the code inside the error body rather than as a typed error.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
