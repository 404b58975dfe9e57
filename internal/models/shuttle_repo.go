package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

type ShuttleRepo interface {
	InsertShuttleBooking(ctx context.Context, booking *ShuttleBooking) (*ShuttleBooking, error)
	ListShuttleBookings(ctx context.Context) ([]*ShuttleBooking, error)
}

func (su *SupabaseRepo) InsertShuttleBooking(ctx context.Context, booking *ShuttleBooking) (*ShuttleBooking, error) {
	record := map[string]interface{}{
		"name":            booking.Name,
		"email":           booking.Email,
		"phone":           booking.Phone,
		"passenger_count": booking.PassengerCount,
		"pickup_location": booking.PickupLocation,
		"collect_time":    booking.CollectTime,
		"return_time":     booking.ReturnTime,
	}

	raw, count, err := su.supabaseClient.From(ShuttleBookingsTable).
		Insert(record, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert shuttle booking: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no booking data returned after insert")
	}

	var created []*ShuttleBooking
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created booking: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no booking data returned after insert")
	}
	return created[0], nil
}

func (su *SupabaseRepo) ListShuttleBookings(ctx context.Context) ([]*ShuttleBooking, error) {
	raw, _, err := su.supabaseClient.From(ShuttleBookingsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list shuttle bookings: %v", err)
	}

	var bookings []*ShuttleBooking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking rows: %v", err)
	}
	return bookings, nil
}
