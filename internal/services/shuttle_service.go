package services

import (
	"context"
	"fmt"

	"github.com/nataliejames/wedding-api/internal/models"
)

// Fixed shuttle options. Bookings outside these are rejected rather
// than silently stored.
var (
	PickupLocations = []string{
		"Forresters Arms, Newlands",
		"The Gin Bar, City Center",
	}
	CollectTimes = []string{"14:00"}
	ReturnTimes  = []string{"22:00", "00:00"}
)

type ShuttleService struct {
	shuttleRepo models.ShuttleRepo
}

func NewShuttleService(shuttleRepo models.ShuttleRepo) *ShuttleService {
	return &ShuttleService{
		shuttleRepo: shuttleRepo,
	}
}

func (ss *ShuttleService) BookShuttle(ctx context.Context, booking *models.ShuttleBooking) (*models.ShuttleBooking, error) {
	if err := models.Validate.Struct(booking); err != nil {
		return nil, fmt.Errorf("invalid booking data provided: %v", err)
	}
	if !contains(PickupLocations, booking.PickupLocation) {
		return nil, fmt.Errorf("unknown pickup location: %s", booking.PickupLocation)
	}
	if !contains(CollectTimes, booking.CollectTime) {
		return nil, fmt.Errorf("unknown collect time: %s", booking.CollectTime)
	}
	if !contains(ReturnTimes, booking.ReturnTime) {
		return nil, fmt.Errorf("unknown return time: %s", booking.ReturnTime)
	}
	return ss.shuttleRepo.InsertShuttleBooking(ctx, booking)
}

func (ss *ShuttleService) ListBookings(ctx context.Context) ([]*models.ShuttleBooking, error) {
	return ss.shuttleRepo.ListShuttleBookings(ctx)
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
