package models

import (
	"time"

	"github.com/google/uuid"
)

// ShuttleBooking is a transport reservation request. There is no
// further lifecycle after creation; confirmations happen off-system.
type ShuttleBooking struct {
	ID             uuid.UUID `db:"id" json:"id,omitempty"`
	Name           string    `db:"name" json:"name" validate:"required"`
	Email          string    `db:"email" json:"email" validate:"required,email"`
	Phone          string    `db:"phone" json:"phone" validate:"required"`
	PassengerCount int       `db:"passenger_count" json:"passenger_count" validate:"required,min=1,max=8"`
	PickupLocation string    `db:"pickup_location" json:"pickup_location" validate:"required"`
	CollectTime    string    `db:"collect_time" json:"collect_time" validate:"required"`
	ReturnTime     string    `db:"return_time" json:"return_time" validate:"required"`
	CreatedAt      time.Time `db:"created_at" json:"created_at,omitempty"`
}
