package models

import (
	"time"

	"github.com/google/uuid"
)

const ContributionCurrency = "ZAR"

// Contribution is a completed honeymoon-fund payment. Rows are created
// exclusively by the webhook receiver after signature verification;
// the checkout flow itself never asserts payment success.
type Contribution struct {
	ID                    uuid.UUID `db:"id" json:"id,omitempty"`
	StripeSessionID       string    `db:"stripe_session_id" json:"stripe_session_id"`
	StripePaymentIntentID string    `db:"stripe_payment_intent_id" json:"stripe_payment_intent_id,omitempty"`
	ContributorName       string    `db:"contributor_name" json:"contributor_name"`
	Message               string    `db:"message" json:"message,omitempty"`
	Amount                float64   `db:"amount" json:"amount"`
	Currency              string    `db:"currency" json:"currency"`
	Status                string    `db:"status" json:"status"`
	RegistryItem          string    `db:"registry_item" json:"registry_item,omitempty"`
	CreatedAt             time.Time `db:"created_at" json:"created_at,omitempty"`
}

// RegistryItem is a honeymoon-fund line on the registry page. Raised
// amounts are derived from completed contributions at read time.
type RegistryItem struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	TargetAmount     float64   `json:"target_amount"`
	RaisedAmount     float64   `json:"raised_amount"`
	SuggestedAmounts []float64 `json:"suggested_amounts"`
}
