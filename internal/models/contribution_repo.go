package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

type ContributionRepo interface {
	InsertContribution(ctx context.Context, c *Contribution) (*Contribution, error)
	GetContributionBySessionID(ctx context.Context, sessionID string) (*Contribution, error)
	ListContributions(ctx context.Context) ([]*Contribution, error)
}

func (su *SupabaseRepo) InsertContribution(ctx context.Context, c *Contribution) (*Contribution, error) {
	record := map[string]interface{}{
		"stripe_session_id":        c.StripeSessionID,
		"stripe_payment_intent_id": c.StripePaymentIntentID,
		"contributor_name":         c.ContributorName,
		"amount":                   c.Amount,
		"currency":                 c.Currency,
		"status":                   c.Status,
	}
	if c.Message != "" {
		record["message"] = c.Message
	}
	if c.RegistryItem != "" {
		record["registry_item"] = c.RegistryItem
	}

	raw, count, err := su.supabaseClient.From(ContributionsTable).
		Insert(record, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert contribution: %v", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no contribution data returned after insert")
	}

	var created []*Contribution
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created contribution: %v", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("no contribution data returned after insert")
	}
	return created[0], nil
}

// GetContributionBySessionID returns nil without error when no row
// exists for the session; a non-nil result marks the webhook event as
// already processed.
func (su *SupabaseRepo) GetContributionBySessionID(ctx context.Context, sessionID string) (*Contribution, error) {
	raw, _, err := su.supabaseClient.From(ContributionsTable).
		Select("*", "", false).
		Eq("stripe_session_id", sessionID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to look up contribution: %v", err)
	}

	var contributions []*Contribution
	if err := json.Unmarshal(raw, &contributions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contribution rows: %v", err)
	}
	if len(contributions) == 0 {
		return nil, nil
	}
	return contributions[0], nil
}

func (su *SupabaseRepo) ListContributions(ctx context.Context) ([]*Contribution, error) {
	raw, _, err := su.supabaseClient.From(ContributionsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %v", err)
	}

	var contributions []*Contribution
	if err := json.Unmarshal(raw, &contributions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contribution rows: %v", err)
	}
	return contributions, nil
}
