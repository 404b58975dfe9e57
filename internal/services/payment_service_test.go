package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v83"
)

func TestCreateCheckoutRejectsBelowMinimum(t *testing.T) {
	ps := NewPaymentService(&fakeContributionRepo{}, discardLogger(), "https://wedding.example.com")

	for _, amount := range []float64{0, 5, 9.99, -10} {
		_, err := ps.CreateCheckoutSession(context.Background(), &CheckoutRequest{Amount: amount})
		if !errors.Is(err, ErrAmountBelowMinimum) {
			t.Errorf("amount %v: got %v, want ErrAmountBelowMinimum", amount, err)
		}
	}
}

func TestCreateCheckoutRequiresBaseURL(t *testing.T) {
	ps := NewPaymentService(&fakeContributionRepo{}, discardLogger(), "")

	_, err := ps.CreateCheckoutSession(context.Background(), &CheckoutRequest{Amount: 100})
	if !errors.Is(err, ErrBaseURLNotSet) {
		t.Fatalf("got %v, want ErrBaseURLNotSet", err)
	}
}

func TestHandleCheckoutCompletedRecordsContribution(t *testing.T) {
	repo := &fakeContributionRepo{}
	ps := NewPaymentService(repo, discardLogger(), "https://wedding.example.com")

	cs := &stripe.CheckoutSession{
		ID: "cs_test_123",
		Metadata: map[string]string{
			"contributorName": "Anna Smith",
			"message":         "Have a wonderful trip!",
			"amount":          "250",
			"registryItem":    "ski-passes",
		},
		PaymentIntent: &stripe.PaymentIntent{ID: "pi_test_456"},
	}
	if err := ps.HandleCheckoutCompleted(context.Background(), cs); err != nil {
		t.Fatalf("HandleCheckoutCompleted returned error: %v", err)
	}

	if len(repo.contributions) != 1 {
		t.Fatalf("recorded %d contributions, want 1", len(repo.contributions))
	}
	c := repo.contributions[0]
	if c.StripeSessionID != "cs_test_123" || c.StripePaymentIntentID != "pi_test_456" {
		t.Errorf("stripe ids not recorded: %+v", c)
	}
	if c.Amount != 250 || c.Currency != "ZAR" || c.Status != "completed" {
		t.Errorf("unexpected contribution fields: %+v", c)
	}
	if c.ContributorName != "Anna Smith" || c.RegistryItem != "ski-passes" {
		t.Errorf("metadata not carried over: %+v", c)
	}
}

func TestHandleCheckoutCompletedDefaultsAnonymous(t *testing.T) {
	repo := &fakeContributionRepo{}
	ps := NewPaymentService(repo, discardLogger(), "https://wedding.example.com")

	cs := &stripe.CheckoutSession{
		ID:       "cs_test_anon",
		Metadata: map[string]string{"amount": "50"},
	}
	if err := ps.HandleCheckoutCompleted(context.Background(), cs); err != nil {
		t.Fatalf("HandleCheckoutCompleted returned error: %v", err)
	}
	if repo.contributions[0].ContributorName != "Anonymous" {
		t.Errorf("contributor name = %q, want Anonymous", repo.contributions[0].ContributorName)
	}
}

func TestHandleCheckoutCompletedReplayIsNoOp(t *testing.T) {
	repo := &fakeContributionRepo{}
	ps := NewPaymentService(repo, discardLogger(), "https://wedding.example.com")

	cs := &stripe.CheckoutSession{
		ID:       "cs_test_replay",
		Metadata: map[string]string{"amount": "100"},
	}
	if err := ps.HandleCheckoutCompleted(context.Background(), cs); err != nil {
		t.Fatalf("first delivery returned error: %v", err)
	}
	if err := ps.HandleCheckoutCompleted(context.Background(), cs); err != nil {
		t.Fatalf("redelivery returned error: %v", err)
	}
	if len(repo.contributions) != 1 {
		t.Errorf("redelivery inserted a second row, total %d", len(repo.contributions))
	}
}

func TestHandleCheckoutCompletedMissingAmount(t *testing.T) {
	repo := &fakeContributionRepo{}
	ps := NewPaymentService(repo, discardLogger(), "https://wedding.example.com")

	cs := &stripe.CheckoutSession{ID: "cs_test_bad", Metadata: map[string]string{}}
	if err := ps.HandleCheckoutCompleted(context.Background(), cs); err == nil {
		t.Fatal("expected error for session without amount metadata")
	}
	if len(repo.contributions) != 0 {
		t.Errorf("contribution recorded despite missing amount")
	}
}

func TestRegistryItemsAccumulateRaisedAmounts(t *testing.T) {
	repo := &fakeContributionRepo{}
	ps := NewPaymentService(repo, discardLogger(), "https://wedding.example.com")

	baseline, err := ps.RegistryItems(context.Background())
	if err != nil {
		t.Fatalf("RegistryItems returned error: %v", err)
	}
	baseRaised := make(map[string]float64)
	for _, item := range baseline {
		baseRaised[item.ID] = item.RaisedAmount
	}

	for _, cs := range []*stripe.CheckoutSession{
		{ID: "cs_1", Metadata: map[string]string{"amount": "200", "registryItem": "ski-passes"}},
		{ID: "cs_2", Metadata: map[string]string{"amount": "300", "registryItem": "ski-passes"}},
		{ID: "cs_3", Metadata: map[string]string{"amount": "100"}},
	} {
		if err := ps.HandleCheckoutCompleted(context.Background(), cs); err != nil {
			t.Fatalf("HandleCheckoutCompleted returned error: %v", err)
		}
	}

	items, err := ps.RegistryItems(context.Background())
	if err != nil {
		t.Fatalf("RegistryItems returned error: %v", err)
	}
	for _, item := range items {
		want := baseRaised[item.ID]
		if item.ID == "ski-passes" {
			want += 500
		}
		if item.RaisedAmount != want {
			t.Errorf("item %s raised = %v, want %v", item.ID, item.RaisedAmount, want)
		}
	}
}

func TestListContributionsTotals(t *testing.T) {
	repo := &fakeContributionRepo{}
	ps := NewPaymentService(repo, discardLogger(), "https://wedding.example.com")

	for _, cs := range []*stripe.CheckoutSession{
		{ID: "cs_a", Metadata: map[string]string{"amount": "150"}},
		{ID: "cs_b", Metadata: map[string]string{"amount": "350"}},
	} {
		if err := ps.HandleCheckoutCompleted(context.Background(), cs); err != nil {
			t.Fatalf("HandleCheckoutCompleted returned error: %v", err)
		}
	}

	contributions, total, err := ps.ListContributions(context.Background())
	if err != nil {
		t.Fatalf("ListContributions returned error: %v", err)
	}
	if len(contributions) != 2 || total != 500 {
		t.Errorf("got %d contributions totalling %v, want 2 totalling 500", len(contributions), total)
	}
}
