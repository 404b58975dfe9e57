package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// MinContributionAmount is the smallest accepted contribution, in
// whole rand. Enforced here regardless of any client-side check.
const MinContributionAmount = 10

var (
	ErrAmountBelowMinimum = fmt.Errorf("minimum contribution is R%d", MinContributionAmount)
	ErrBaseURLNotSet      = errors.New("server configuration error: BASE_URL not set")
)

// Honeymoon fund lines shown on the registry page. Raised amounts
// start from the figures carried over from the paper registry and
// grow with completed contributions.
var registryItems = []models.RegistryItem{
	{
		ID:               "accommodation",
		Title:            "Cosy Chalet Stay",
		Description:      "A week in a beautiful alpine chalet with stunning mountain views and a warm fireplace.",
		TargetAmount:     40000,
		RaisedAmount:     9500,
		SuggestedAmounts: []float64{100, 200, 500, 1000},
	},
	{
		ID:               "ski-passes",
		Title:            "Ski Lift Passes",
		Description:      "Access to the slopes! Help us hit the pistes with week-long ski passes.",
		TargetAmount:     12000,
		RaisedAmount:     3000,
		SuggestedAmounts: []float64{100, 200, 500, 1000},
	},
	{
		ID:               "ski-hire",
		Title:            "Ski & Boot Hire",
		Description:      "Top-quality ski equipment rental so we can carve through the powder in style.",
		TargetAmount:     8000,
		RaisedAmount:     1600,
		SuggestedAmounts: []float64{100, 200, 500, 1000},
	},
	{
		ID:               "lessons",
		Title:            "Ski Lessons",
		Description:      "Professional instruction to improve our technique (and avoid too many tumbles!).",
		TargetAmount:     6000,
		RaisedAmount:     0,
		SuggestedAmounts: []float64{100, 200, 500, 1000},
	},
}

type CheckoutRequest struct {
	Amount          float64 `json:"amount"`
	ContributorName string  `json:"contributor_name"`
	Message         string  `json:"message"`
	RegistryItem    string  `json:"registry_item"`
}

type CheckoutSessionResult struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type PaymentService struct {
	contributionRepo models.ContributionRepo
	logger           *slog.Logger
	baseURL          string
}

func NewPaymentService(contributionRepo models.ContributionRepo, logger *slog.Logger, baseURL string) *PaymentService {
	return &PaymentService{
		contributionRepo: contributionRepo,
		logger:           logger,
		baseURL:          baseURL,
	}
}

// CreateCheckoutSession creates a hosted Stripe Checkout session for a
// contribution. The contributor name and message travel as session
// metadata only; no application record exists until the webhook
// confirms completion.
func (ps *PaymentService) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSessionResult, error) {
	if req.Amount < MinContributionAmount {
		return nil, ErrAmountBelowMinimum
	}
	if ps.baseURL == "" {
		return nil, ErrBaseURLNotSet
	}

	description := "A generous gift for the newlyweds"
	if req.ContributorName != "" {
		description = "From: " + req.ContributorName
		if req.Message != "" {
			description += fmt.Sprintf(" - %q", req.Message)
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(ps.baseURL + "/thank-you?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(ps.baseURL + "/registry"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("zar"),
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Honeymoon Fund Contribution"),
						Description: stripe.String(description),
					},
				},
			},
		},
	}
	contributorName := req.ContributorName
	if contributorName == "" {
		contributorName = "Anonymous"
	}
	params.AddMetadata("contributorName", contributorName)
	params.AddMetadata("message", req.Message)
	params.AddMetadata("amount", strconv.FormatFloat(req.Amount, 'f', -1, 64))
	if req.RegistryItem != "" {
		params.AddMetadata("registryItem", req.RegistryItem)
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %v", err)
	}

	ps.logger.Info("Checkout session created", "session_id", s.ID, "amount", req.Amount)
	return &CheckoutSessionResult{SessionID: s.ID, URL: s.URL}, nil
}

// HandleCheckoutCompleted records a verified completed checkout as a
// Contribution. A redelivered event for a session that already has a
// row is a logged no-op, never a second insert.
func (ps *PaymentService) HandleCheckoutCompleted(ctx context.Context, cs *stripe.CheckoutSession) error {
	existing, err := ps.contributionRepo.GetContributionBySessionID(ctx, cs.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		ps.logger.Info("Checkout session already recorded, skipping", "session_id", cs.ID)
		return nil
	}

	amountStr := cs.Metadata["amount"]
	if amountStr == "" {
		return fmt.Errorf("amount missing from session metadata for %s", cs.ID)
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return fmt.Errorf("invalid amount in session metadata for %s: %v", cs.ID, err)
	}

	contributorName := cs.Metadata["contributorName"]
	if contributorName == "" {
		contributorName = "Anonymous"
	}

	contribution := &models.Contribution{
		StripeSessionID: cs.ID,
		ContributorName: contributorName,
		Message:         cs.Metadata["message"],
		Amount:          amount,
		Currency:        models.ContributionCurrency,
		Status:          "completed",
		RegistryItem:    cs.Metadata["registryItem"],
	}
	if cs.PaymentIntent != nil {
		contribution.StripePaymentIntentID = cs.PaymentIntent.ID
	}

	saved, err := ps.contributionRepo.InsertContribution(ctx, contribution)
	if err != nil {
		return err
	}
	ps.logger.Info("Contribution recorded",
		"contribution_id", saved.ID,
		"session_id", cs.ID,
		"amount", amount,
	)
	return nil
}

// ListContributions returns completed contributions plus their total.
func (ps *PaymentService) ListContributions(ctx context.Context) ([]*models.Contribution, float64, error) {
	contributions, err := ps.contributionRepo.ListContributions(ctx)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for _, c := range contributions {
		total += c.Amount
	}
	return contributions, total, nil
}

// RegistryItems returns the registry lines with raised amounts topped
// up from completed contributions tagged with a registry item id.
func (ps *PaymentService) RegistryItems(ctx context.Context) ([]models.RegistryItem, error) {
	contributions, err := ps.contributionRepo.ListContributions(ctx)
	if err != nil {
		return nil, err
	}

	raisedByItem := make(map[string]float64)
	for _, c := range contributions {
		if c.RegistryItem != "" {
			raisedByItem[c.RegistryItem] += c.Amount
		}
	}

	items := make([]models.RegistryItem, len(registryItems))
	copy(items, registryItems)
	for i := range items {
		items[i].RaisedAmount += raisedByItem[items[i].ID]
	}
	return items, nil
}
