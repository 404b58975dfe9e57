package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/webhook"
)

// Stripe recommends capping webhook bodies at 64KB.
const maxWebhookBytes = 65536

// StripeWebhook verifies the event signature against the raw body and
// records completed checkout sessions. Unverified payloads are
// rejected before any parsing of their contents.
func StripeWebhook(p *services.PaymentService, webhookSecret string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if webhookSecret == "" {
			logger.Error("Webhook received but STRIPE_WEBHOOK_SECRET is not set")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("webhook not configured"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes)
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("failed to read request body"))
			return
		}

		sigHeader := c.GetHeader("Stripe-Signature")
		if sigHeader == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("missing Stripe-Signature header"))
			return
		}

		event, err := webhook.ConstructEvent(payload, sigHeader, webhookSecret)
		if err != nil {
			logger.Warn("Webhook signature verification failed", "error", err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse("signature verification failed"))
			return
		}

		switch event.Type {
		case "checkout.session.completed":
			var cs stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
				logger.Error("Failed to parse checkout session from event", "error", err)
				c.JSON(http.StatusBadRequest, models.ErrorResponse("malformed event payload"))
				return
			}
			if err := p.HandleCheckoutCompleted(c.Request.Context(), &cs); err != nil {
				logger.Error("Failed to record contribution", "session_id", cs.ID, "error", err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to record contribution"))
				return
			}
		case "checkout.session.expired":
			logger.Info("Checkout session expired", "event_id", event.ID)
		default:
			logger.Info("Ignoring webhook event", "type", event.Type)
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
