package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

// CreateCheckout starts a Stripe Checkout session for a honeymoon fund
// contribution and returns the hosted payment page URL.
func CreateCheckout(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := p.CreateCheckoutSession(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrAmountBelowMinimum) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to create checkout session"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(result, ""))
	}
}
