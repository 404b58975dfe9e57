package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

// RegistryItems returns the honeymoon fund lines with live raised
// amounts so the registry page can render progress bars.
func RegistryItems(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := p.RegistryItems(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to fetch registry items"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(items, ""))
	}
}

// TransportInfo returns the fixed shuttle options the booking form
// renders its dropdowns from.
func TransportInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"pickup_locations": services.PickupLocations,
			"collect_times":    services.CollectTimes,
			"return_times":     services.ReturnTimes,
			"max_passengers":   8,
		}, ""))
	}
}

// AccommodationInfo returns the recommended places to stay near the
// venue.
func AccommodationInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"venue": gin.H{
				"name":     "Die Woud",
				"location": "Caledon, Western Cape",
			},
			"options": []gin.H{
				{
					"name":        "On-site Cottages",
					"description": "A handful of cottages at the venue itself, reserved for close family. Contact us directly if you would like one.",
					"distance":    "On site",
				},
				{
					"name":        "Caledon Hotel & Spa",
					"description": "Full-service hotel with a spa and hot springs, about twenty minutes from the venue.",
					"distance":    "20 min drive",
				},
				{
					"name":        "Greyton Guesthouses",
					"description": "Plenty of guesthouses and self-catering options in the village of Greyton.",
					"distance":    "35 min drive",
				},
			},
		}, ""))
	}
}
