package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

// BookShuttle records a shuttle seat booking for the wedding day.
func BookShuttle(s *services.ShuttleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var booking models.ShuttleBooking
		if err := c.ShouldBindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		saved, err := s.BookShuttle(c.Request.Context(), &booking)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(saved, "Shuttle booked successfully"))
	}
}
