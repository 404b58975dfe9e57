package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

// SubmitRSVP handles the RSVP form submission. Validation failures and
// duplicate submissions each get their own message; anything else is a
// generic retry suggestion.
func SubmitRSVP(r *services.RSVPService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.RSVPSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := r.SubmitRSVP(c.Request.Context(), &sub)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGuestRequired),
				errors.Is(err, services.ErrEmailInvalid),
				errors.Is(err, services.ErrAttendanceRequired):
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			case errors.Is(err, models.ErrDuplicateRSVP):
				c.JSON(http.StatusConflict, models.ErrorResponse("You have already submitted an RSVP."))
			default:
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("There was an error submitting your RSVP. Please try again."))
			}
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(result, "RSVP submitted successfully"))
	}
}
