package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

// SearchGuests serves the RSVP form's name lookup. The response echoes
// the query string so a client can discard responses that arrive after
// a newer query has been issued.
func SearchGuests(g *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		var exclude []uuid.UUID
		if raw := c.Query("exclude"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				id, err := uuid.Parse(strings.TrimSpace(part))
				if err != nil {
					c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid exclude parameter"))
					return
				}
				exclude = append(exclude, id)
			}
		}

		matches, err := g.SearchGuests(c.Request.Context(), query, exclude)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to search guests"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"query":   query,
			"results": matches,
		}, ""))
	}
}
