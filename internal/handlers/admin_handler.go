package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nataliejames/wedding-api/internal/models"
	"github.com/nataliejames/wedding-api/internal/services"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the couple against Supabase Auth and stores the
// session in httpOnly cookies. Tokens never reach response bodies.
func Login(a *services.AuthService, isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("email and password are required"))
			return
		}

		tokenRes, err := a.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid email or password"))
			return
		}

		c.SetCookie("access_token", tokenRes.AccessToken, tokenRes.ExpiresIn, "/", "", isProduction, true)
		c.SetCookie("refresh_token", tokenRes.RefreshToken, 3600*24*30, "/", "", isProduction, true)

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Login successful"))
	}
}

// Logout clears the session cookies.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("access_token", "", -1, "/", "", false, true)
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out"))
	}
}

// ListGuests returns the full guest list with derived RSVP status and
// headline counts for the dashboard. q filters by name or email,
// status by waiting/accepted/declined.
func ListGuests(g *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		guests, stats, err := g.ListGuestsWithStatus(c.Request.Context(), c.Query("q"), c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to fetch guests"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"guests": guests,
			"stats":  stats,
		}, ""))
	}
}

// CreateGuest adds a guest to the invite list.
func CreateGuest(g *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var guest models.Guest
		if err := c.ShouldBindJSON(&guest); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		saved, err := g.CreateGuest(c.Request.Context(), &guest)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(saved, "Guest added successfully"))
	}
}

// ListRSVPs returns submitted RSVP rows, optionally filtered by a
// name/email substring and attendance.
func ListRSVPs(r *services.RSVPService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rsvps, err := r.ListRSVPs(c.Request.Context(), c.Query("q"), c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to fetch RSVPs"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(rsvps, ""))
	}
}

// ListContributions returns completed honeymoon fund contributions
// with their running total.
func ListContributions(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		contributions, total, err := p.ListContributions(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to fetch contributions"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"contributions": contributions,
			"total":         total,
		}, ""))
	}
}

// ListShuttleBookings returns all shuttle bookings for headcounts.
func ListShuttleBookings(s *services.ShuttleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := s.ListBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse("failed to fetch shuttle bookings"))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}
