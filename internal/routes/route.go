package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nataliejames/wedding-api/internal/container"
	"github.com/nataliejames/wedding-api/internal/handlers"
	"github.com/nataliejames/wedding-api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "wedding-api",
			})
		})

		// guest-facing routes
		v1.GET("/guests/search", handlers.SearchGuests(c.GuestService))
		v1.POST("/rsvps", handlers.SubmitRSVP(c.RSVPService))

		v1.GET("/photos", handlers.ListPhotos(c.PhotoService))
		v1.POST("/photos", handlers.UploadPhoto(c.PhotoService))
		v1.GET("/photos/:id/download", handlers.DownloadPhoto(c.PhotoService))

		v1.GET("/registry", handlers.RegistryItems(c.PaymentService))
		v1.POST("/checkout", handlers.CreateCheckout(c.PaymentService))
		v1.POST("/webhooks/stripe", handlers.StripeWebhook(c.PaymentService, c.Config.StripeWebhookSecret, c.Logger))

		v1.GET("/info/transport", handlers.TransportInfo())
		v1.POST("/shuttle-bookings", handlers.BookShuttle(c.ShuttleService))
		v1.GET("/info/accommodation", handlers.AccommodationInfo())

		v1.POST("/admin/login", handlers.Login(c.AuthService, c.Config.IsProduction()))
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(c.AuthService, c.Logger, c.Config.IsProduction()))
	{
		admin.POST("/logout", handlers.Logout())
		admin.GET("/guests", handlers.ListGuests(c.GuestService))
		admin.POST("/guests", handlers.CreateGuest(c.GuestService))
		admin.GET("/rsvps", handlers.ListRSVPs(c.RSVPService))
		admin.GET("/contributions", handlers.ListContributions(c.PaymentService))
		admin.GET("/shuttle-bookings", handlers.ListShuttleBookings(c.ShuttleService))
		admin.DELETE("/photos/:id", handlers.DeletePhoto(c.PhotoService))
	}

	return r
}
