package routes

import (
	"strings"
	"time"

	"luxego/config"
	"luxego/handlers"
	"luxego/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/stats/summary", hb.Booking.BookingStats)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PATCH("/:id", hb.Booking.UpdateBooking)
		api.DELETE("/:id", hb.Booking.DeleteBooking)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.Review.CreateReview)
		api.GET("", hb.Review.ListReviews)
		api.GET("/admin/all", hb.Review.AdminListReviews)
		api.GET("/stats/summary", hb.Review.ReviewStats)
		api.PATCH("/:id/approve", hb.Review.ApproveReview)
		api.PATCH("/:id/feature", hb.Review.FeatureReview)
		api.PATCH("/:id/respond", hb.Review.RespondReview)
	}
}

// RegisterContactRoutes registers the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.Contact.SubmitContact)
}

// RegisterCatalogRoutes registers the static package catalog endpoint.
func RegisterCatalogRoutes(r *gin.Engine) {
	r.GET("/api/packages", handlers.GetPackages)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthCheck)
}

// RegisterMetricsRoute registers the Prometheus scrape endpoint.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", utils.MetricsHandler())
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := strings.Split(config.AppConfig.CORSOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterCatalogRoutes(r)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
