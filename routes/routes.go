package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/proyectosweblym/barberbook/handlers"
	"github.com/proyectosweblym/barberbook/middleware"
	"github.com/proyectosweblym/barberbook/utils"
)

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/services", hb.GetServices)
		bookingGroup.POST("/session", hb.OpenSession)
		bookingGroup.PUT("/session/:sessionID", hb.RefreshSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterAvailabilityRoutes registers the public free/busy endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availability", hb.GetDayAvailability)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminHandler.LoginHandler)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/bookings", hb.AdminHandler.ListBookingsHandler)
		adminGroup.DELETE("/bookings/:date/:slot", hb.AdminHandler.CancelBookingHandler)
		adminGroup.DELETE("/bookings", hb.AdminHandler.ClearBookingsHandler)
		adminGroup.POST("/bookings/purge", hb.AdminHandler.PurgeBookingsHandler)

		adminGroup.GET("/blocked-days", hb.AdminHandler.ListBlockedDaysHandler)
		adminGroup.POST("/blocked-days", hb.AdminHandler.BlockDayHandler)
		adminGroup.DELETE("/blocked-days/:date", hb.AdminHandler.UnblockDayHandler)
		adminGroup.DELETE("/blocked-days", hb.AdminHandler.ClearBlockedDaysHandler)

		adminGroup.GET("/settings", hb.AdminHandler.GetSettingsHandler)
		adminGroup.PUT("/settings", hb.AdminHandler.SaveSettingsHandler)

		adminGroup.GET("/export/bookings", hb.AdminHandler.ExportBookingsHandler)
		adminGroup.GET("/export/blocked-days", hb.AdminHandler.ExportBlockedDaysHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
