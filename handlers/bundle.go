// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	OpenSession    gin.HandlerFunc
	RefreshSession gin.HandlerFunc
	ConfirmBooking gin.HandlerFunc
	CancelSession  gin.HandlerFunc
	GetServices    gin.HandlerFunc

	// Public availability endpoint
	GetDayAvailability gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
