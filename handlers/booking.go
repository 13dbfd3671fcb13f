// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/services/booking"
)

// BookingHandler exposes the booking session flow.
type BookingHandler struct {
	Service booking.SessionService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// OpenSession starts a booking session for a date and returns the slot options.
func (bh *BookingHandler) OpenSession(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := bh.Service.Open(c.Request.Context(), input.Date)
	if err != nil {
		bh.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RefreshSession re-queries the slot options, typically on a date change.
func (bh *BookingHandler) RefreshSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := bh.Service.Refresh(c.Request.Context(), sessionID, input.Date)
	if err != nil {
		bh.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmBooking validates the form and attempts the reservation.
func (bh *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := bh.Service.Submit(c.Request.Context(), sessionID, req)
	if err != nil {
		bh.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// CancelSession abandons an open booking session.
func (bh *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := bh.Service.Cancel(c.Request.Context(), sessionID); err != nil {
		bh.renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// GetServices returns the bookable service catalogue.
func (bh *BookingHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, models.ServiceCatalogue())
}

// renderBookingError maps the booking flow's outcomes onto HTTP statuses.
// A slot conflict is a normal outcome, not a server failure.
func (bh *BookingHandler) renderBookingError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	var takenErr *booking.SlotTakenError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.As(err, &takenErr):
		c.JSON(http.StatusConflict, gin.H{
			"error": "esta hora acaba de ser reservada por otro cliente, selecciona otra hora",
			"slots": takenErr.Slots,
		})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	default:
		bh.Logger.Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process booking"})
	}
}
