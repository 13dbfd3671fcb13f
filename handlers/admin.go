// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/services/admin"
	"github.com/proyectosweblym/barberbook/services/availability"
	"github.com/proyectosweblym/barberbook/services/blockeddays"
)

// AdminHandler encapsulates the shop operator's operations.
type AdminHandler struct {
	Admin        admin.Service
	Availability availability.Service
	Blocked      blockeddays.Registry
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.Service, avail availability.Service, blocked blockeddays.Registry) *AdminHandler {
	return &AdminHandler{Admin: as, Availability: avail, Blocked: blocked}
}

// LoginHandler exchanges the operator password for an admin token.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	token, err := ah.Admin.Login(input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "contraseña incorrecta"})
			return
		}
		zap.L().Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListBookingsHandler returns the day book in date order.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ah.Availability.ListBookedDays())
}

// CancelBookingHandler frees one slot; the day record disappears with its
// last slot.
func (ah *AdminHandler) CancelBookingHandler(c *gin.Context) {
	date := c.Param("date")
	slot := c.Param("slot")

	cancelled, err := ah.Availability.CancelSlot(c.Request.Context(), date, slot)
	if err != nil {
		zap.L().Error("failed to cancel booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	if !cancelled {
		c.JSON(http.StatusNotFound, gin.H{"error": "no booking for that date and slot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "date": date, "slot": slot})
}

// ClearBookingsHandler deletes every day record. Destructive: the caller
// must confirm explicitly.
func (ah *AdminHandler) ClearBookingsHandler(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirm=true is required to clear all bookings"})
		return
	}
	if err := ah.Availability.ClearAll(c.Request.Context()); err != nil {
		zap.L().Error("failed to clear bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// PurgeBookingsHandler runs the expired-day purge on demand.
func (ah *AdminHandler) PurgeBookingsHandler(c *gin.Context) {
	today := models.CanonicalDate(time.Now())
	ah.Availability.PurgeExpiredDays(c.Request.Context(), today)
	c.JSON(http.StatusOK, gin.H{"status": "purged", "before": today})
}

// ListBlockedDaysHandler returns the blocked days in date order.
func (ah *AdminHandler) ListBlockedDaysHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ah.Blocked.List())
}

// BlockDayHandler blocks a future date with an optional reason.
func (ah *AdminHandler) BlockDayHandler(c *gin.Context) {
	var input struct {
		Date   string `json:"date"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if _, err := models.ParseDate(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD form"})
		return
	}
	if input.Date < models.CanonicalDate(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no puedes bloquear fechas en el pasado"})
		return
	}

	if !ah.Blocked.Block(c.Request.Context(), input.Date, input.Reason) {
		c.JSON(http.StatusConflict, gin.H{"error": "este día ya está bloqueado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "blocked", "date": input.Date})
}

// UnblockDayHandler removes a date's block.
func (ah *AdminHandler) UnblockDayHandler(c *gin.Context) {
	date := c.Param("date")
	if !ah.Blocked.Unblock(c.Request.Context(), date) {
		c.JSON(http.StatusNotFound, gin.H{"error": "ese día no está bloqueado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unblocked", "date": date})
}

// ClearBlockedDaysHandler unblocks every date. Destructive, needs confirm.
func (ah *AdminHandler) ClearBlockedDaysHandler(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirm=true is required to clear all blocked days"})
		return
	}
	ah.Blocked.ClearAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// GetSettingsHandler returns the settings singleton.
func (ah *AdminHandler) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ah.Admin.Current())
}

// SaveSettingsHandler overwrites the settings wholesale.
func (ah *AdminHandler) SaveSettingsHandler(c *gin.Context) {
	var settings models.AdminSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	ah.Admin.Save(c.Request.Context(), settings)
	c.JSON(http.StatusOK, settings)
}

// ExportBookingsHandler renders the day book as plaintext.
func (ah *AdminHandler) ExportBookingsHandler(c *gin.Context) {
	c.String(http.StatusOK, ah.Admin.ExportBookings())
}

// ExportBlockedDaysHandler renders the blocked-day registry as plaintext.
func (ah *AdminHandler) ExportBlockedDaysHandler(c *gin.Context) {
	c.String(http.StatusOK, ah.Admin.ExportBlockedDays())
}
