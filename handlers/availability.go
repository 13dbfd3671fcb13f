// File: handlers/availability.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/services/availability"
	"github.com/proyectosweblym/barberbook/services/blockeddays"
)

// AvailabilityHandler exposes the public free/busy view.
type AvailabilityHandler struct {
	Service availability.Service
	Blocked blockeddays.Registry
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service, blocked blockeddays.Registry) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Blocked: blocked}
}

// GetDayAvailability returns the status of every enumerated slot for a date.
// A blocked date reports every slot unavailable.
func (ah *AvailabilityHandler) GetDayAvailability(c *gin.Context) {
	date := c.Query("date")
	if _, err := models.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD form"})
		return
	}

	blocked := ah.Blocked.IsBlocked(date)
	slots := make([]models.SlotStatus, 0, 10)
	for _, slot := range models.AllSlots() {
		available := !blocked && ah.Service.IsSlotAvailable(c.Request.Context(), date, slot)
		slots = append(slots, models.SlotStatus{Slot: slot, Available: available})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    date,
		"blocked": blocked,
		"slots":   slots,
	})
}
