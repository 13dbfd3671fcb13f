package booking

import (
	"errors"
	"fmt"

	"github.com/proyectosweblym/barberbook/models"
)

// ErrSessionNotFound means the booking session expired or never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError rejects a booking request before any write. The form stays
// open; Field tells the client what to refocus.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SlotTakenError is the normal outcome of a concurrent booking: the slot was
// taken between the form opening and the write. It carries the refreshed slot
// options so the client can re-render and retry.
type SlotTakenError struct {
	Date  string
	Slot  string
	Slots []models.SlotStatus
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s on %s was just taken by another client", e.Slot, e.Date)
}
