// models/appointment.go
package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical form of an appointment date. Zero-padded ISO
// order makes lexicographic comparison equal to chronological comparison,
// which the purge and admin listings rely on.
const DateLayout = "2006-01-02"

// SlotLayout is the fixed format of a bookable time of day.
const SlotLayout = "15:04"

// bookableSlots is the closed set of bookable hours: opening to closing with
// a midday gap (the shop closes 13:00-14:00).
var bookableSlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

// AllSlots returns the enumerated bookable slots in chronological order.
func AllSlots() []string {
	out := make([]string, len(bookableSlots))
	copy(out, bookableSlots)
	return out
}

// IsValidSlot reports whether s is one of the enumerated bookable slots.
func IsValidSlot(s string) bool {
	for _, slot := range bookableSlots {
		if slot == s {
			return true
		}
	}
	return false
}

// CanonicalDate formats t as an appointment date key in t's own location.
// No UTC conversion: the shop book runs on wall-clock dates.
func CanonicalDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate validates that s is a canonical appointment date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date %q: %w", s, err)
	}
	if CanonicalDate(t) != s {
		return time.Time{}, fmt.Errorf("appointment date %q is not in canonical %s form", s, DateLayout)
	}
	return t, nil
}

// DayRecord is the set of occupied slots for one date. Slots keep insertion
// order and never contain duplicates. A DayRecord with no slots must not be
// persisted; it is deleted instead.
type DayRecord struct {
	Date  string   `json:"date" firestore:"-"`
	Slots []string `json:"slots" firestore:"horas"`
}

// Contains reports whether the record already holds the given slot.
// Linear scan: the sequence is bounded by the ten enumerated slots.
func (d DayRecord) Contains(slot string) bool {
	for _, s := range d.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotStatus pairs a bookable slot with its availability for one date.
type SlotStatus struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}
