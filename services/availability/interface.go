// File: services/availability/interface.go
package availability

import (
	"context"

	daybookRepo "github.com/proyectosweblym/barberbook/database/repository/daybook"
	"github.com/proyectosweblym/barberbook/models"
)

// Service is the decision layer over the day book: free/busy answers and
// reservation/cancellation with last-writer-wins semantics, preferring the
// remote store and degrading to the local store when it is unreachable.
type Service interface {
	// ColdLoad replaces the in-memory cache from the store and purges
	// records dated before today. Called once at startup.
	ColdLoad(ctx context.Context)
	// IsSlotAvailable reports whether the slot is free on the date. It never
	// fails: on store errors it degrades to the cached view.
	IsSlotAvailable(ctx context.Context, date, slot string) bool
	// ReserveSlot attempts to occupy the slot. False means the slot was
	// already taken at the moment of the write, with no side effects.
	ReserveSlot(ctx context.Context, date, slot string) (bool, error)
	// CancelSlot frees the slot, deleting the day's record when it empties.
	// False means the slot was not occupied.
	CancelSlot(ctx context.Context, date, slot string) (bool, error)
	// PurgeExpiredDays deletes every record dated strictly before reference
	// (canonical dates sort lexicographically). Side-effect only.
	PurgeExpiredDays(ctx context.Context, reference string)
	// ClearAll deletes every record. Destructive; confirmation is the
	// caller's concern.
	ClearAll(ctx context.Context) error
	// ListBookedDays returns the cached day records in date order.
	ListBookedDays() []models.DayRecord
	// StartSync subscribes to remote change notifications, mirroring them
	// into the cache. No-op when the remote is unavailable.
	StartSync(ctx context.Context)
}

// DefaultAvailabilityService implements Service.
type DefaultAvailabilityService struct {
	Repo    daybookRepo.Repository
	Watcher daybookRepo.Watcher // nil when the remote store is unavailable
	Cache   *Cache
	// OnChange, when set, runs after each applied batch of realtime changes
	// so open views can recompute.
	OnChange func()
}
