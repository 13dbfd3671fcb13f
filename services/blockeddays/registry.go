// File: services/blockeddays/registry.go
package blockeddays

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	localStore "github.com/proyectosweblym/barberbook/database/repository/localstore"
	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/utils"
)

// Registry keeps the dates administratively excluded from booking. It is
// local-only by design: blocked-day decisions are never synchronized to the
// remote store, so they belong to a single operator device.
type Registry interface {
	Block(ctx context.Context, date, reason string) bool
	Unblock(ctx context.Context, date string) bool
	IsBlocked(date string) bool
	Get(date string) (models.BlockedDay, bool)
	List() []models.BlockedDayListing
	ClearAll(ctx context.Context)
}

// DefaultRegistry implements Registry over the local store.
type DefaultRegistry struct {
	Store localStore.Store

	mu   sync.RWMutex
	days map[string]models.BlockedDay
}

// NewRegistry loads the persisted blocked days and returns the registry.
func NewRegistry(ctx context.Context, store localStore.Store) *DefaultRegistry {
	r := &DefaultRegistry{
		Store: store,
		days:  store.LoadBlockedDays(ctx),
	}
	utils.GetLogger().Info("blockeddays: registry loaded", zap.Int("blocked", len(r.days)))
	return r
}

// Block marks the date blocked with a free-text reason. Returns false when
// the date is already blocked; the stored reason is never overwritten.
// Blocking does not cancel bookings that already exist on the date.
func (r *DefaultRegistry) Block(ctx context.Context, date, reason string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.days[date]; exists {
		return false
	}
	r.days[date] = models.BlockedDay{Reason: reason, BlockedAt: time.Now()}
	r.Store.SaveBlockedDays(ctx, r.days)
	utils.GetLogger().Info("blockeddays: day blocked",
		zap.String("date", date), zap.String("reason", reason))
	return true
}

// Unblock removes the date's block. Returns false when it was not blocked.
func (r *DefaultRegistry) Unblock(ctx context.Context, date string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.days[date]; !exists {
		return false
	}
	delete(r.days, date)
	r.Store.SaveBlockedDays(ctx, r.days)
	utils.GetLogger().Info("blockeddays: day unblocked", zap.String("date", date))
	return true
}

// IsBlocked is a key-presence test.
func (r *DefaultRegistry) IsBlocked(date string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.days[date]
	return exists
}

// Get returns the block record for the date, if any.
func (r *DefaultRegistry) Get(date string) (models.BlockedDay, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	day, ok := r.days[date]
	return day, ok
}

// List returns the blocked days in date order.
func (r *DefaultRegistry) List() []models.BlockedDayListing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dates := make([]string, 0, len(r.days))
	for date := range r.days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]models.BlockedDayListing, 0, len(dates))
	for _, date := range dates {
		day := r.days[date]
		out = append(out, models.BlockedDayListing{
			Date:      date,
			Reason:    day.Reason,
			BlockedAt: day.BlockedAt,
		})
	}
	return out
}

// ClearAll unblocks every date.
func (r *DefaultRegistry) ClearAll(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.days = make(map[string]models.BlockedDay)
	r.Store.SaveBlockedDays(ctx, r.days)
	utils.GetLogger().Info("blockeddays: all blocked days cleared")
}
