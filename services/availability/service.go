// File: services/availability/service.go
package availability

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	daybookRepo "github.com/proyectosweblym/barberbook/database/repository/daybook"
	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/utils"
)

// ColdLoad pulls the full day book into the cache, then purges expired days.
// On store failure the existing cache is kept; startup never hard-fails on
// the remote being down.
func (s *DefaultAvailabilityService) ColdLoad(ctx context.Context) {
	logger := utils.GetLogger()

	book, err := s.Repo.FetchAll(ctx)
	if err != nil {
		logger.Warn("availability: cold load failed, keeping cached view", zap.Error(err))
	} else {
		s.Cache.Replace(book)
		logger.Info("availability: day book loaded", zap.Int("bookedDates", len(book)))
	}

	s.PurgeExpiredDays(ctx, models.CanonicalDate(time.Now()))
}

// IsSlotAvailable is true iff no day record exists for the date or the record
// does not contain the slot. The cache answers first so sequential callers
// observe their own prior writes; otherwise the store is consulted, and any
// store error degrades to the cached view rather than failing.
func (s *DefaultAvailabilityService) IsSlotAvailable(ctx context.Context, date, slot string) bool {
	if s.Cache.Contains(date, slot) {
		return false
	}

	slots, err := s.Repo.Fetch(ctx, date)
	if err != nil {
		if errors.Is(err, daybookRepo.ErrNotFound) {
			return true
		}
		utils.GetLogger().Warn("availability: store check failed, using cached view",
			zap.String("date", date), zap.String("slot", slot), zap.Error(err))
		return !s.Cache.Contains(date, slot)
	}

	rec := models.DayRecord{Date: date, Slots: slots}
	return !rec.Contains(slot)
}

// ReserveSlot adds the slot to the date's record. Returns false with no side
// effects when the slot is occupied at the moment of the write. The conflict
// check is get-then-append over the store's set-union merge, not a true
// compare-and-swap: two clients writing the same millisecond can in theory
// both pass the check. That weaker guarantee is deliberate and matches the
// deployed system.
func (s *DefaultAvailabilityService) ReserveSlot(ctx context.Context, date, slot string) (bool, error) {
	logger := utils.GetLogger()

	if s.Cache.Contains(date, slot) {
		return false, nil
	}

	slots, err := s.Repo.Fetch(ctx, date)
	switch {
	case errors.Is(err, daybookRepo.ErrNotFound):
		if err := s.Repo.CreateWithSlot(ctx, date, slot); err != nil {
			return false, err
		}
	case err != nil:
		return false, err
	default:
		rec := models.DayRecord{Date: date, Slots: slots}
		if rec.Contains(slot) {
			logger.Debug("availability: slot already occupied",
				zap.String("date", date), zap.String("slot", slot))
			return false, nil
		}
		if err := s.Repo.AppendSlot(ctx, date, slot); err != nil {
			return false, err
		}
	}

	s.Cache.Append(date, slot)
	logger.Info("availability: slot reserved",
		zap.String("date", date), zap.String("slot", slot))
	return true, nil
}

// CancelSlot removes the slot from the date's record and deletes the record
// when that was its last slot: an empty day record must not exist. Returns
// false when the slot was not occupied.
func (s *DefaultAvailabilityService) CancelSlot(ctx context.Context, date, slot string) (bool, error) {
	logger := utils.GetLogger()

	slots, err := s.Repo.Fetch(ctx, date)
	if errors.Is(err, daybookRepo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	rec := models.DayRecord{Date: date, Slots: slots}
	if !rec.Contains(slot) {
		return false, nil
	}

	if len(slots) == 1 {
		if err := s.Repo.DeleteDay(ctx, date); err != nil && !errors.Is(err, daybookRepo.ErrNotFound) {
			return false, err
		}
		s.Cache.Delete(date)
		logger.Info("availability: day record deleted, no slots remaining",
			zap.String("date", date))
		return true, nil
	}

	if err := s.Repo.RemoveSlot(ctx, date, slot); err != nil && !errors.Is(err, daybookRepo.ErrNotFound) {
		return false, err
	}
	s.Cache.Remove(date, slot)
	logger.Info("availability: slot cancelled",
		zap.String("date", date), zap.String("slot", slot))
	return true, nil
}

// PurgeExpiredDays deletes every record dated strictly before reference. A
// record dated exactly reference survives. Canonical zero-padded dates make
// the string comparison chronological. Side-effect only; failures are logged
// and the purge moves on.
func (s *DefaultAvailabilityService) PurgeExpiredDays(ctx context.Context, reference string) {
	logger := utils.GetLogger()

	book, err := s.Repo.FetchAll(ctx)
	if err != nil {
		logger.Warn("availability: purge could not list day book", zap.Error(err))
		s.Cache.PurgeBefore(reference)
		return
	}

	purged := 0
	for date := range book {
		if date >= reference {
			continue
		}
		if err := s.Repo.DeleteDay(ctx, date); err != nil && !errors.Is(err, daybookRepo.ErrNotFound) {
			logger.Warn("availability: failed to purge expired day",
				zap.String("date", date), zap.Error(err))
			continue
		}
		purged++
	}
	s.Cache.PurgeBefore(reference)

	if purged > 0 {
		logger.Info("availability: expired day records purged", zap.Int("count", purged))
	}
}

// ClearAll deletes every day record. The confirmation prompt is a caller
// concern, not enforced here.
func (s *DefaultAvailabilityService) ClearAll(ctx context.Context) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.Cache.Clear()
	utils.GetLogger().Info("availability: all day records cleared")
	return nil
}

// ListBookedDays returns the cached records in date order, for admin views.
func (s *DefaultAvailabilityService) ListBookedDays() []models.DayRecord {
	dates := s.Cache.Dates()
	records := make([]models.DayRecord, 0, len(dates))
	for _, date := range dates {
		records = append(records, models.DayRecord{Date: date, Slots: s.Cache.Get(date)})
	}
	return records
}
