// File: services/availability/sync.go
package availability

import (
	"context"

	"go.uber.org/zap"

	daybookRepo "github.com/proyectosweblym/barberbook/database/repository/daybook"
	"github.com/proyectosweblym/barberbook/utils"
)

// StartSync subscribes once to remote change notifications and mirrors them
// into the cache, so reservations made by other devices show up without a
// reload. No-op when the remote store is unavailable. Notifications missed
// while disconnected are not reconciled until the next cold load.
func (s *DefaultAvailabilityService) StartSync(ctx context.Context) {
	logger := utils.GetLogger()

	if s.Watcher == nil {
		logger.Info("availability: remote store unavailable, realtime sync disabled")
		return
	}

	go func() {
		logger.Info("availability: realtime sync active")
		if err := s.Watcher.Watch(ctx, s.applyChanges); err != nil && ctx.Err() == nil {
			logger.Warn("availability: realtime sync stopped", zap.Error(err))
		}
	}()
}

// applyChanges folds one batch of document changes into the cache. An added
// or modified document replaces that date's slot list wholesale; a removed
// document deletes the entry.
func (s *DefaultAvailabilityService) applyChanges(changes []daybookRepo.Change) {
	for _, ch := range changes {
		switch ch.Kind {
		case daybookRepo.ChangeSet:
			s.Cache.SetDay(ch.Date, ch.Slots)
		case daybookRepo.ChangeRemoved:
			s.Cache.Delete(ch.Date)
		}
	}
	utils.GetLogger().Debug("availability: realtime changes applied",
		zap.Int("count", len(changes)))

	if s.OnChange != nil {
		s.OnChange()
	}
}
