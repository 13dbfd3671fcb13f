// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/utils"
)

// sessionTTL bounds how long an open form stays valid without activity.
const sessionTTL = 10 * time.Minute

// Open starts a booking session for the given date: the date is checked
// (canonical, not past, not blocked) and every enumerated slot is queried for
// availability. The session is cached under a fresh ID.
func (s *DefaultSessionService) Open(ctx context.Context, date string) (*models.BookingSession, error) {
	if err := s.checkDate(date); err != nil {
		return nil, err
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		Date:      date,
		Slots:     s.slotStatuses(ctx, date),
	}
	if err := s.storeSession(ctx, &session); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("booking: session opened",
		zap.String("sessionID", session.SessionID), zap.String("date", date))
	return &session, nil
}

// Refresh re-queries every slot for the (possibly changed) date and updates
// the cached session.
func (s *DefaultSessionService) Refresh(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkDate(date); err != nil {
		return nil, err
	}

	session.Date = date
	session.Slots = s.slotStatuses(ctx, date)
	if err := s.storeSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit validates the request and attempts the reservation. On a slot
// conflict the session returns to the open state with refreshed slot options
// and a SlotTakenError; on success the session is dropped and the
// confirmation message plus messaging deep link are returned.
func (s *DefaultSessionService) Submit(ctx context.Context, sessionID string, req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	reserved, err := s.Availability.ReserveSlot(ctx, req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, err
	}
	if !reserved {
		session.Date = req.AppointmentDate
		session.Slots = s.slotStatuses(ctx, req.AppointmentDate)
		if err := s.storeSession(ctx, session); err != nil {
			logger.Warn("booking: failed to refresh session after conflict", zap.Error(err))
		}
		return nil, &SlotTakenError{
			Date:  req.AppointmentDate,
			Slot:  req.AppointmentTime,
			Slots: session.Slots,
		}
	}

	confirmation := s.composeConfirmation(req)
	s.dropSession(ctx, sessionID)
	logger.Info("booking: reservation confirmed",
		zap.String("date", req.AppointmentDate),
		zap.String("slot", req.AppointmentTime),
		zap.String("service", req.ServiceType))
	return confirmation, nil
}

// Cancel abandons the session. Reservations already in flight are never
// aborted; only the form state goes away.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.loadSession(ctx, sessionID); err != nil {
		return err
	}
	s.dropSession(ctx, sessionID)
	return nil
}

// slotStatuses queries availability for every enumerated slot of the date.
func (s *DefaultSessionService) slotStatuses(ctx context.Context, date string) []models.SlotStatus {
	slots := models.AllSlots()
	statuses := make([]models.SlotStatus, 0, len(slots))
	for _, slot := range slots {
		statuses = append(statuses, models.SlotStatus{
			Slot:      slot,
			Available: s.Availability.IsSlotAvailable(ctx, date, slot),
		})
	}
	return statuses
}

func (s *DefaultSessionService) storeSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.SessionCache.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err()
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.SessionCache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeSession([]byte(data))
}

// decodeSession treats a corrupt cached session the same as an expired one:
// the client re-opens the form rather than seeing a server failure.
func decodeSession(data []byte) (*models.BookingSession, error) {
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *DefaultSessionService) dropSession(ctx context.Context, sessionID string) {
	if err := s.SessionCache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		utils.GetLogger().Warn("booking: failed to drop session", zap.Error(err))
	}
}

func sessionKey(sessionID string) string {
	return "bookingSession:" + sessionID
}
