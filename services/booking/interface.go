// File: services/booking/interface.go
package booking

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"

	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/services/availability"
	"github.com/proyectosweblym/barberbook/services/blockeddays"
)

// SessionService drives the booking flow: open a form session, refresh its
// slot options on date change, submit, or abandon. Sessions live in the
// session cache with a TTL; an abandoned form simply expires.
type SessionService interface {
	Open(ctx context.Context, date string) (*models.BookingSession, error)
	Refresh(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	Submit(ctx context.Context, sessionID string, req models.BookingRequest) (*models.BookingConfirmation, error)
	Cancel(ctx context.Context, sessionID string) error
}

// SettingsSource yields the current admin settings (contact routing number).
type SettingsSource interface {
	Current() models.AdminSettings
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Availability availability.Service
	Blocked      blockeddays.Registry
	Settings     SettingsSource
	SessionCache *redis.Client

	validate *validator.Validate
}

// NewSessionService wires the booking flow against its collaborators.
func NewSessionService(
	avail availability.Service,
	blocked blockeddays.Registry,
	settings SettingsSource,
	sessionCache *redis.Client,
) *DefaultSessionService {
	return &DefaultSessionService{
		Availability: avail,
		Blocked:      blocked,
		Settings:     settings,
		SessionCache: sessionCache,
		validate:     validator.New(),
	}
}
