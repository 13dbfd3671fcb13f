// File: services/admin/service.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/proyectosweblym/barberbook/config"
	localStore "github.com/proyectosweblym/barberbook/database/repository/localstore"
	settingsRepo "github.com/proyectosweblym/barberbook/database/repository/settings"
	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/services/availability"
	"github.com/proyectosweblym/barberbook/services/blockeddays"
	"github.com/proyectosweblym/barberbook/utils"
)

// ErrBadCredentials rejects a failed admin login.
var ErrBadCredentials = errors.New("invalid admin credentials")

// Service covers the shop operator's surface: login, the settings singleton,
// and plaintext exports of the books.
type Service interface {
	Login(password string) (string, error)
	Current() models.AdminSettings
	Save(ctx context.Context, settings models.AdminSettings)
	ExportBookings() string
	ExportBlockedDays() string
}

// DefaultAdminService implements Service.
type DefaultAdminService struct {
	Store        localStore.Store
	Availability availability.Service
	Blocked      blockeddays.Registry
	// Mirror, when set, copies saved settings to the remote store. The local
	// copy stays authoritative; a failed push is logged, not surfaced.
	Mirror settingsRepo.Mirror

	mu       sync.RWMutex
	settings models.AdminSettings
}

// NewAdminService loads the persisted settings, falling back to configured
// defaults when none were saved yet.
func NewAdminService(
	ctx context.Context,
	store localStore.Store,
	avail availability.Service,
	blocked blockeddays.Registry,
) *DefaultAdminService {
	settings, ok := store.LoadSettings(ctx)
	if !ok {
		settings = models.AdminSettings{
			OpeningTime:    config.AppConfig.OpeningTime,
			ClosingTime:    config.AppConfig.ClosingTime,
			WhatsAppNumber: config.AppConfig.WhatsAppNumber,
		}
	}
	return &DefaultAdminService{
		Store:        store,
		Availability: avail,
		Blocked:      blocked,
		settings:     settings,
	}
}

// Login checks the password against the configured bcrypt hash and issues a
// short-lived admin token. Operational convenience, not a security boundary.
func (s *DefaultAdminService) Login(password string) (string, error) {
	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		return "", errors.New("admin access is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}
	return utils.GenerateAdminToken(12 * time.Hour)
}

// Current returns the settings singleton.
func (s *DefaultAdminService) Current() models.AdminSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Save overwrites the settings wholesale, persists them locally, and mirrors
// them to the remote store when one is connected.
func (s *DefaultAdminService) Save(ctx context.Context, settings models.AdminSettings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	s.Store.SaveSettings(ctx, settings)
	if s.Mirror != nil {
		if err := s.Mirror.Push(ctx, settings); err != nil {
			utils.GetLogger().Warn("admin: settings mirror push failed", zap.Error(err))
		}
	}
	utils.GetLogger().Info("admin: settings saved")
}

// ExportBookings renders the current day book as plaintext, date-ordered.
func (s *DefaultAdminService) ExportBookings() string {
	records := s.Availability.ListBookedDays()

	var b strings.Builder
	b.WriteString("RESERVAS - ALEX BARBER\n")
	fmt.Fprintf(&b, "Generado: %s\n\n", time.Now().Format("2006-01-02 15:04"))
	if len(records) == 0 {
		b.WriteString("No hay reservas registradas.\n")
		return b.String()
	}
	total := 0
	for _, rec := range records {
		fmt.Fprintf(&b, "%s:\n", rec.Date)
		for _, slot := range rec.Slots {
			fmt.Fprintf(&b, "  - %s\n", slot)
		}
		total += len(rec.Slots)
	}
	fmt.Fprintf(&b, "\nTotal de reservas: %d\n", total)
	return b.String()
}

// ExportBlockedDays renders the blocked-day registry as plaintext.
func (s *DefaultAdminService) ExportBlockedDays() string {
	days := s.Blocked.List()

	var b strings.Builder
	b.WriteString("DÍAS BLOQUEADOS - ALEX BARBER\n")
	fmt.Fprintf(&b, "Generado: %s\n\n", time.Now().Format("2006-01-02 15:04"))
	if len(days) == 0 {
		b.WriteString("No hay días bloqueados.\n")
		return b.String()
	}
	for _, day := range days {
		reason := day.Reason
		if reason == "" {
			reason = "sin motivo"
		}
		fmt.Fprintf(&b, "%s - %s\n", day.Date, reason)
	}
	fmt.Fprintf(&b, "\nTotal de días bloqueados: %d\n", len(days))
	return b.String()
}
