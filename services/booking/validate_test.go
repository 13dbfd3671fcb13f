package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/proyectosweblym/barberbook/models"
)

// fakeBlocked is an in-memory blocked-day registry for flow tests.
type fakeBlocked struct {
	days map[string]models.BlockedDay
}

func newFakeBlocked() *fakeBlocked {
	return &fakeBlocked{days: make(map[string]models.BlockedDay)}
}

func (f *fakeBlocked) Block(ctx context.Context, date, reason string) bool {
	if _, ok := f.days[date]; ok {
		return false
	}
	f.days[date] = models.BlockedDay{Reason: reason}
	return true
}

func (f *fakeBlocked) Unblock(ctx context.Context, date string) bool {
	if _, ok := f.days[date]; !ok {
		return false
	}
	delete(f.days, date)
	return true
}

func (f *fakeBlocked) IsBlocked(date string) bool {
	_, ok := f.days[date]
	return ok
}

func (f *fakeBlocked) Get(date string) (models.BlockedDay, bool) {
	day, ok := f.days[date]
	return day, ok
}

func (f *fakeBlocked) List() []models.BlockedDayListing { return nil }

func (f *fakeBlocked) ClearAll(ctx context.Context) {
	f.days = make(map[string]models.BlockedDay)
}

type fakeSettings struct {
	settings models.AdminSettings
}

func (f fakeSettings) Current() models.AdminSettings { return f.settings }

func validationService(blocked *fakeBlocked) *DefaultSessionService {
	return &DefaultSessionService{
		Blocked:  blocked,
		Settings: fakeSettings{settings: models.AdminSettings{WhatsAppNumber: "56999431896"}},
		validate: validator.New(),
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		CustomerName:    "Juan Pérez",
		CustomerPhone:   "+56912345678",
		ServiceType:     "corte_clasico",
		AppointmentDate: "2999-01-02",
		AppointmentTime: "14:00",
	}
}

func fieldError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want *ValidationError, got %T: %v", err, err)
	}
	return ve
}

func TestValidateRequestAcceptsCompleteRequest(t *testing.T) {
	svc := validationService(newFakeBlocked())
	if err := svc.validateRequest(validRequest()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestValidateRequestStructuralFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.BookingRequest)
		wantField string
	}{
		{"missing name", func(r *models.BookingRequest) { r.CustomerName = "" }, "customerName"},
		{"short name", func(r *models.BookingRequest) { r.CustomerName = "J" }, "customerName"},
		{"missing phone", func(r *models.BookingRequest) { r.CustomerPhone = "" }, "customerPhone"},
		{"short phone", func(r *models.BookingRequest) { r.CustomerPhone = "1234567" }, "customerPhone"},
		{"missing service", func(r *models.BookingRequest) { r.ServiceType = "" }, "serviceType"},
		{"missing date", func(r *models.BookingRequest) { r.AppointmentDate = "" }, "appointmentDate"},
		{"missing time", func(r *models.BookingRequest) { r.AppointmentTime = "" }, "appointmentTime"},
	}

	svc := validationService(newFakeBlocked())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			ve := fieldError(t, svc.validateRequest(req))
			if ve.Field != tt.wantField {
				t.Fatalf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateRequestSemanticFailures(t *testing.T) {
	svc := validationService(newFakeBlocked())

	req := validRequest()
	req.ServiceType = "afeitado_completo"
	if ve := fieldError(t, svc.validateRequest(req)); ve.Field != "serviceType" {
		t.Fatalf("unknown service should fail on serviceType, got %q", ve.Field)
	}

	req = validRequest()
	req.AppointmentTime = "13:00"
	if ve := fieldError(t, svc.validateRequest(req)); ve.Field != "appointmentTime" {
		t.Fatalf("out-of-catalogue slot should fail on appointmentTime, got %q", ve.Field)
	}

	req = validRequest()
	req.AppointmentDate = "2999-1-2"
	if ve := fieldError(t, svc.validateRequest(req)); ve.Field != "appointmentDate" {
		t.Fatalf("non-canonical date should fail on appointmentDate, got %q", ve.Field)
	}
}

func TestCheckDateRejectsPast(t *testing.T) {
	svc := validationService(newFakeBlocked())
	ve := fieldError(t, svc.checkDate("2020-01-01"))
	if ve.Field != "appointmentDate" {
		t.Fatalf("Field = %q, want appointmentDate", ve.Field)
	}
	if !strings.Contains(ve.Message, "pasado") {
		t.Fatalf("message should mention the past, got %q", ve.Message)
	}
}

func TestCheckDateBlockedIncludesReason(t *testing.T) {
	blocked := newFakeBlocked()
	blocked.Block(context.Background(), "2999-01-02", "feriado nacional")
	svc := validationService(blocked)

	ve := fieldError(t, svc.checkDate("2999-01-02"))
	if !strings.Contains(ve.Message, "Motivo: feriado nacional") {
		t.Fatalf("message should carry the block reason, got %q", ve.Message)
	}
}

func TestCheckDateBlockedWithoutReason(t *testing.T) {
	blocked := newFakeBlocked()
	blocked.Block(context.Background(), "2999-01-02", "")
	svc := validationService(blocked)

	ve := fieldError(t, svc.checkDate("2999-01-02"))
	if strings.Contains(ve.Message, "Motivo") {
		t.Fatalf("empty reason should not be rendered, got %q", ve.Message)
	}
}
