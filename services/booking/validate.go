// File: services/booking/validate.go
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/proyectosweblym/barberbook/models"
)

// checkDate rejects malformed, past, or blocked dates. Used both when the
// form opens and again at submission time.
func (s *DefaultSessionService) checkDate(date string) error {
	if _, err := models.ParseDate(date); err != nil {
		return &ValidationError{Field: "appointmentDate", Message: "fecha inválida"}
	}
	if date < models.CanonicalDate(time.Now()) {
		return &ValidationError{Field: "appointmentDate", Message: "la fecha seleccionada no puede ser en el pasado"}
	}
	if s.Blocked.IsBlocked(date) {
		msg := "no se pueden hacer reservas para la fecha seleccionada"
		if day, ok := s.Blocked.Get(date); ok && day.Reason != "" {
			msg = fmt.Sprintf("%s. Motivo: %s", msg, day.Reason)
		}
		return &ValidationError{Field: "appointmentDate", Message: msg}
	}
	return nil
}

// validateRequest applies the structural checks (name, phone, service, date,
// slot) followed by the semantic ones. Everything is rejected before any
// write; the form stays open.
func (s *DefaultSessionService) validateRequest(req models.BookingRequest) error {
	if err := s.validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ValidationError{
				Field:   fieldName(errs[0].Field()),
				Message: structuralMessage(errs[0]),
			}
		}
		return &ValidationError{Field: "request", Message: "solicitud inválida"}
	}

	if _, ok := models.ServiceByID(req.ServiceType); !ok {
		return &ValidationError{Field: "serviceType", Message: "selecciona un tipo de servicio válido"}
	}
	if !models.IsValidSlot(req.AppointmentTime) {
		return &ValidationError{Field: "appointmentTime", Message: "selecciona una hora válida"}
	}
	return s.checkDate(req.AppointmentDate)
}

func fieldName(structField string) string {
	if structField == "" {
		return "request"
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func structuralMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "CustomerName":
		return "ingresa un nombre válido (mínimo 2 caracteres)"
	case "CustomerPhone":
		return "ingresa un teléfono válido (mínimo 8 dígitos)"
	case "ServiceType":
		return "selecciona un tipo de servicio"
	case "AppointmentDate":
		return "selecciona una fecha"
	case "AppointmentTime":
		return "selecciona una hora"
	default:
		return "campo inválido"
	}
}
