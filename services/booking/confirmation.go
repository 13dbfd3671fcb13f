// File: services/booking/confirmation.go
package booking

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/proyectosweblym/barberbook/models"
)

var spanishWeekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// spanishLongDate renders a date the way the confirmation message shows it,
// e.g. "lunes, 10 de marzo de 2025".
func spanishLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year())
}

// formatCLP groups thousands with dots, es-CL style: 9000 -> "9.000".
func formatCLP(amount int) string {
	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// composeConfirmation builds the formatted confirmation message and the
// messaging deep link. The clipboard fallback when the link cannot be opened
// is the client's concern; both message and URL are returned.
func (s *DefaultSessionService) composeConfirmation(req models.BookingRequest) *models.BookingConfirmation {
	service, _ := models.ServiceByID(req.ServiceType)
	date, _ := models.ParseDate(req.AppointmentDate)

	var b strings.Builder
	b.WriteString("🎉 ¡NUEVA RESERVA CONFIRMADA! 🎉\n\n")
	b.WriteString("✨ *ALEX BARBER - Estilo y Elegancia* ✨\n\n")
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", req.CustomerName)
	fmt.Fprintf(&b, "📱 *Teléfono:* %s\n\n", req.CustomerPhone)
	fmt.Fprintf(&b, "✂️ *Servicio:* %s\n", service.Name)
	fmt.Fprintf(&b, "📅 *Fecha:* %s\n", spanishLongDate(date))
	fmt.Fprintf(&b, "🕐 *Hora:* %s\n", req.AppointmentTime)
	fmt.Fprintf(&b, "💰 *Precio:* $%s CLP\n\n", formatCLP(service.Price))
	b.WriteString("📍 *Dirección:* Vega Monumental Pasillo 8 Local 190\n\n")
	if req.SpecialRequests != "" {
		fmt.Fprintf(&b, "📝 *Nota:* %s\n\n", req.SpecialRequests)
	}
	b.WriteString("✅ *¡Tu reserva está confirmada!*\n")
	b.WriteString("⏰ *Te esperamos con mucho entusiasmo*\n\n")
	b.WriteString("💡 *Recuerda llegar 5 minutos antes de tu cita*\n")
	b.WriteString("📞 *Si necesitas cambiar o cancelar, contáctanos*\n\n")
	b.WriteString("¡Gracias por elegirnos! 🙌")

	message := b.String()
	return &models.BookingConfirmation{
		Message:     message,
		WhatsAppURL: WhatsAppLink(s.Settings.Current().WhatsAppNumber, message),
	}
}

// WhatsAppLink builds the https://wa.me deep link for a number and a
// url-encoded message.
func WhatsAppLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
