// models/booking.go
package models

// BookingRequest is the ephemeral input aggregate collected from the booking
// form. It is never persisted: it produces a DayRecord mutation and an
// outbound confirmation message.
type BookingRequest struct {
	CustomerName    string `json:"customerName" validate:"required,min=2"`
	CustomerPhone   string `json:"customerPhone" validate:"required,min=8"`
	ServiceType     string `json:"serviceType" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required"`
	AppointmentTime string `json:"appointmentTime" validate:"required"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// BookingSession holds form state between opening the booking flow and
// confirming or abandoning it.
type BookingSession struct {
	SessionID string       `json:"sessionId"`
	Date      string       `json:"date"`
	Slots     []SlotStatus `json:"slots"`
}

// BookingConfirmation is the outcome of a confirmed booking: the formatted
// plaintext message plus the messaging deep link. Clients open the link and
// fall back to copying the message when the link cannot be opened.
type BookingConfirmation struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}
