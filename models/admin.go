// models/admin.go
package models

// AdminSettings is the shop-wide singleton: loaded at startup, overwritten
// wholesale on save.
type AdminSettings struct {
	OpeningTime    string `json:"openingTime"`
	ClosingTime    string `json:"closingTime"`
	WhatsAppNumber string `json:"whatsappNumber"`
}
