// models/blocked.go
package models

import "time"

// BlockedDay marks a date administratively excluded from booking. Presence of
// the date key signals "blocked"; there is no boolean flag.
type BlockedDay struct {
	Reason    string    `json:"reason"`
	BlockedAt time.Time `json:"blockedAt"`
}

// BlockedDayListing is a BlockedDay paired with its date key, for admin views.
type BlockedDayListing struct {
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	BlockedAt time.Time `json:"blockedAt"`
}
