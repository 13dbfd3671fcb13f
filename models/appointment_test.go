// models/appointment_test.go
package models

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2025-03-10", false},
		{"2025-12-31", false},
		{"2025-3-10", true},
		{"10-03-2025", true},
		{"2025-03-10T00:00:00Z", true},
		{"2025-02-30", true},
		{"", true},
		{"mañana", true},
	}
	for _, tt := range tests {
		parsed, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && CanonicalDate(parsed) != tt.in {
			t.Errorf("ParseDate(%q) did not round-trip, got %q", tt.in, CanonicalDate(parsed))
		}
	}
}

func TestCanonicalDateOrdering(t *testing.T) {
	earlier := CanonicalDate(time.Date(2025, time.March, 9, 23, 0, 0, 0, time.Local))
	later := CanonicalDate(time.Date(2025, time.March, 10, 1, 0, 0, 0, time.Local))
	if !(earlier < later) {
		t.Fatalf("canonical dates must order lexicographically: %q vs %q", earlier, later)
	}
}

func TestAllSlots(t *testing.T) {
	slots := AllSlots()
	if len(slots) != 10 {
		t.Fatalf("want 10 bookable slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "19:00" {
		t.Fatalf("unexpected slot bounds: %v", slots)
	}
	for _, s := range slots {
		if s == "13:00" {
			t.Fatal("midday closure must not be bookable")
		}
	}

	// Mutating the returned slice must not leak into the catalogue.
	slots[0] = "00:00"
	if AllSlots()[0] != "09:00" {
		t.Fatal("AllSlots should return a copy")
	}
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range []string{"09:00", "12:00", "14:00", "19:00"} {
		if !IsValidSlot(s) {
			t.Errorf("IsValidSlot(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"13:00", "20:00", "9:00", "14:30", ""} {
		if IsValidSlot(s) {
			t.Errorf("IsValidSlot(%q) = true, want false", s)
		}
	}
}

func TestDayRecordContains(t *testing.T) {
	rec := DayRecord{Date: "2025-03-10", Slots: []string{"09:00", "14:00"}}
	if !rec.Contains("14:00") {
		t.Fatal("Contains should find a held slot")
	}
	if rec.Contains("15:00") {
		t.Fatal("Contains should miss an absent slot")
	}
}

func TestServiceByID(t *testing.T) {
	svc, ok := ServiceByID("corte_clasico")
	if !ok || svc.Name != "Corte Clásico" || svc.Price != 9000 {
		t.Fatalf("ServiceByID(corte_clasico) = (%+v, %v)", svc, ok)
	}
	if _, ok := ServiceByID("tinte"); ok {
		t.Fatal("unknown service ID should not resolve")
	}
}
