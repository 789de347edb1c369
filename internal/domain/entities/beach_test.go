package entities

import (
	"testing"
	"time"
)

func TestBeach_Multipliers(t *testing.T) {
	b := Beach{}
	if got := b.Multipliers()["small"]; got != 0.7 {
		t.Fatalf("expected default small multiplier 0.7, got %v", got)
	}

	b.SizeMultipliers = map[string]float64{"small": 0.5}
	if got := b.Multipliers()["small"]; got != 0.5 {
		t.Fatalf("published table must win, got %v", got)
	}
}

func TestBeach_AvailableQuantity(t *testing.T) {
	b := Beach{Inventory: []InventoryItem{
		{Size: "small", AvailableQuantity: 4, IsActive: true},
		{Size: "large", AvailableQuantity: 2, IsActive: false},
	}}

	if got := b.AvailableQuantity("small"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := b.AvailableQuantity("large"); got != 0 {
		t.Fatalf("inactive sizes count as zero, got %d", got)
	}
	if got := b.AvailableQuantity("family"); got != 0 {
		t.Fatalf("unknown sizes count as zero, got %d", got)
	}
}

func TestBeach_IsServiceOpen(t *testing.T) {
	at := func(hhmm string) time.Time {
		parsed, err := time.Parse("15:04", hhmm)
		if err != nil {
			t.Fatalf("bad test clock %q: %v", hhmm, err)
		}
		return time.Date(2026, 1, 15, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	}

	t.Run("no window means always open", func(t *testing.T) {
		b := Beach{}
		if !b.IsServiceOpen(at("03:00")) {
			t.Fatalf("expected open")
		}
	})

	t.Run("daytime window", func(t *testing.T) {
		b := Beach{ServiceStartTime: "08:00", ServiceEndTime: "18:00"}
		if !b.IsServiceOpen(at("08:00")) {
			t.Fatalf("start is inclusive")
		}
		if b.IsServiceOpen(at("18:00")) {
			t.Fatalf("end is exclusive")
		}
		if b.IsServiceOpen(at("22:00")) {
			t.Fatalf("expected closed at night")
		}
	})

	t.Run("window wrapping past midnight", func(t *testing.T) {
		b := Beach{ServiceStartTime: "20:00", ServiceEndTime: "02:00"}
		if !b.IsServiceOpen(at("23:00")) {
			t.Fatalf("expected open before midnight")
		}
		if !b.IsServiceOpen(at("01:00")) {
			t.Fatalf("expected open after midnight")
		}
		if b.IsServiceOpen(at("12:00")) {
			t.Fatalf("expected closed at noon")
		}
	})
}
