package entities

import "time"

// DefaultSizeMultipliers is the fallback pricing multiplier table applied
// when a beach does not publish its own.
var DefaultSizeMultipliers = map[string]float64{
	"small":  0.7,
	"medium": 1.0,
	"large":  1.4,
	"family": 1.8,
}

// InventoryItem is one size category offered at a beach, as served by the
// platform API.
type InventoryItem struct {
	Size              string `json:"size"`
	AvailableQuantity int    `json:"availableQuantity"`
	IsActive          bool   `json:"isActive"`
}

// Beach is a service location returned by the platform API. The JSON tags
// follow the platform contract, which uses camelCase.
//
// PolygonBoundary delimits the delivery area; ServiceStartTime/EndTime are
// local wall-clock "HH:MM" strings.
type Beach struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	PolygonBoundary  Polygon            `json:"polygonBoundary,omitempty"`
	ServiceStartTime string             `json:"serviceStartTime,omitempty"`
	ServiceEndTime   string             `json:"serviceEndTime,omitempty"`
	HourlyRate       float64            `json:"hourlyRate"`
	SizeMultipliers  map[string]float64 `json:"sizeMultipliers,omitempty"`
	Inventory        []InventoryItem    `json:"inventory,omitempty"`
}

// Multipliers returns the beach's own multiplier table when published,
// otherwise the defaults.
func (b Beach) Multipliers() map[string]float64 {
	if len(b.SizeMultipliers) > 0 {
		return b.SizeMultipliers
	}
	return DefaultSizeMultipliers
}

// AvailableQuantity returns the bookable quantity for a size category.
// Inactive or unknown sizes count as zero.
func (b Beach) AvailableQuantity(size string) int {
	for _, item := range b.Inventory {
		if item.Size == size {
			if !item.IsActive {
				return 0
			}
			return item.AvailableQuantity
		}
	}
	return 0
}

// IsServiceOpen reports whether now falls inside the beach's service window.
// Missing window bounds mean always open. "HH:MM" strings compare
// lexicographically, which matches chronological order for zero-padded
// times; a window whose end precedes its start wraps past midnight.
func (b Beach) IsServiceOpen(now time.Time) bool {
	if b.ServiceStartTime == "" || b.ServiceEndTime == "" {
		return true
	}
	clock := now.Format("15:04")
	if b.ServiceStartTime <= b.ServiceEndTime {
		return clock >= b.ServiceStartTime && clock < b.ServiceEndTime
	}
	return clock >= b.ServiceStartTime || clock < b.ServiceEndTime
}
