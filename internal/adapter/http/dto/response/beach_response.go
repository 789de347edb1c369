package response

import "beachrent/internal/domain/entities"

type InventoryItemResponse struct {
	Size              string `json:"size"`
	AvailableQuantity int    `json:"available_quantity"`
	IsActive          bool   `json:"is_active"`
}

type BeachResponse struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	ServiceStartTime string                  `json:"service_start_time,omitempty"`
	ServiceEndTime   string                  `json:"service_end_time,omitempty"`
	HourlyRate       float64                 `json:"hourly_rate"`
	SizeMultipliers  map[string]float64      `json:"size_multipliers"`
	Inventory        []InventoryItemResponse `json:"inventory"`
}

func FromBeach(b entities.Beach) BeachResponse {
	inventory := make([]InventoryItemResponse, 0, len(b.Inventory))
	for _, item := range b.Inventory {
		inventory = append(inventory, InventoryItemResponse{
			Size:              item.Size,
			AvailableQuantity: item.AvailableQuantity,
			IsActive:          item.IsActive,
		})
	}
	return BeachResponse{
		ID:               b.ID,
		Name:             b.Name,
		ServiceStartTime: b.ServiceStartTime,
		ServiceEndTime:   b.ServiceEndTime,
		HourlyRate:       b.HourlyRate,
		SizeMultipliers:  b.Multipliers(),
		Inventory:        inventory,
	}
}

func FromBeaches(beaches []entities.Beach) []BeachResponse {
	out := make([]BeachResponse, 0, len(beaches))
	for _, b := range beaches {
		out = append(out, FromBeach(b))
	}
	return out
}
