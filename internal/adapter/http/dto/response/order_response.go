package response

import (
	"time"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase"
)

type OrderItemResponse struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	ID                 string              `json:"id"`
	Reference          string              `json:"reference,omitempty"`
	BeachID            string              `json:"beach_id"`
	Status             string              `json:"status"`
	BookingType        string              `json:"booking_type"`
	Items              []OrderItemResponse `json:"items"`
	DurationHours      int                 `json:"duration_hours"`
	TotalPrice         float64             `json:"total_price"`
	PaymentMethod      string              `json:"payment_method"`
	ScheduledFor       *time.Time          `json:"scheduled_for,omitempty"`
	DeliveredAt        *time.Time          `json:"delivered_at,omitempty"`
	CountdownStartedAt *time.Time          `json:"countdown_started_at,omitempty"`
	CountdownEndsAt    *time.Time          `json:"countdown_ends_at,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{Size: item.Size, Quantity: item.Quantity})
	}
	return OrderResponse{
		ID:                 o.ID,
		Reference:          o.Reference,
		BeachID:            o.BeachID,
		Status:             string(o.Status),
		BookingType:        o.BookingType,
		Items:              items,
		DurationHours:      o.DurationHours,
		TotalPrice:         o.TotalPrice,
		PaymentMethod:      o.PaymentMethod,
		ScheduledFor:       o.ScheduledFor,
		DeliveredAt:        o.DeliveredAt,
		CountdownStartedAt: o.CountdownStartedAt,
		CountdownEndsAt:    o.CountdownEndsAt,
		CreatedAt:          o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type CountdownResponse struct {
	RemainingMs     int64   `json:"remaining_ms"`
	ElapsedFraction float64 `json:"elapsed_fraction"`
	LowTime         bool    `json:"low_time"`
	VeryLowTime     bool    `json:"very_low_time"`
}

func FromCountdown(c usecase.Countdown) CountdownResponse {
	return CountdownResponse{
		RemainingMs:     c.RemainingMs,
		ElapsedFraction: c.ElapsedFraction,
		LowTime:         c.LowTime,
		VeryLowTime:     c.VeryLowTime,
	}
}
