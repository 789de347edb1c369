package entities

import "time"

// OrderStatus mirrors the lifecycle owned by the platform. This tier never
// transitions an order itself; statuses arrive read-only from the API.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is one rented size category inside an order payload.
type OrderItem struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// OrderPayload is the request body for the platform's order-creation
// endpoint. Reference is a client-generated id the platform echoes back for
// reconciliation.
type OrderPayload struct {
	Reference     string      `json:"reference,omitempty"`
	BeachID       string      `json:"beach_id"`
	BookingType   string      `json:"booking_type"`
	Items         []OrderItem `json:"items"`
	DurationHours int         `json:"duration_hours"`
	Latitude      float64     `json:"latitude"`
	Longitude     float64     `json:"longitude"`
	PaymentMethod string      `json:"payment_method"`
	ScheduledFor  string      `json:"scheduled_for,omitempty"`
}

// Order is an order as served by the platform API (camelCase contract).
//
// The countdown timestamps may be absent: CountdownStartedAt defaults to
// DeliveredAt and CountdownEndsAt to DeliveredAt plus the rental duration.
type Order struct {
	ID                 string      `json:"id"`
	Reference          string      `json:"reference,omitempty"`
	BeachID            string      `json:"beachId"`
	Status             OrderStatus `json:"status"`
	BookingType        string      `json:"bookingType"`
	Items              []OrderItem `json:"items"`
	DurationHours      int         `json:"durationHours"`
	TotalPrice         float64     `json:"totalPrice"`
	PaymentMethod      string      `json:"paymentMethod"`
	Latitude           float64     `json:"latitude"`
	Longitude          float64     `json:"longitude"`
	ScheduledFor       *time.Time  `json:"scheduledFor,omitempty"`
	DeliveredAt        *time.Time  `json:"deliveredAt,omitempty"`
	CountdownStartedAt *time.Time  `json:"countdownStartedAt,omitempty"`
	CountdownEndsAt    *time.Time  `json:"countdownEndsAt,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
}
