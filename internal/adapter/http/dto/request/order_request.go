package request

// AdditionalHours is unbound so the use case owns the non-positive check and
// its error message.
type ExtendOrderRequest struct {
	AdditionalHours int `json:"additional_hours"`
}

// LocateBeachRequest leaves the coordinates unbound because zero is a legal
// value for either axis; only the exact (0,0) pair means "no location".
type LocateBeachRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PaymentResultRequest struct {
	Status  string `json:"status" binding:"required"`
	Message string `json:"message"`
}
