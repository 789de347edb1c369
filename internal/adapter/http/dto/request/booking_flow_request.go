package request

import "strings"

type ResetFlowRequest struct {
	PreSelectedBeach string `json:"pre_selected_beach"`
	PreSelectedType  string `json:"pre_selected_type"`
}

type GoToStepRequest struct {
	Step string `json:"step" binding:"required"`
}

type SetBeachRequest struct {
	BeachID string `json:"beach_id" binding:"required"`
}

func (r SetBeachRequest) ResolveBeachID() string {
	return strings.TrimSpace(r.BeachID)
}

// SetLocationRequest carries no binding rules on the coordinates: zero is a
// legal value for either axis (equator, prime meridian) and only the exact
// (0,0) pair means "no location", which the use case layer decides.
type SetLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SetBookingTypeRequest struct {
	BookingType string `json:"booking_type" binding:"required"`
}

type SetScheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type ToggleSizeRequest struct {
	Size string `json:"size" binding:"required"`
}

type SetQuantityRequest struct {
	Size     string `json:"size" binding:"required"`
	Quantity int    `json:"quantity"`
}

// Hours is unbound so a non-positive value reaches the draft, which ignores
// it instead of erroring.
type SetDurationRequest struct {
	Hours int `json:"hours"`
}

type SetPaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type SetTermsRequest struct {
	Accepted bool `json:"accepted"`
}
