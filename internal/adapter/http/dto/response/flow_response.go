package response

import (
	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase"
)

type SizeSelectionResponse struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type BookingDraftResponse struct {
	Step          string                  `json:"step"`
	BeachID       string                  `json:"beach_id,omitempty"`
	BookingType   string                  `json:"booking_type"`
	SelectedSizes []SizeSelectionResponse `json:"selected_sizes"`
	DurationHours int                     `json:"duration_hours"`
	ScheduledDate string                  `json:"scheduled_date,omitempty"`
	ScheduledTime string                  `json:"scheduled_time,omitempty"`
	Latitude      float64                 `json:"latitude"`
	Longitude     float64                 `json:"longitude"`
	PaymentMethod string                  `json:"payment_method"`
	TermsAccepted bool                    `json:"terms_accepted"`
}

type FlowStateResponse struct {
	SessionID  string               `json:"session_id"`
	Draft      BookingDraftResponse `json:"draft"`
	BasePrice  float64              `json:"base_price"`
	TotalPrice float64              `json:"total_price"`
	CanProceed bool                 `json:"can_proceed"`
	Blocked    string               `json:"blocked,omitempty"`
}

func FromFlowState(s usecase.FlowState) FlowStateResponse {
	return FlowStateResponse{
		SessionID:  s.SessionID,
		Draft:      fromDraft(s.Draft),
		BasePrice:  s.BasePrice,
		TotalPrice: s.TotalPrice,
		CanProceed: s.CanProceed,
		Blocked:    s.Blocked,
	}
}

func fromDraft(d entities.BookingDraft) BookingDraftResponse {
	sizes := make([]SizeSelectionResponse, 0, len(d.SelectedSizes))
	for _, s := range d.SelectedSizes {
		sizes = append(sizes, SizeSelectionResponse{Size: s.Size, Quantity: s.Quantity})
	}
	return BookingDraftResponse{
		Step:          string(d.Step),
		BeachID:       d.BeachID,
		BookingType:   string(d.BookingType),
		SelectedSizes: sizes,
		DurationHours: d.DurationHours,
		ScheduledDate: d.ScheduledDate,
		ScheduledTime: d.ScheduledTime,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
		PaymentMethod: string(d.PaymentMethod),
		TermsAccepted: d.TermsAccepted,
	}
}
