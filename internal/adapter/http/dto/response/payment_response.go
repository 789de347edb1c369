package response

import "beachrent/internal/usecase/interfaces"

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

func FromPaymentIntent(pi interfaces.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       pi.Status,
	}
}
