package interfaces

import "context"

// PaymentIntent is the provider handle the payment sheet consumes on the
// device. ClientSecret is returned to the caller exactly once.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// IPaymentGateway abstracts the external payment provider (Stripe).
type IPaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (PaymentIntent, error)
}
