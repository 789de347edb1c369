package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"
)

var (
	ErrPaymentNotConfigured = errors.New("payment gateway not configured")
	ErrDraftNotPayable      = errors.New("draft has no payable amount")
	ErrWrongPaymentMethod   = errors.New("draft is not paying by card")

	// ErrPaymentCancelled marks a user-cancelled payment sheet. Callers
	// treat it as silent: no alert, just the on-cancel path.
	ErrPaymentCancelled = errors.New("payment cancelled by user")
)

// IPaymentUseCase creates payment intents for the session's current draft
// and records the payment-sheet outcome reported back by the device.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, sessionID string) (interfaces.PaymentIntent, error)
	RecordResult(ctx context.Context, sessionID, status, message string) error
}

type PaymentUseCase struct {
	sessions interfaces.ISessionRepository
	beaches  IBeachUseCase
	gateway  interfaces.IPaymentGateway
	currency string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(sessions interfaces.ISessionRepository, beaches IBeachUseCase, gateway interfaces.IPaymentGateway, currency string) *PaymentUseCase {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentUseCase{sessions: sessions, beaches: beaches, gateway: gateway, currency: currency}
}

// CreateIntent prices the session's draft against current beach data and
// asks the provider for an intent over that amount. The amount is always
// recomputed server-side here, never taken from the device.
func (u *PaymentUseCase) CreateIntent(ctx context.Context, sessionID string) (interfaces.PaymentIntent, error) {
	if u.gateway == nil {
		return interfaces.PaymentIntent{}, ErrPaymentNotConfigured
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return interfaces.PaymentIntent{}, ErrInvalidSessionID
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return interfaces.PaymentIntent{}, err
	}
	if s.ID == "" {
		return interfaces.PaymentIntent{}, ErrSessionNotFound
	}

	if s.Draft.PaymentMethod != entities.PaymentMethodStripe {
		return interfaces.PaymentIntent{}, ErrWrongPaymentMethod
	}
	if s.Draft.BeachID == "" {
		return interfaces.PaymentIntent{}, ErrBeachNotSelected
	}

	beach, err := u.beaches.GetByID(ctx, s.Draft.BeachID)
	if err != nil {
		return interfaces.PaymentIntent{}, err
	}

	total := s.Draft.TotalPrice(beach.HourlyRate, beach.Multipliers())
	if total <= 0 {
		return interfaces.PaymentIntent{}, ErrDraftNotPayable
	}
	amountCents := int64(math.Round(total * 100))

	log.Printf("[payment][usecase] intent start session_id=%s amount_cents=%d currency=%s", s.ID, amountCents, u.currency)
	intent, err := u.gateway.CreatePaymentIntent(ctx, amountCents, u.currency, map[string]string{
		"session_id":   s.ID,
		"beach_id":     s.Draft.BeachID,
		"booking_type": string(s.Draft.BookingType),
	})
	if err != nil {
		log.Printf("[payment][usecase] intent failed session_id=%s err=%v", s.ID, err)
		return interfaces.PaymentIntent{}, err
	}
	log.Printf("[payment][usecase] intent success session_id=%s intent_id=%s status=%s", s.ID, intent.ID, intent.Status)
	return intent, nil
}

// RecordResult takes the payment-sheet outcome. Cancellation is silent by
// contract; failures carry the provider's message back to the caller.
func (u *PaymentUseCase) RecordResult(ctx context.Context, sessionID, status, message string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	switch strings.ToLower(strings.TrimSpace(status)) {
	case "succeeded", "completed":
		log.Printf("[payment][usecase] sheet succeeded session_id=%s", sessionID)
		return nil
	case "canceled", "cancelled":
		log.Printf("[payment][usecase] sheet cancelled session_id=%s", sessionID)
		return ErrPaymentCancelled
	default:
		if message == "" {
			message = "payment failed"
		}
		log.Printf("[payment][usecase] sheet failed session_id=%s message=%q", sessionID, message)
		return errors.New(message)
	}
}
