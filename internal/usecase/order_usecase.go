package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidExtension = errors.New("additional hours must be positive")
)

// IOrderUseCase wraps the platform's order endpoints for a device session.
// The platform is the source of truth; the session's persisted order slice
// is only a local mirror refreshed on each successful read.

type IOrderUseCase interface {
	ListMine(ctx context.Context, sessionID string) ([]entities.Order, error)
	ListActive(ctx context.Context, sessionID string) ([]entities.Order, error)
	GetByID(ctx context.Context, sessionID, orderID string) (entities.Order, error)
	Submit(ctx context.Context, sessionID string) (entities.Order, error)
	Extend(ctx context.Context, sessionID, orderID string, additionalHours int) (entities.Order, error)
}

type OrderUseCase struct {
	sessions interfaces.ISessionRepository
	orders   interfaces.IOrderService
	beaches  IBeachUseCase
	flow     *BookingFlowUseCase
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(sessions interfaces.ISessionRepository, orders interfaces.IOrderService, beaches IBeachUseCase, flow *BookingFlowUseCase) *OrderUseCase {
	return &OrderUseCase{sessions: sessions, orders: orders, beaches: beaches, flow: flow}
}

func (u *OrderUseCase) ListMine(ctx context.Context, sessionID string) ([]entities.Order, error) {
	s, token, err := u.authedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.ListMine(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.SaveOrders(ctx, s.ID, orders); err != nil {
		log.Printf("[order][usecase] order slice persist failed session_id=%s err=%v", s.ID, err)
	}
	return orders, nil
}

func (u *OrderUseCase) ListActive(ctx context.Context, sessionID string) ([]entities.Order, error) {
	_, token, err := u.authedSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.orders.ListActive(ctx, token)
}

func (u *OrderUseCase) GetByID(ctx context.Context, sessionID, orderID string) (entities.Order, error) {
	_, token, err := u.authedSession(ctx, sessionID)
	if err != nil {
		return entities.Order{}, err
	}

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetOrder(ctx, token, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// Submit runs the full submission gate over the session's draft, sends the
// order to the platform and, on success, resets the draft and mirrors the
// new order into the session slice.
func (u *OrderUseCase) Submit(ctx context.Context, sessionID string) (entities.Order, error) {
	s, token, err := u.authedSession(ctx, sessionID)
	if err != nil {
		return entities.Order{}, err
	}

	beach := entities.Beach{}
	if s.Draft.BeachID != "" {
		beach, err = u.beaches.GetByID(ctx, s.Draft.BeachID)
		if err != nil {
			return entities.Order{}, err
		}
	}
	if err := u.flow.ValidateForSubmission(s.Draft, beach); err != nil {
		return entities.Order{}, err
	}

	payload := s.Draft.OrderPayload()
	payload.Reference = uuid.NewString()

	log.Printf("[order][usecase] submit start session_id=%s beach_id=%s reference=%s", s.ID, payload.BeachID, payload.Reference)
	created, err := u.orders.CreateOrder(ctx, token, payload)
	if err != nil {
		log.Printf("[order][usecase] submit failed session_id=%s reference=%s err=%v", s.ID, payload.Reference, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] submit success session_id=%s order_id=%s", s.ID, created.ID)

	s.Draft.Reset(entities.ResetOptions{})
	if err := u.sessions.SaveDraft(ctx, s.ID, s.Draft); err != nil {
		log.Printf("[order][usecase] draft reset persist failed session_id=%s err=%v", s.ID, err)
	}
	if err := u.sessions.SaveOrders(ctx, s.ID, append(s.Orders, created)); err != nil {
		log.Printf("[order][usecase] order slice persist failed session_id=%s err=%v", s.ID, err)
	}
	return created, nil
}

func (u *OrderUseCase) Extend(ctx context.Context, sessionID, orderID string, additionalHours int) (entities.Order, error) {
	_, token, err := u.authedSession(ctx, sessionID)
	if err != nil {
		return entities.Order{}, err
	}

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if additionalHours < 1 {
		return entities.Order{}, ErrInvalidExtension
	}

	o, err := u.orders.ExtendOrder(ctx, token, orderID, additionalHours)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) authedSession(ctx context.Context, sessionID string) (entities.Session, string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, "", ErrInvalidSessionID
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, "", err
	}
	if s.ID == "" {
		return entities.Session{}, "", ErrSessionNotFound
	}
	if !s.Auth.IsAuthenticated() {
		return entities.Session{}, "", ErrNotAuthenticated
	}
	return s, s.Auth.Token, nil
}
