package interfaces

import (
	"context"

	"beachrent/internal/domain/entities"
)

// ISessionRepository abstracts key-value persistence for device-session
// state. Each slice (auth, booking draft, legacy order list) is saved
// independently so state is serialized on change, not on shutdown.
//
// GetByID returns a zero-ID session when none exists.

type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	SaveAuth(ctx context.Context, id string, auth entities.AuthState) error
	SaveDraft(ctx context.Context, id string, draft entities.BookingDraft) error
	SaveOrders(ctx context.Context, id string, orders []entities.Order) error
}
