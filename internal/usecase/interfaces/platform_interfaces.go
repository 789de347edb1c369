package interfaces

import (
	"context"

	"beachrent/internal/domain/entities"
)

// The platform interfaces wrap the remote rental API. All business logic
// (pricing authority, order lifecycle, inventory, auth) lives behind them;
// this tier only calls and renders.

// IBeachDirectory serves the beach catalog.
type IBeachDirectory interface {
	ListBeaches(ctx context.Context) ([]entities.Beach, error)
	GetBeach(ctx context.Context, id string) (entities.Beach, error)
}

// IOrderService is the order lifecycle as seen from the client: create,
// read, extend. Status transitions are server-driven.
type IOrderService interface {
	ListMine(ctx context.Context, token string) ([]entities.Order, error)
	ListActive(ctx context.Context, token string) ([]entities.Order, error)
	GetOrder(ctx context.Context, token, id string) (entities.Order, error)
	CreateOrder(ctx context.Context, token string, payload entities.OrderPayload) (entities.Order, error)
	ExtendOrder(ctx context.Context, token, id string, additionalHours int) (entities.Order, error)
}

// IAuthService covers login, signup, OTP and profile operations.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (entities.AuthState, error)
	Signup(ctx context.Context, input entities.SignupInput) (entities.AuthState, error)
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (entities.AuthState, error)
	GetProfile(ctx context.Context, token string) (entities.User, error)
	UpdateProfile(ctx context.Context, token string, patch entities.ProfilePatch) (entities.User, error)
}
