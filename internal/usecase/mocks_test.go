package usecase

import (
	"context"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"

	"github.com/stretchr/testify/mock"
)

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(entities.Session), args.Error(1)
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Session), args.Error(1)
}

func (m *mockSessionRepository) SaveAuth(ctx context.Context, id string, auth entities.AuthState) error {
	return m.Called(ctx, id, auth).Error(0)
}

func (m *mockSessionRepository) SaveDraft(ctx context.Context, id string, draft entities.BookingDraft) error {
	return m.Called(ctx, id, draft).Error(0)
}

func (m *mockSessionRepository) SaveOrders(ctx context.Context, id string, orders []entities.Order) error {
	return m.Called(ctx, id, orders).Error(0)
}

type mockBeachDirectory struct {
	mock.Mock
}

func (m *mockBeachDirectory) ListBeaches(ctx context.Context) ([]entities.Beach, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Beach), args.Error(1)
}

func (m *mockBeachDirectory) GetBeach(ctx context.Context, id string) (entities.Beach, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Beach), args.Error(1)
}

type mockBeachCache struct {
	mock.Mock
}

func (m *mockBeachCache) GetBeaches(ctx context.Context) ([]entities.Beach, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Beach), args.Error(1)
}

func (m *mockBeachCache) SetBeaches(ctx context.Context, beaches []entities.Beach) error {
	return m.Called(ctx, beaches).Error(0)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) ListMine(ctx context.Context, token string) ([]entities.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *mockOrderService) ListActive(ctx context.Context, token string) ([]entities.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *mockOrderService) GetOrder(ctx context.Context, token, id string) (entities.Order, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, token string, payload entities.OrderPayload) (entities.Order, error) {
	args := m.Called(ctx, token, payload)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderService) ExtendOrder(ctx context.Context, token, id string, additionalHours int) (entities.Order, error) {
	args := m.Called(ctx, token, id, additionalHours)
	return args.Get(0).(entities.Order), args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (entities.AuthState, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(entities.AuthState), args.Error(1)
}

func (m *mockAuthService) Signup(ctx context.Context, input entities.SignupInput) (entities.AuthState, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(entities.AuthState), args.Error(1)
}

func (m *mockAuthService) SendOTP(ctx context.Context, phone string) error {
	return m.Called(ctx, phone).Error(0)
}

func (m *mockAuthService) VerifyOTP(ctx context.Context, phone, code string) (entities.AuthState, error) {
	args := m.Called(ctx, phone, code)
	return args.Get(0).(entities.AuthState), args.Error(1)
}

func (m *mockAuthService) GetProfile(ctx context.Context, token string) (entities.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(entities.User), args.Error(1)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, token string, patch entities.ProfilePatch) (entities.User, error) {
	args := m.Called(ctx, token, patch)
	return args.Get(0).(entities.User), args.Error(1)
}

type mockPaymentGateway struct {
	mock.Mock
}

func (m *mockPaymentGateway) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (interfaces.PaymentIntent, error) {
	args := m.Called(ctx, amountCents, currency, metadata)
	return args.Get(0).(interfaces.PaymentIntent), args.Error(1)
}

var (
	_ interfaces.ISessionRepository = (*mockSessionRepository)(nil)
	_ interfaces.IBeachDirectory    = (*mockBeachDirectory)(nil)
	_ interfaces.IBeachCache        = (*mockBeachCache)(nil)
	_ interfaces.IOrderService      = (*mockOrderService)(nil)
	_ interfaces.IAuthService       = (*mockAuthService)(nil)
	_ interfaces.IPaymentGateway    = (*mockPaymentGateway)(nil)
)
