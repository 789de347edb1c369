package handlers

import (
	"context"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase"
	"beachrent/internal/usecase/interfaces"

	"github.com/stretchr/testify/mock"
)

type mockFlowUseCase struct {
	mock.Mock
}

func (m *mockFlowUseCase) StartSession(ctx context.Context) (entities.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.Session), args.Error(1)
}

func (m *mockFlowUseCase) GetState(ctx context.Context, sessionID string) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) Next(ctx context.Context, sessionID string) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) Back(ctx context.Context, sessionID string) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) GoTo(ctx context.Context, sessionID string, step entities.BookingStep) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, step)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) Reset(ctx context.Context, sessionID string, opts entities.ResetOptions) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, opts)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetBeach(ctx context.Context, sessionID, beachID string) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, beachID)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetLocation(ctx context.Context, sessionID string, lat, lng float64) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, lat, lng)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetBookingType(ctx context.Context, sessionID string, t entities.BookingType) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, t)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetSchedule(ctx context.Context, sessionID, date, timeOfDay string) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, date, timeOfDay)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) ToggleSize(ctx context.Context, sessionID, size string) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, size)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetQuantity(ctx context.Context, sessionID, size string, quantity int) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, size, quantity)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetDuration(ctx context.Context, sessionID string, hours int) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, hours)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetPaymentMethod(ctx context.Context, sessionID string, pm entities.PaymentMethod) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, pm)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

func (m *mockFlowUseCase) SetTerms(ctx context.Context, sessionID string, accepted bool) (usecase.FlowState, error) {
	args := m.Called(ctx, sessionID, accepted)
	return args.Get(0).(usecase.FlowState), args.Error(1)
}

type mockBeachUseCase struct {
	mock.Mock
}

func (m *mockBeachUseCase) List(ctx context.Context) ([]entities.Beach, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Beach), args.Error(1)
}

func (m *mockBeachUseCase) GetByID(ctx context.Context, id string) (entities.Beach, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entities.Beach), args.Error(1)
}

func (m *mockBeachUseCase) Locate(ctx context.Context, lat, lng float64) (entities.Beach, error) {
	args := m.Called(ctx, lat, lng)
	return args.Get(0).(entities.Beach), args.Error(1)
}

type mockOrderUseCase struct {
	mock.Mock
}

func (m *mockOrderUseCase) ListMine(ctx context.Context, sessionID string) ([]entities.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *mockOrderUseCase) ListActive(ctx context.Context, sessionID string) ([]entities.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *mockOrderUseCase) GetByID(ctx context.Context, sessionID, orderID string) (entities.Order, error) {
	args := m.Called(ctx, sessionID, orderID)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderUseCase) Submit(ctx context.Context, sessionID string) (entities.Order, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(entities.Order), args.Error(1)
}

func (m *mockOrderUseCase) Extend(ctx context.Context, sessionID, orderID string, additionalHours int) (entities.Order, error) {
	args := m.Called(ctx, sessionID, orderID, additionalHours)
	return args.Get(0).(entities.Order), args.Error(1)
}

type mockPaymentUseCase struct {
	mock.Mock
}

func (m *mockPaymentUseCase) CreateIntent(ctx context.Context, sessionID string) (interfaces.PaymentIntent, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(interfaces.PaymentIntent), args.Error(1)
}

func (m *mockPaymentUseCase) RecordResult(ctx context.Context, sessionID, status, message string) error {
	return m.Called(ctx, sessionID, status, message).Error(0)
}

var (
	_ usecase.IBookingFlowUseCase = (*mockFlowUseCase)(nil)
	_ usecase.IBeachUseCase       = (*mockBeachUseCase)(nil)
	_ usecase.IOrderUseCase       = (*mockOrderUseCase)(nil)
	_ usecase.IPaymentUseCase     = (*mockPaymentUseCase)(nil)
)
