package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func orderRouter(uc *mockOrderUseCase) *gin.Engine {
	h := NewOrderHandler(uc, usecase.NewCountdownTicker(time.Millisecond))
	r := gin.New()
	r.GET("/v1/session/:session_id/orders", h.ListMine)
	r.POST("/v1/session/:session_id/orders", h.SubmitOrder)
	r.GET("/v1/session/:session_id/orders/:order_id/countdown", h.Countdown)
	return r
}

func TestOrderHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unauthenticated maps to 401", func(t *testing.T) {
		uc := new(mockOrderUseCase)
		uc.On("ListMine", mock.Anything, "sess-1").Return(nil, usecase.ErrNotAuthenticated)
		r := orderRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/session/sess-1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc := new(mockOrderUseCase)
		uc.On("ListMine", mock.Anything, "sess-1").Return([]entities.Order{{ID: "order-1"}}, nil)
		r := orderRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/session/sess-1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "order-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_SubmitOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gate failure maps to 409", func(t *testing.T) {
		uc := new(mockOrderUseCase)
		uc.On("Submit", mock.Anything, "sess-1").Return(entities.Order{}, usecase.ErrTermsNotAccepted)
		r := orderRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created order comes back as 201", func(t *testing.T) {
		uc := new(mockOrderUseCase)
		uc.On("Submit", mock.Anything, "sess-1").Return(entities.Order{ID: "order-1"}, nil)
		r := orderRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CountdownSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	delivered := time.Now().Add(-30 * time.Minute)
	order := entities.Order{ID: "order-1", DurationHours: 1, DeliveredAt: &delivered}

	uc := new(mockOrderUseCase)
	uc.On("GetByID", mock.Anything, "sess-1", "order-1").Return(order, nil)
	r := orderRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/session/sess-1/orders/order-1/countdown?stream=false", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	remaining, ok := body["remaining_ms"].(float64)
	if !ok || remaining <= 0 {
		t.Fatalf("expected positive remaining_ms: %s", w.Body.String())
	}
	if body["low_time"] != false {
		t.Fatalf("no threshold should trip at 30min: %s", w.Body.String())
	}
}

func TestOrderHandler_CountdownUnknownOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := new(mockOrderUseCase)
	uc.On("GetByID", mock.Anything, "sess-1", "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)
	r := orderRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/v1/session/sess-1/orders/missing/countdown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
