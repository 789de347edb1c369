package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beachrent/internal/usecase"
	"beachrent/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func paymentRouter(uc *mockPaymentUseCase) *gin.Engine {
	h := NewPaymentHandler(uc)
	r := gin.New()
	r.POST("/v1/session/:session_id/payments/intent", h.CreateIntent)
	r.POST("/v1/session/:session_id/payments/result", h.RecordResult)
	return r
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not configured maps to 503", func(t *testing.T) {
		uc := new(mockPaymentUseCase)
		uc.On("CreateIntent", mock.Anything, "sess-1").Return(interfaces.PaymentIntent{}, usecase.ErrPaymentNotConfigured)
		r := paymentRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/payments/intent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("intent comes back as 201", func(t *testing.T) {
		uc := new(mockPaymentUseCase)
		uc.On("CreateIntent", mock.Anything, "sess-1").
			Return(interfaces.PaymentIntent{ID: "pi_1", ClientSecret: "secret", Status: "requires_payment_method"}, nil)
		r := paymentRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/payments/intent", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["client_secret"] != "secret" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_RecordResult(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(r *gin.Engine, payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/payments/result", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		uc := new(mockPaymentUseCase)
		r := paymentRouter(uc)

		if w := post(r, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success is 204", func(t *testing.T) {
		uc := new(mockPaymentUseCase)
		uc.On("RecordResult", mock.Anything, "sess-1", "succeeded", "").Return(nil)
		r := paymentRouter(uc)

		if w := post(r, `{"status":"succeeded"}`); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("cancellation stays silent", func(t *testing.T) {
		uc := new(mockPaymentUseCase)
		uc.On("RecordResult", mock.Anything, "sess-1", "canceled", "").Return(usecase.ErrPaymentCancelled)
		r := paymentRouter(uc)

		if w := post(r, `{"status":"canceled"}`); w.Code != http.StatusNoContent {
			t.Fatalf("cancellation must not surface an error, got %d", w.Code)
		}
	})

	t.Run("failure surfaces as 500", func(t *testing.T) {
		uc := new(mockPaymentUseCase)
		uc.On("RecordResult", mock.Anything, "sess-1", "failed", "card declined").Return(errors.New("card declined"))
		r := paymentRouter(uc)

		if w := post(r, `{"status":"failed","message":"card declined"}`); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
