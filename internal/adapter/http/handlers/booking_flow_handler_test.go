package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func flowRouter(uc *mockFlowUseCase) *gin.Engine {
	h := NewBookingFlowHandler(uc)
	r := gin.New()
	r.POST("/v1/session", h.StartSession)
	r.GET("/v1/session/:session_id/flow", h.GetState)
	r.POST("/v1/session/:session_id/flow/next", h.Next)
	r.POST("/v1/session/:session_id/flow/goto", h.GoTo)
	r.POST("/v1/session/:session_id/flow/reset", h.Reset)
	r.PUT("/v1/session/:session_id/flow/location", h.SetLocation)
	r.PUT("/v1/session/:session_id/flow/booking-type", h.SetBookingType)
	r.PUT("/v1/session/:session_id/flow/duration", h.SetDuration)
	return r
}

func TestBookingFlowHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := new(mockFlowUseCase)
	uc.On("StartSession", mock.Anything).Return(entities.Session{ID: "sess-1"}, nil)
	r := flowRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/v1/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["session_id"] != "sess-1" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestBookingFlowHandler_GetState(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("GetState", mock.Anything, "missing").Return(usecase.FlowState{}, usecase.ErrSessionNotFound)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/session/missing/flow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("renders the flow state", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		draft := entities.NewBookingDraft()
		uc.On("GetState", mock.Anything, "sess-1").Return(usecase.FlowState{
			SessionID:  "sess-1",
			Draft:      draft,
			CanProceed: false,
			Blocked:    usecase.ErrBeachNotSelected.Error(),
		}, nil)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/session/sess-1/flow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["blocked"] != "no beach selected" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBookingFlowHandler_Next(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unmet precondition maps to 409", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("Next", mock.Anything, "sess-1").Return(usecase.FlowState{}, usecase.ErrNoDeliveryLocation)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/flow/next", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBookingFlowHandler_GoTo(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/flow/goto", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("passes the step through", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("GoTo", mock.Anything, "sess-1", entities.StepLocation).Return(usecase.FlowState{SessionID: "sess-1"}, nil)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/flow/goto", bytes.NewBufferString(`{"step":"location"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		uc.AssertExpectations(t)
	})
}

func TestBookingFlowHandler_SetLocation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("outside service area maps to 409", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("SetLocation", mock.Anything, "sess-1", 50.0, 50.0).Return(usecase.FlowState{}, usecase.ErrOutsideServiceArea)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/v1/session/sess-1/flow/location", bytes.NewBufferString(`{"latitude":50,"longitude":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("zero coordinate components are valid input", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("SetLocation", mock.Anything, "sess-1", 5.0, 0.0).Return(usecase.FlowState{SessionID: "sess-1"}, nil)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/v1/session/sess-1/flow/location", bytes.NewBufferString(`{"latitude":5,"longitude":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for a prime-meridian point, got %d: %s", w.Code, w.Body.String())
		}
		uc.AssertExpectations(t)
	})
}

func TestBookingFlowHandler_SetDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("zero hours reach the draft unchanged", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("SetDuration", mock.Anything, "sess-1", 0).Return(usecase.FlowState{SessionID: "sess-1"}, nil)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/v1/session/sess-1/flow/duration", bytes.NewBufferString(`{"hours":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		uc.AssertExpectations(t)
	})
}

func TestBookingFlowHandler_Reset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing body resets with no pre-selections", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("Reset", mock.Anything, "sess-1", entities.ResetOptions{}).Return(usecase.FlowState{SessionID: "sess-1"}, nil)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/flow/reset", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		uc.AssertExpectations(t)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/flow/reset", bytes.NewBufferString(`{"pre_selected_beach":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		uc.AssertNotCalled(t, "Reset", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pre-selections pass through", func(t *testing.T) {
		uc := new(mockFlowUseCase)
		uc.On("Reset", mock.Anything, "sess-1", entities.ResetOptions{
			PreSelectedBeach: "beach-1",
			PreSelectedType:  entities.BookingTypePreBook,
		}).Return(usecase.FlowState{SessionID: "sess-1"}, nil)
		r := flowRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/session/sess-1/flow/reset", bytes.NewBufferString(`{"pre_selected_beach":"beach-1","pre_selected_type":"pre_book"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		uc.AssertExpectations(t)
	})
}

func TestMapFlowError(t *testing.T) {
	if got := mapFlowError(usecase.ErrInvalidSessionID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapFlowError(usecase.ErrSessionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFlowError(usecase.ErrBeachNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFlowError(usecase.ErrOutsideServiceArea); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapFlowError(usecase.ErrQuantityUnavailable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapFlowError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
