package handlers

import (
	"errors"
	"net/http"

	request "beachrent/internal/adapter/http/dto/request"
	response "beachrent/internal/adapter/http/dto/response"
	"beachrent/internal/usecase"
	"beachrent/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateIntent prices the session draft and returns a provider payment
// intent for the device to confirm.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	intent, err := h.usecase.CreateIntent(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentIntent(intent))
}

// RecordResult receives the device-side payment outcome. A user-cancelled
// payment is acknowledged silently with 204, same as success.
func (h *PaymentHandler) RecordResult(c *gin.Context) {
	var payload request.PaymentResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	err := h.usecase.RecordResult(c.Request.Context(), c.Param("session_id"), payload.Status, payload.Message)
	if err != nil && !errors.Is(err, usecase.ErrPaymentCancelled) {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBeachNotFound):
		return pkg.NewDomainErrorSimple("BEACH_NOT_FOUND", "Beach not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIGURED", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDraftNotPayable):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_PAYABLE", "Draft has no payable amount", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongPaymentMethod):
		return pkg.NewDomainErrorSimple("WRONG_PAYMENT_METHOD", "Draft is not paying by card", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
