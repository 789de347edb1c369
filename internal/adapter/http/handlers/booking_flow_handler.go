package handlers

import (
	"errors"
	"io"
	"net/http"

	request "beachrent/internal/adapter/http/dto/request"
	response "beachrent/internal/adapter/http/dto/response"
	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase"
	"beachrent/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFlowPayload = pkg.NewDomainErrorSimple("INVALID_FLOW_INPUT", "Invalid booking flow payload", http.StatusBadRequest)
)

// BookingFlowHandler exposes the booking wizard over HTTP. Each endpoint
// mutates the session's draft through the use case and returns the resulting
// flow state, so the device can render from the response alone.

type BookingFlowHandler struct {
	usecase usecase.IBookingFlowUseCase
}

func NewBookingFlowHandler(uc usecase.IBookingFlowUseCase) *BookingFlowHandler {
	return &BookingFlowHandler{usecase: uc}
}

// StartSession creates a fresh device session with an empty draft.
func (h *BookingFlowHandler) StartSession(c *gin.Context) {
	s, err := h.usecase.StartSession(c.Request.Context())
	if err != nil {
		appErr := mapFlowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.SessionResponse{
		SessionID:     s.ID,
		Authenticated: s.Auth.IsAuthenticated(),
	})
}

func (h *BookingFlowHandler) GetState(c *gin.Context) {
	h.respondState(c, http.StatusOK)(h.usecase.GetState(c.Request.Context(), c.Param("session_id")))
}

func (h *BookingFlowHandler) Next(c *gin.Context) {
	h.respondState(c, http.StatusOK)(h.usecase.Next(c.Request.Context(), c.Param("session_id")))
}

func (h *BookingFlowHandler) Back(c *gin.Context) {
	h.respondState(c, http.StatusOK)(h.usecase.Back(c.Request.Context(), c.Param("session_id")))
}

func (h *BookingFlowHandler) GoTo(c *gin.Context) {
	var payload request.GoToStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.GoTo(c.Request.Context(), c.Param("session_id"), entities.BookingStep(payload.Step)))
}

func (h *BookingFlowHandler) Reset(c *gin.Context) {
	// The reset body is optional; pre-selections only arrive on deep links.
	// A missing body means a plain reset, but a present malformed body is
	// rejected so a mistyped pre-selection is not silently dropped.
	var payload request.ResetFlowRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	opts := entities.ResetOptions{
		PreSelectedBeach: payload.PreSelectedBeach,
		PreSelectedType:  entities.BookingType(payload.PreSelectedType),
	}
	h.respondState(c, http.StatusOK)(h.usecase.Reset(c.Request.Context(), c.Param("session_id"), opts))
}

func (h *BookingFlowHandler) SetBeach(c *gin.Context) {
	var payload request.SetBeachRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetBeach(c.Request.Context(), c.Param("session_id"), payload.ResolveBeachID()))
}

func (h *BookingFlowHandler) SetLocation(c *gin.Context) {
	var payload request.SetLocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetLocation(c.Request.Context(), c.Param("session_id"), payload.Latitude, payload.Longitude))
}

func (h *BookingFlowHandler) SetBookingType(c *gin.Context) {
	var payload request.SetBookingTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetBookingType(c.Request.Context(), c.Param("session_id"), entities.BookingType(payload.BookingType)))
}

func (h *BookingFlowHandler) SetSchedule(c *gin.Context) {
	var payload request.SetScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetSchedule(c.Request.Context(), c.Param("session_id"), payload.Date, payload.Time))
}

func (h *BookingFlowHandler) ToggleSize(c *gin.Context) {
	var payload request.ToggleSizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.ToggleSize(c.Request.Context(), c.Param("session_id"), payload.Size))
}

func (h *BookingFlowHandler) SetQuantity(c *gin.Context) {
	var payload request.SetQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetQuantity(c.Request.Context(), c.Param("session_id"), payload.Size, payload.Quantity))
}

func (h *BookingFlowHandler) SetDuration(c *gin.Context) {
	var payload request.SetDurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetDuration(c.Request.Context(), c.Param("session_id"), payload.Hours))
}

func (h *BookingFlowHandler) SetPaymentMethod(c *gin.Context) {
	var payload request.SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetPaymentMethod(c.Request.Context(), c.Param("session_id"), entities.PaymentMethod(payload.Method)))
}

func (h *BookingFlowHandler) SetTerms(c *gin.Context) {
	var payload request.SetTermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFlowPayload.HTTPStatus, errInvalidFlowPayload.ToHTTPError())
		return
	}

	h.respondState(c, http.StatusOK)(h.usecase.SetTerms(c.Request.Context(), c.Param("session_id"), payload.Accepted))
}

func (h *BookingFlowHandler) respondState(c *gin.Context, status int) func(usecase.FlowState, error) {
	return func(state usecase.FlowState, err error) {
		if err != nil {
			appErr := mapFlowError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(status, response.FromFlowState(state))
	}
}

func mapFlowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrUnknownStep), errors.Is(err, usecase.ErrInvalidDuration):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBeachNotFound):
		return pkg.NewDomainErrorSimple("BEACH_NOT_FOUND", "Beach not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutsideServiceArea):
		return pkg.NewDomainErrorSimple("OUTSIDE_SERVICE_AREA", "Location is outside the beach service area", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceClosed):
		return pkg.NewDomainErrorSimple("SERVICE_CLOSED", "Beach is outside service hours", http.StatusConflict)
	case errors.Is(err, usecase.ErrBeachNotSelected),
		errors.Is(err, usecase.ErrNoDeliveryLocation),
		errors.Is(err, usecase.ErrNoSizesSelected),
		errors.Is(err, usecase.ErrScheduleRequired),
		errors.Is(err, usecase.ErrTermsNotAccepted):
		return pkg.NewDomainErrorSimple("FLOW_PRECONDITION_FAILED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrQuantityUnavailable):
		return pkg.NewDomainErrorSimple("QUANTITY_UNAVAILABLE", "Requested quantity exceeds available inventory", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
