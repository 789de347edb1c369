package handlers

import (
	"errors"
	"net/http"
	"time"

	request "beachrent/internal/adapter/http/dto/request"
	response "beachrent/internal/adapter/http/dto/response"
	"beachrent/internal/usecase"
	"beachrent/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
	ticker  *usecase.CountdownTicker
}

func NewOrderHandler(uc usecase.IOrderUseCase, ticker *usecase.CountdownTicker) *OrderHandler {
	return &OrderHandler{usecase: uc, ticker: ticker}
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.usecase.ListMine(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) ListActive(c *gin.Context) {
	orders, err := h.usecase.ListActive(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("session_id"), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SubmitOrder turns the session's draft into a platform order and resets the
// draft on success.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	order, err := h.usecase.Submit(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *OrderHandler) ExtendOrder(c *gin.Context) {
	var payload request.ExtendOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Extend(c.Request.Context(), c.Param("session_id"), c.Param("order_id"), payload.AdditionalHours)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// Countdown streams the order's remaining-time presentation as server-sent
// events, one per tick. Closing the connection cancels the request context
// and releases the ticker. With ?stream=false it returns a single snapshot
// instead.
func (h *OrderHandler) Countdown(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("session_id"), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if c.Query("stream") == "false" {
		c.JSON(http.StatusOK, response.FromCountdown(usecase.ComputeCountdown(time.Now(), order)))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	_ = h.ticker.Run(c.Request.Context(), order, func(cd usecase.Countdown) error {
		c.SSEvent("countdown", response.FromCountdown(cd))
		c.Writer.Flush()
		return nil
	})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidExtension):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Sign in to manage orders", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBeachNotFound):
		return pkg.NewDomainErrorSimple("BEACH_NOT_FOUND", "Beach not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBeachNotSelected),
		errors.Is(err, usecase.ErrNoDeliveryLocation),
		errors.Is(err, usecase.ErrNoSizesSelected),
		errors.Is(err, usecase.ErrServiceClosed),
		errors.Is(err, usecase.ErrScheduleRequired),
		errors.Is(err, usecase.ErrTermsNotAccepted),
		errors.Is(err, usecase.ErrQuantityUnavailable):
		return pkg.NewDomainErrorSimple("FLOW_PRECONDITION_FAILED", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
