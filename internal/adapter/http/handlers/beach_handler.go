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
	errInvalidLocatePayload = pkg.NewDomainErrorSimple("INVALID_LOCATE_INPUT", "Invalid locate payload", http.StatusBadRequest)
)

type BeachHandler struct {
	usecase usecase.IBeachUseCase
}

func NewBeachHandler(uc usecase.IBeachUseCase) *BeachHandler {
	return &BeachHandler{usecase: uc}
}

func (h *BeachHandler) ListBeaches(c *gin.Context) {
	beaches, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBeachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBeaches(beaches))
}

func (h *BeachHandler) GetBeach(c *gin.Context) {
	beach, err := h.usecase.GetByID(c.Request.Context(), c.Param("beach_id"))
	if err != nil {
		appErr := mapBeachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBeach(beach))
}

// LocateBeach resolves a coordinate to the beach whose polygon contains it.
func (h *BeachHandler) LocateBeach(c *gin.Context) {
	var payload request.LocateBeachRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLocatePayload.HTTPStatus, errInvalidLocatePayload.ToHTTPError())
		return
	}

	beach, err := h.usecase.Locate(c.Request.Context(), payload.Latitude, payload.Longitude)
	if err != nil {
		appErr := mapBeachError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBeach(beach))
}

func mapBeachError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBeachID), errors.Is(err, usecase.ErrNoLocationProvided):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBeachNotFound):
		return pkg.NewDomainErrorSimple("BEACH_NOT_FOUND", "Beach not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOutsideServiceArea):
		return pkg.NewDomainErrorSimple("OUTSIDE_SERVICE_AREA", "Location is outside every service area", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
