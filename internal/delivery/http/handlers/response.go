package handlers

import (
	"errors"
	"net/http"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/labstack/echo/v4"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// respondError maps the domain error taxonomy onto HTTP statuses. Invalid
// transitions and lost races both come back as 409 so clients re-fetch and
// decide; everything unrecognized is a 500 with no internals leaked.
func respondError(c echo.Context, err error) error {
	var invalid *domain.InvalidTransitionError
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusConflict, NewErrorResponse("invalid_transition", invalid.Error()))
	}
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("validation_failed", validation.Error()))
	}
	var unauthorized *domain.UnauthorizedActionError
	if errors.As(err, &unauthorized) {
		return c.JSON(http.StatusForbidden, NewErrorResponse("forbidden", unauthorized.Error()))
	}

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrDisputeNotFound),
		errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPaymentLinkNotFound),
		errors.Is(err, domain.ErrPaymentMethodNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", err.Error()))
	case errors.Is(err, domain.ErrOrderConflict):
		return c.JSON(http.StatusConflict, NewErrorResponse("conflict", err.Error()))
	case errors.Is(err, domain.ErrDisputeAlreadyOpen):
		return c.JSON(http.StatusConflict, NewErrorResponse("dispute_already_open", err.Error()))
	case errors.Is(err, domain.ErrDisputeResolved):
		return c.JSON(http.StatusConflict, NewErrorResponse("dispute_resolved", err.Error()))
	case errors.Is(err, domain.ErrSlugTaken):
		return c.JSON(http.StatusConflict, NewErrorResponse("slug_taken", err.Error()))
	case errors.Is(err, domain.ErrLinkInactive):
		return c.JSON(http.StatusGone, NewErrorResponse("link_inactive", err.Error()))
	}
	return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "something went wrong"))
}

type PaginationResponse struct {
	CurrentPage  int32 `json:"currentPage"`
	TotalPages   int32 `json:"totalPages"`
	TotalItems   int32 `json:"totalItems"`
	ItemsPerPage int32 `json:"itemsPerPage"`
}
