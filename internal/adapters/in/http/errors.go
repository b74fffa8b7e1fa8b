package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"restaurant/internal/adapters/in/http/kitchenauth"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"
	"restaurant/internal/generated/servers"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler builds the echo error handler that maps domain errors
// to HTTP responses. Every response body has the same shape: timestamp,
// status, reason phrase, and a message.
//
// The mapping, in match order:
//
//	authentication required    401
//	authorization denied       403
//	object not found           404
//	illegal status transition  409
//	product not orderable      422
//	event publication failure  503
//	invalid input              400
//
// Anything unmatched becomes a 500 with a fixed message, so internal detail
// never leaks to clients. The original error is logged instead.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, message := classify(err)
		if status == http.StatusInternalServerError {
			logger.Error("unhandled request error",
				"error", err,
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
			)
		}

		body := servers.Error{
			Timestamp: time.Now().UTC(),
			Status:    status,
			Error:     http.StatusText(status),
			Message:   message,
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, kitchenauth.ErrAuthenticationRequired):
		return http.StatusUnauthorized, "kitchen token required"
	case errors.Is(err, kitchenauth.ErrAuthorizationDenied):
		return http.StatusForbidden, "kitchen token rejected"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, notFoundMessage(err)
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, product.ErrProductInactive):
		return http.StatusUnprocessableEntity, "product is not orderable"
	case errors.Is(err, ports.ErrEventPublicationFailed):
		return http.StatusServiceUnavailable, "service temporarily unavailable"
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, messageOf(httpErr)
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// notFoundMessage names the missing object after the typed error's parameter,
// so a missing product on order placement does not read as a missing order.
func notFoundMessage(err error) string {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) && notFound.ParamName != "" {
		return notFound.ParamName + " not found"
	}
	return "resource not found"
}

func messageOf(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return http.StatusText(httpErr.Code)
}
