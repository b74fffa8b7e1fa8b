package http_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/in/http/kitchenauth"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = httpadapter.NewHTTPErrorHandler(slog.New(slog.DiscardHandler))
	e.GET("/fail", func(echo.Context) error {
		return err
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "authentication required maps to 401",
			err:    kitchenauth.ErrAuthenticationRequired,
			status: http.StatusUnauthorized,
		},
		{
			name:   "authorization denied maps to 403",
			err:    kitchenauth.ErrAuthorizationDenied,
			status: http.StatusForbidden,
		},
		{
			name:   "not found maps to 404",
			err:    errs.NewObjectNotFoundError("order", "abc"),
			status: http.StatusNotFound,
		},
		{
			name:   "illegal transition maps to 409",
			err:    order.NewInvalidStatusTransitionError(order.Ready, order.Pending),
			status: http.StatusConflict,
		},
		{
			name:   "inactive product maps to 422",
			err:    product.NewInactiveProductError(kernel.NewUUID()),
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "publication failure maps to 503",
			err:    ports.NewEventPublicationError("orders.placed", errors.New("broker down")),
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "invalid value maps to 400",
			err:    errs.NewValueIsInvalidError("tableNumber"),
			status: http.StatusBadRequest,
		},
		{
			name:   "out of range maps to 400",
			err:    errs.NewValueIsOutOfRangeError("tableNumber", 13, 1, 12),
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown error maps to 500",
			err:    errors.New("database file corrupted at /var/lib/data"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := performWithError(t, tc.err)

			assert.Equal(t, tc.status, rec.Code)

			body := decodeErrorBody(t, rec)
			assert.EqualValues(t, tc.status, body["status"])
			assert.Equal(t, http.StatusText(tc.status), body["error"])
			assert.Contains(t, body, "timestamp")
			assert.Contains(t, body, "message")
		})
	}
}

func TestHTTPErrorHandler_NotFoundNamesTheMissingObject(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		rec := performWithError(t, errs.NewObjectNotFoundError("order", "abc"))

		body := decodeErrorBody(t, rec)
		assert.Equal(t, "order not found", body["message"])
	})

	t.Run("missing product on placement", func(t *testing.T) {
		rec := performWithError(t, errs.NewObjectNotFoundError("product", "abc"))

		body := decodeErrorBody(t, rec)
		assert.Equal(t, "product not found", body["message"])
	})

	t.Run("unnamed object", func(t *testing.T) {
		rec := performWithError(t, errs.NewObjectNotFoundError("", "abc"))

		body := decodeErrorBody(t, rec)
		assert.Equal(t, "resource not found", body["message"])
	})
}

func TestHTTPErrorHandler_InternalDetailNeverLeaks(t *testing.T) {
	rec := performWithError(t, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestHTTPErrorHandler_EchoHTTPErrorKeepsItsCode(t *testing.T) {
	rec := performWithError(t, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter orderId"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "Invalid format for parameter orderId", body["message"])
}

func TestHTTPErrorHandler_WrappedErrorsStillMatch(t *testing.T) {
	wrapped := errors.Join(errors.New("handling request"), errs.NewObjectNotFoundError("order", "x"))

	rec := performWithError(t, wrapped)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
