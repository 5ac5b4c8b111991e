package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "apikit/internal/delivery/context"
	domainerrors "apikit/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, OK(c, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"1"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestSuccess_NullData(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, OK(c, nil))

	assert.JSONEq(t, `{"data":null,"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DropsDetailsForAuthAndServerErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "details"))

			var body Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}

func TestAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, AppError(c, domainerrors.ErrValidationFailed.WithDetails("email is required")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"VALIDATION_FAILED","message":"Validation failed","details":"email is required"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}
