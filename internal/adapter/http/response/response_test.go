package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var result ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestWelcome(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, Welcome(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"welcome to whereto"}`, rec.Body.String())
}

func TestCodes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		_, c, rec := setupEcho()

		require.NoError(t, Codes(c, []string{"LOS", "ABV"}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["LOS","ABV"]`, rec.Body.String())
	})

	t.Run("nil is an empty array", func(t *testing.T) {
		_, c, rec := setupEcho()

		require.NoError(t, Codes(c, nil))
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestErrorBuilders(t *testing.T) {
	tests := []struct {
		name       string
		write      func(c echo.Context) error
		wantStatus int
		wantError  string
	}{
		{"bad request", func(c echo.Context) error { return BadRequest(c, "Invalid input") }, http.StatusBadRequest, "Invalid input"},
		{"invalid body", InvalidRequestBody, http.StatusBadRequest, MsgInvalidBody},
		{"forbidden", func(c echo.Context) error { return Forbidden(c, MsgSaveForbidden) }, http.StatusForbidden, MsgSaveForbidden},
		{"no schedules", NoSchedules, http.StatusNotFound, "No flight schedules available"},
		{"not implemented", NotImplemented, http.StatusNotImplemented, MsgNotImplemented},
		{"internal", InternalServerError, http.StatusInternalServerError, MsgInternalError},
		{"internal with message", func(c echo.Context) error { return InternalServerErrorWithMessage(c, "boom") }, http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			result := decodeError(t, rec)
			assert.Equal(t, tt.wantError, result.Error)
			assert.Empty(t, result.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"origin":  "origin is required and must be string",
		"carrier": "carrier is required and must be string",
	}
	require.NoError(t, ValidationError(c, details["origin"], details))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	result := decodeError(t, rec)
	assert.Equal(t, "origin is required and must be string", result.Error)
	assert.Equal(t, details, result.Details)
}
