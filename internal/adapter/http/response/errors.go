package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, MsgInvalidBody)
}

// ValidationError writes a 400 Bad Request response carrying per-field details.
// message is normally the first field error.
func ValidationError(c echo.Context, message string, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// Forbidden writes a 403 Forbidden response.
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// NoSchedules writes the 404 response of a route without schedules.
func NoSchedules(c echo.Context) error {
	return NotFound(c, MsgNoSchedules)
}

// NotImplemented writes a 501 Not Implemented response.
func NotImplemented(c echo.Context) error {
	return Error(c, http.StatusNotImplemented, MsgNotImplemented)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, MsgInternalError)
}

// InternalServerErrorWithMessage writes a 500 Internal Server Error response with a custom message.
func InternalServerErrorWithMessage(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
