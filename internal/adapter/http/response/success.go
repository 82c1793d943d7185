package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// Welcome writes the greeting served at the API root.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, &MessageResponse{Message: MsgWelcome})
}

// Codes writes a 200 OK response with a list of airport or carrier codes.
// A nil list is written as an empty array.
func Codes(c echo.Context, codes []string) error {
	if codes == nil {
		codes = []string{}
	}
	return c.JSON(http.StatusOK, codes)
}
