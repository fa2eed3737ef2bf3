package response

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(c echo.Context, status int, code, message string) error {
	return c.JSON(status, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// FromStatus renders an error envelope whose code is derived from the HTTP status text,
// e.g. 405 becomes METHOD_NOT_ALLOWED.
func FromStatus(c echo.Context, status int, message string) error {
	return Error(c, status, Code(status), message)
}

func Code(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "UNKNOWN_ERROR"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

func InternalError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

func ServiceUnavailable(c echo.Context, message string) error {
	return Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", message)
}
