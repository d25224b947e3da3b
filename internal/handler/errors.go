package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "Not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// abort builds an HTTP error that keeps cause for logging only
func abort(code int, cause error) *echo.HTTPError {
	return echo.NewHTTPError(code).SetInternal(cause)
}

// ErrorHandler renders every error as an ErrorResponse
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var cause error = err
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			cause = he.Internal
		}

		ctx := c.Request().Context()
		switch {
		case code >= http.StatusInternalServerError:
			logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		case cause != nil:
			logger.WarnContext(ctx, "request rejected", slog.Int("status", code), slog.Any("error", cause))
		}

		message, ok := errorMessages[code]
		if !ok {
			message = strings.ToLower(http.StatusText(code))
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, ErrorResponse{Success: false, Error: code, Message: message})
		}
		if werr != nil {
			logger.ErrorContext(ctx, "failed to write error response", slog.Any("error", werr))
		}
	}
}
