package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kar-app/kar-portal/internal/api/middleware"
	"github.com/kar-app/kar-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all portal errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Forces navigation to the login view on an authorization expiry — the
//     gateway has already cleared the session by then — unless the request
//     already targets the login view.
//   - Maps gateway and backend errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var se *domain.StatusError
		if errors.As(err, &se) && se.Unauthorized() &&
			!strings.HasPrefix(c.Request().URL.Path, middleware.LoginPath) {
			_ = c.Redirect(http.StatusSeeOther, middleware.LoginPath)
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Backend answered with a non-success status: pass the code through
	// together with the server-supplied message.
	var se *domain.StatusError
	if errors.As(err, &se) {
		return se.Code, se.Error()
	}

	// Application failure: success HTTP status but success=false envelope.
	var ae *domain.APIError
	if errors.As(err, &ae) {
		return http.StatusBadRequest, ae.Message
	}

	// The request never yielded an envelope.
	if errors.Is(err, domain.ErrNetwork) {
		return http.StatusBadGateway, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
