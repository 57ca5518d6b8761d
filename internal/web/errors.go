package web

// errors.go renders errors for the web layer.
//
// The technical error is logged with the request id; the client receives the
// user-facing message from core.MapError, as JSON for API requests or as an
// HTML alert for page and HTMX requests. The status code is derived from the
// error itself.

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/JonMunkholm/auctionboard/internal/core"
	"github.com/JonMunkholm/auctionboard/internal/logging"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
	"github.com/JonMunkholm/auctionboard/internal/web/templates"
)

// errBadBody wraps request decoding failures.
var errBadBody = errors.New("invalid request body")

// ErrorResponse is the JSON shape of API errors. Code is machine-readable;
// Message and Action are for display.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrViewNotFound),
		errors.Is(err, core.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errBadBody),
		errors.Is(err, core.ErrNoFilter),
		errors.Is(err, smarttable.ErrUnknownColumn),
		errors.Is(err, smarttable.ErrNotSortable),
		errors.Is(err, smarttable.ErrInvalidDirection):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrUnknownUser):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrTooManySessions),
		errors.Is(err, core.ErrTooManyLoads),
		errors.Is(err, core.ErrNoSource):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the user-facing response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := core.MapError(err)

	logger := logging.FromContext(r.Context())
	if status >= 500 {
		logger.Error("request error", "path", r.URL.Path, "status", status, "error", err, "code", msg.Code)
	} else {
		logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err, "code", msg.Code)
	}

	switch {
	case wantsJSON(r):
		writeJSON(w, r, status, ErrorResponse{
			Error:   msg.Message,
			Message: msg.Message,
			Action:  msg.Action,
			Code:    msg.Code,
		})
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := templates.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w); err != nil {
			logger.Error("render error alert", "error", err)
		}
	}
}

// isHTMX reports whether the request came from htmx.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON reports whether the client expects a JSON response.
func wantsJSON(r *http.Request) bool {
	if isHTMX(r) {
		return false
	}
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
