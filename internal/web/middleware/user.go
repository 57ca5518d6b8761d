package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/JonMunkholm/auctionboard/internal/core"
	"github.com/JonMunkholm/auctionboard/internal/logging"
)

// UserIDHeader carries the authenticated user id, set by the upstream
// authentication proxy.
const UserIDHeader = "X-User-ID"

// ErrMissingUser is returned when a request has no usable user id.
var ErrMissingUser = errors.New("missing or invalid user id")

// RequireUser reads the user id from [UserIDHeader] and stores it, with the
// client IP, in the request context. The request logger gains a user_id
// field. Requests without a positive numeric id are rejected with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(UserIDHeader)), 10, 64)
		if err != nil || userID <= 0 {
			msg := core.MapError(ErrMissingUser)
			writeError(w, http.StatusUnauthorized, errorBody{
				Error:   ErrMissingUser.Error(),
				Message: msg.Message,
				Action:  msg.Action,
				Code:    msg.Code,
			})
			return
		}

		ctx := r.Context()
		ctx = core.ContextWithUserID(ctx, userID)
		ctx = core.ContextWithIPAddress(ctx, r.RemoteAddr)
		ctx = logging.ContextWithLogger(ctx, logging.FromContext(ctx).With("user_id", userID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
