package core

// error_messages.go maps technical errors to user-facing messages with codes
// for support reference.
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Connection refused: Unable to connect to database
//	DB002 - Connection reset: Database connection was interrupted
//	DB003 - Timeout: Loading listings timed out
//	DB004 - Load failed: Could not load your listings
//
// # View Errors (VIEW001-VIEW099)
//
//	VIEW001 - Unknown view: The requested table view does not exist
//	VIEW002 - Session expired: The table session was not found
//	VIEW003 - Busy: Too many open table sessions
//	VIEW004 - No filter: This table has no status filter
//	VIEW005 - No source: Listings are unavailable
//	VIEW006 - Loads busy: Too many listings are loading
//
// # Sort Errors (SORT001-SORT099)
//
//	SORT001 - Unknown column: The sort column does not exist
//	SORT002 - Not sortable: This column cannot be sorted
//	SORT003 - Bad direction: Sort direction must be asc or desc
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Unauthenticated: Missing or invalid user
//	REQ002 - Bad body: The request body could not be read
//	REQ003 - Cancelled: Request was cancelled
//	REQ004 - Deadline: Request timed out
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//
// Patterns are matched case-insensitively with strings.Contains. The first
// matching pattern wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Database Errors (DB001-DB003)
	// =========================================================================
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Loading listings timed out",
			Action:  "Please try again later",
			Code:    "DB003",
		},
	},

	// =========================================================================
	// View Errors (VIEW001-VIEW006)
	// =========================================================================
	{
		pattern: "view not found",
		msg: UserMessage{
			Message: "The requested table view does not exist",
			Action:  "Check the view name",
			Code:    "VIEW001",
		},
	},
	{
		pattern: "view session not found",
		msg: UserMessage{
			Message: "The table session was not found",
			Action:  "The session may have expired. Open the view again",
			Code:    "VIEW002",
		},
	},
	{
		pattern: "too many view sessions",
		msg: UserMessage{
			Message: "Too many open table sessions",
			Action:  "Close unused tabs or try again later",
			Code:    "VIEW003",
		},
	},
	{
		pattern: "no status filter",
		msg: UserMessage{
			Message: "This table has no status filter",
			Action:  "Remove the filter from the request",
			Code:    "VIEW004",
		},
	},
	{
		pattern: "no row source",
		msg: UserMessage{
			Message: "Listings are unavailable",
			Action:  "Please try again later",
			Code:    "VIEW005",
		},
	},
	{
		pattern: "too many concurrent row loads",
		msg: UserMessage{
			Message: "Too many listings are loading right now",
			Action:  "Please try again in a few seconds",
			Code:    "VIEW006",
		},
	},

	// =========================================================================
	// Sort Errors (SORT001-SORT003)
	// =========================================================================
	{
		pattern: "unknown sort column",
		msg: UserMessage{
			Message: "The sort column does not exist",
			Action:  "Choose one of the table's columns",
			Code:    "SORT001",
		},
	},
	{
		pattern: "not sortable",
		msg: UserMessage{
			Message: "This column cannot be sorted",
			Action:  "Choose a column with sort controls",
			Code:    "SORT002",
		},
	},
	{
		pattern: "invalid sort direction",
		msg: UserMessage{
			Message: "Sort direction must be asc or desc",
			Action:  "Use asc or desc",
			Code:    "SORT003",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ004)
	// =========================================================================
	{
		pattern: "user id",
		msg: UserMessage{
			Message: "You are not signed in",
			Action:  "Sign in and try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "invalid request body",
		msg: UserMessage{
			Message: "The request could not be read",
			Action:  "Send a valid JSON body",
			Code:    "REQ002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ003",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ004",
		},
	},

	// =========================================================================
	// Load Errors (DB004)
	// Matched last: the wrapped cause is more specific when it is known.
	// =========================================================================
	{
		pattern: "load rows",
		msg: UserMessage{
			Message: "Could not load your listings",
			Action:  "Refresh the page to try again",
			Code:    "DB004",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000). Support staff
// should check application logs for the original technical error.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
