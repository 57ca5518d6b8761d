package core

import (
	"context"
	"errors"

	"github.com/JonMunkholm/auctionboard/internal/auction"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

// RowSource supplies the row collections behind the registered views.
// Satisfied by *store.Store.
type RowSource interface {
	UserAuctions(ctx context.Context, userID int64) ([]auction.UserAuction, error)
	UserBids(ctx context.Context, userID int64) ([]auction.BidSummary, error)
}

// UserChecker is implemented by sources that can tell whether a user
// exists. Views are only opened for known users when the source implements it.
type UserChecker interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
}

// Deps are the collaborators a view needs to build its grid.
type Deps struct {
	Source    RowSource
	Collation *smarttable.Collation
	Now       smarttable.Clock
}

// ViewInfo contains display information about a view.
type ViewInfo struct {
	Key          string `json:"key"`          // Unique identifier: "my_auctions"
	Label        string `json:"label"`        // Page title: "המכרזים שלי"
	FilterColumn string `json:"filterColumn"` // Column whose header hosts the status filter
	EmptyTitle   string `json:"emptyTitle"`   // Shown when the user has no rows at all
	EmptyHint    string `json:"emptyHint"`
}

// NewGridFunc builds a fresh grid for one rendered view.
type NewGridFunc func(deps Deps) (Grid, error)

// ViewDefinition contains everything needed to serve a view.
type ViewDefinition struct {
	Info ViewInfo
	New  NewGridFunc
}

// Grid is a type-erased table bound to one view. A Grid is not safe for
// concurrent use; callers serialize access.
type Grid interface {
	Info() ViewInfo

	// Load replaces the rows with a fresh collection for userID.
	Load(ctx context.Context, userID int64) error

	SetSort(column string, dir smarttable.Direction) error
	ClearSort()
	ToggleFilter(value string) error
	SetFilters(values []string) error

	// Snapshot recomputes the ordered, filtered rows.
	Snapshot() Snapshot
}

var (
	// ErrViewNotFound is returned for an unregistered view key.
	ErrViewNotFound = errors.New("view not found")

	// ErrSessionNotFound is returned for unknown, expired, or foreign sessions.
	ErrSessionNotFound = errors.New("view session not found")

	// ErrTooManySessions is returned when the session store is full.
	ErrTooManySessions = errors.New("too many view sessions")

	// ErrNoFilter is returned for filter transitions on a view without a status filter.
	ErrNoFilter = errors.New("view has no status filter")

	// ErrUnknownUser is returned when the source does not know the user.
	ErrUnknownUser = errors.New("unknown user id")

	// ErrNoSource is returned when a view is opened without a row source.
	ErrNoSource = errors.New("no row source configured")
)
