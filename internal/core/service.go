package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/auctionboard/internal/logging"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

// Options configures a Service.
type Options struct {
	SessionTTL    time.Duration
	MaxSessions   int
	SweepInterval time.Duration

	// MaxConcurrentLoads and LoadWait bound concurrent row loads.
	MaxConcurrentLoads int
	LoadWait           time.Duration

	Collation *smarttable.Collation
	Now       smarttable.Clock
}

// Service opens views over a row source and drives their sort and filter
// state, either through live sessions or as one-shot renders.
type Service struct {
	deps     Deps
	sessions *Sessions
	loads    *LoadLimiter
	sweep    time.Duration
}

// NewService creates a Service reading rows from source.
func NewService(source RowSource, opts Options) *Service {
	if opts.Collation == nil {
		opts.Collation = smarttable.DefaultCollation
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	sessions := NewSessions(opts.SessionTTL, opts.MaxSessions)
	sessions.now = opts.Now

	return &Service{
		deps: Deps{
			Source:    source,
			Collation: opts.Collation,
			Now:       opts.Now,
		},
		sessions: sessions,
		loads:    NewLoadLimiter(opts.MaxConcurrentLoads, opts.LoadWait),
		sweep:    opts.SweepInterval,
	}
}

// Views returns information about all registered views.
func (s *Service) Views() []ViewInfo {
	defs := All()
	infos := make([]ViewInfo, len(defs))
	for i, def := range defs {
		infos[i] = def.Info
	}
	return infos
}

// SessionCount returns the number of stored view sessions.
func (s *Service) SessionCount() int {
	return s.sessions.Len()
}

func (s *Service) newGrid(ctx context.Context, viewKey string, userID int64) (Grid, error) {
	def, ok := Get(viewKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, viewKey)
	}

	if err := s.loads.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.loads.Release()

	if checker, ok := s.deps.Source.(UserChecker); ok {
		exists, err := checker.UserExists(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load rows for %s: %w", viewKey, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %d", ErrUnknownUser, userID)
		}
	}

	grid, err := def.New(s.deps)
	if err != nil {
		return nil, fmt.Errorf("build view %s: %w", viewKey, err)
	}
	if err := grid.Load(ctx, userID); err != nil {
		return nil, fmt.Errorf("load rows for %s: %w", viewKey, err)
	}
	return grid, nil
}

// OpenView creates a live session for viewKey with the user's current rows
// and returns its first snapshot.
func (s *Service) OpenView(ctx context.Context, viewKey string, userID int64) (Snapshot, error) {
	grid, err := s.newGrid(ctx, viewKey, userID)
	if err != nil {
		return Snapshot{}, err
	}

	sess, err := s.sessions.add(viewKey, userID, grid)
	if err != nil {
		return Snapshot{}, err
	}

	logging.WithFields(ctx, "session_id", sess.ID, "view", viewKey, "user_id", userID).
		Info("view session opened")

	return s.snapshot(sess), nil
}

// RefreshSession reloads the session's rows wholesale, keeping its sort and
// filter state.
func (s *Service) RefreshSession(ctx context.Context, sessionID string, userID int64) (Snapshot, error) {
	return s.apply(ctx, sessionID, userID, func(g Grid) error {
		if err := s.loads.Acquire(ctx); err != nil {
			return err
		}
		defer s.loads.Release()
		return g.Load(ctx, userID)
	})
}

// GetSession recomputes the session without reloading rows.
func (s *Service) GetSession(ctx context.Context, sessionID string, userID int64) (Snapshot, error) {
	return s.apply(ctx, sessionID, userID, nil)
}

// SetSort selects an explicit column sort. direction accepts "asc" or
// "desc"; an empty direction means ascending.
func (s *Service) SetSort(ctx context.Context, sessionID string, userID int64, column, direction string) (Snapshot, error) {
	dir, err := smarttable.ParseDirection(direction)
	if err != nil {
		return Snapshot{}, err
	}
	return s.apply(ctx, sessionID, userID, func(g Grid) error {
		return g.SetSort(column, dir)
	})
}

// ClearSort returns the session to the grouped default order.
func (s *Service) ClearSort(ctx context.Context, sessionID string, userID int64) (Snapshot, error) {
	return s.apply(ctx, sessionID, userID, func(g Grid) error {
		g.ClearSort()
		return nil
	})
}

// ToggleFilter flips whether rows with the given status tag are shown.
func (s *Service) ToggleFilter(ctx context.Context, sessionID string, userID int64, value string) (Snapshot, error) {
	return s.apply(ctx, sessionID, userID, func(g Grid) error {
		return g.ToggleFilter(value)
	})
}

// SetFilters replaces the allowed status tags. An empty list hides every row.
func (s *Service) SetFilters(ctx context.Context, sessionID string, userID int64, values []string) (Snapshot, error) {
	return s.apply(ctx, sessionID, userID, func(g Grid) error {
		return g.SetFilters(values)
	})
}

// CloseSession discards a session.
func (s *Service) CloseSession(ctx context.Context, sessionID string, userID int64) error {
	if err := s.sessions.remove(sessionID, userID); err != nil {
		return err
	}
	logging.WithFields(ctx, "session_id", sessionID).Debug("view session closed")
	return nil
}

// apply runs fn against the session's grid under its lock and returns the
// recomputed snapshot. A failed transition leaves the state unchanged.
func (s *Service) apply(ctx context.Context, sessionID string, userID int64, fn func(Grid) error) (Snapshot, error) {
	sess, err := s.sessions.get(sessionID, userID)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if fn != nil {
		if err := fn(sess.grid); err != nil {
			logging.WithFields(ctx, "session_id", sessionID, "view", sess.View).
				Warn("view transition rejected", "error", err)
			return Snapshot{}, err
		}
	}

	snap := sess.grid.Snapshot()
	snap.SessionID = sess.ID
	return snap, nil
}

func (s *Service) snapshot(sess *session) Snapshot {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	snap := sess.grid.Snapshot()
	snap.SessionID = sess.ID
	return snap
}

// RenderRequest describes a one-shot render.
type RenderRequest struct {
	Sort      string
	Direction string

	// Statuses restricts the status filter when FilterSet is true. An empty
	// list with FilterSet hides every row.
	Statuses  []string
	FilterSet bool
}

// RenderView builds a view, applies req, and returns the snapshot without
// keeping a session.
func (s *Service) RenderView(ctx context.Context, viewKey string, userID int64, req RenderRequest) (Snapshot, error) {
	grid, err := s.newGrid(ctx, viewKey, userID)
	if err != nil {
		return Snapshot{}, err
	}

	if req.Sort != "" {
		dir, err := smarttable.ParseDirection(req.Direction)
		if err != nil {
			return Snapshot{}, err
		}
		if err := grid.SetSort(req.Sort, dir); err != nil {
			return Snapshot{}, err
		}
	}

	if req.FilterSet {
		if err := grid.SetFilters(req.Statuses); err != nil {
			return Snapshot{}, err
		}
	}

	return grid.Snapshot(), nil
}

// WaitForLoads blocks until in-flight row loads finish or ctx is done.
func (s *Service) WaitForLoads(ctx context.Context) error {
	return s.loads.WaitForDrain(ctx)
}

// StartSessionSweeper removes expired sessions in the background until ctx
// is cancelled.
func (s *Service) StartSessionSweeper(ctx context.Context) {
	go s.sessions.RunSweeper(ctx, s.sweep, func(removed int) {
		logging.FromContext(ctx).Debug("expired view sessions removed", "count", removed)
	})
}
