package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/auctionboard/internal/core"
	"github.com/JonMunkholm/auctionboard/internal/logging"
	"github.com/JonMunkholm/auctionboard/internal/web/templates"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 64 << 10

type sortRequest struct {
	Column    string `json:"column"`
	Direction string `json:"direction"`
}

type toggleRequest struct {
	Value string `json:"value"`
}

type filtersRequest struct {
	Values []string `json:"values"`
}

// userID returns the id stored by middleware.RequireUser.
func userID(r *http.Request) int64 {
	id, _ := core.UserIDFromContext(r.Context())
	return id
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.service.SessionCount(),
	})
}

// handleListViews returns the registered views.
func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.service.Views())
}

// handleOpenView creates a live session for the view.
func (s *Server) handleOpenView(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.OpenView(r.Context(), chi.URLParam(r, "viewKey"), userID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, snap)
}

// handleRefreshSession reloads the session's rows and returns the snapshot.
func (s *Server) handleRefreshSession(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.RefreshSession(r.Context(), chi.URLParam(r, "sessionID"), userID(r))
	s.respondSnapshot(w, r, snap, err)
}

// handleCloseSession discards the session.
func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := s.service.CloseSession(r.Context(), chi.URLParam(r, "sessionID"), userID(r)); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetSort selects an explicit column sort.
func (s *Server) handleSetSort(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	snap, err := s.service.SetSort(r.Context(), chi.URLParam(r, "sessionID"), userID(r), req.Column, req.Direction)
	s.respondSnapshot(w, r, snap, err)
}

// handleClearSort returns the session to the grouped order.
func (s *Server) handleClearSort(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.ClearSort(r.Context(), chi.URLParam(r, "sessionID"), userID(r))
	s.respondSnapshot(w, r, snap, err)
}

// handleToggleFilter flips one status filter value.
func (s *Server) handleToggleFilter(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	snap, err := s.service.ToggleFilter(r.Context(), chi.URLParam(r, "sessionID"), userID(r), req.Value)
	s.respondSnapshot(w, r, snap, err)
}

// handleSetFilters replaces the allowed status values.
func (s *Server) handleSetFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	snap, err := s.service.SetFilters(r.Context(), chi.URLParam(r, "sessionID"), userID(r), req.Values)
	s.respondSnapshot(w, r, snap, err)
}

func (s *Server) respondSnapshot(w http.ResponseWriter, r *http.Request, snap core.Snapshot, err error) {
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, snap)
}

// handleViewPage renders a view as HTML without keeping a session. The
// query selects the sort (sort, dir) and the allowed statuses (status,
// repeated or a comma list; present but empty hides every row). htmx
// requests receive only the table fragment.
func (s *Server) handleViewPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := core.RenderRequest{
		Sort:      q.Get("sort"),
		Direction: q.Get("dir"),
	}
	if q.Has("status") {
		req.FilterSet = true
		for _, v := range q["status"] {
			req.Statuses = append(req.Statuses, splitList(v)...)
		}
	}

	snap, err := s.service.RenderView(r.Context(), chi.URLParam(r, "viewKey"), userID(r), req)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	component := templates.TableView(snap, req)
	if isHTMX(r) {
		component = templates.TablePartial(snap, req)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render view page", "view", snap.View.Key, "error", err)
	}
}

// splitList splits a comma list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
