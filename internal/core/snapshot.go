package core

import (
	"fmt"
	"time"

	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

// Messages shown when filtering hides every row.
const (
	FilteredEmptyTitle = "לא נמצאו תוצאות העומדות בתנאי הסינון"
	FilteredEmptyHint  = "נסה לשנות את הסינון או לבטל חלק מהקטגוריות"
)

// Snapshot is one recomputed rendering of a view.
type Snapshot struct {
	SessionID   string       `json:"sessionId,omitempty"`
	View        ViewInfo     `json:"view"`
	Sort        SortView     `json:"sort"`
	Columns     []ColumnView `json:"columns"`
	Filters     []FilterView `json:"filters,omitempty"`
	Rows        []RowView    `json:"rows"`
	Total       int          `json:"total"` // rows before filtering
	Empty       *EmptyState  `json:"empty,omitempty"`
	GeneratedAt time.Time    `json:"generatedAt"`
}

// SortView describes the active sort.
type SortView struct {
	Grouped   bool   `json:"grouped"`
	Column    string `json:"column,omitempty"`
	Direction string `json:"direction,omitempty"`
}

// ColumnView describes a column header.
type ColumnView struct {
	Key       string `json:"key"`
	Header    string `json:"header"`
	Sortable  bool   `json:"sortable"`
	Direction string `json:"direction,omitempty"` // set on the active sort column
	HasFilter bool   `json:"hasFilter,omitempty"`
}

// FilterView is one status filter option.
type FilterView struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Checked bool   `json:"checked"`
}

// RowView holds the rendered cells of one row, in column order.
type RowView struct {
	Cells []smarttable.Cell `json:"cells"`
}

// EmptyState explains why no rows are shown.
type EmptyState struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

// Visible returns the number of rows after filtering.
func (s Snapshot) Visible() int {
	return len(s.Rows)
}

// Column returns the column view with the given key.
func (s Snapshot) Column(key string) (ColumnView, bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return ColumnView{}, false
}

// toCell converts an opaque display value into a Cell.
func toCell(v any) smarttable.Cell {
	switch x := v.(type) {
	case nil:
		return smarttable.Cell{}
	case smarttable.Cell:
		return x
	case *smarttable.Cell:
		if x == nil {
			return smarttable.Cell{}
		}
		return *x
	case string:
		return smarttable.TextCell(x)
	case fmt.Stringer:
		return smarttable.TextCell(x.String())
	default:
		return smarttable.TextCell(fmt.Sprint(x))
	}
}

func emptyState(info ViewInfo, total, visible int) *EmptyState {
	switch {
	case visible > 0:
		return nil
	case total == 0:
		return &EmptyState{Title: info.EmptyTitle, Hint: info.EmptyHint}
	default:
		return &EmptyState{Title: FilteredEmptyTitle, Hint: FilteredEmptyHint}
	}
}
