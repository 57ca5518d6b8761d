package smarttable

import (
	"fmt"
	"slices"
)

// DefaultTitleKey is the column used to break ties when Config.TitleKey is empty.
const DefaultTitleKey = "title"

// Config describes one table view.
type Config[T any] struct {
	// Columns is the static column model. Keys must be unique.
	Columns []Column[T]

	// FilterOptions declares the status tags offered to the user. Filtering
	// is active only when both FilterOptions and StatusOf are set.
	FilterOptions []FilterOption

	// StatusOf extracts a row's status tag.
	StatusOf StatusFunc[T]

	// Grouped orders rows while no explicit column is selected. Nil keeps
	// the filtered rows in input order.
	Grouped Comparator[T]

	// TitleKey names the column whose comparator breaks ties for comparator
	// columns. Empty means DefaultTitleKey, which may be absent; an explicit
	// key must exist.
	TitleKey string

	// InitialSort is the starting sort state. The zero value is grouped.
	InitialSort SortState
}

// Table owns the filter and sort state of one rendered view and produces
// the ordered, filtered row sequence.
//
// Rows are replaced wholesale with SetRows; the table keeps no diff state
// between refreshes. Every call to Rows recomputes from (rows, filter, sort),
// so identical inputs always produce identical output.
type Table[T any] struct {
	columns  []Column[T]
	index    map[string]int
	title    Comparator[T]
	grouped  Comparator[T]
	statusOf StatusFunc[T]
	filter   *FilterSet
	sort     SortState
	rows     []T
}

// NewTable validates cfg and creates a Table in its initial state: every
// declared filter option allowed and the configured initial sort.
func NewTable[T any](cfg Config[T]) (*Table[T], error) {
	if err := ValidateColumns(cfg.Columns); err != nil {
		return nil, fmt.Errorf("invalid columns: %w", err)
	}

	t := &Table[T]{
		columns: slices.Clone(cfg.Columns),
		index:   make(map[string]int, len(cfg.Columns)),
		grouped: cfg.Grouped,
	}
	for i, col := range t.columns {
		t.index[col.Key] = i
	}

	titleKey := cfg.TitleKey
	if titleKey == "" {
		titleKey = DefaultTitleKey
	}
	if i, ok := t.index[titleKey]; ok {
		t.title = t.columns[i].Comparator()
	} else if cfg.TitleKey != "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTitleColumn, cfg.TitleKey)
	}

	if len(cfg.FilterOptions) > 0 && cfg.StatusOf != nil {
		t.filter = NewFilterSet(cfg.FilterOptions)
		t.statusOf = cfg.StatusOf
	}

	if !cfg.InitialSort.IsGrouped() {
		if err := t.SetSort(cfg.InitialSort.Column, cfg.InitialSort.Direction); err != nil {
			return nil, fmt.Errorf("initial sort: %w", err)
		}
	}

	return t, nil
}

// SetRows replaces the row collection. The slice is copied; later changes
// by the caller do not affect the table.
func (t *Table[T]) SetRows(rows []T) {
	t.rows = slices.Clone(rows)
}

// Len returns the number of rows before filtering.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Columns returns the column model.
func (t *Table[T]) Columns() []Column[T] {
	return slices.Clone(t.columns)
}

// Column returns the column with the given key.
func (t *Table[T]) Column(key string) (Column[T], bool) {
	i, ok := t.index[key]
	if !ok {
		return Column[T]{}, false
	}
	return t.columns[i], true
}

// SetSort selects an explicit column sort. Selecting an unknown or
// non-sortable column returns an error and leaves the sort state unchanged.
func (t *Table[T]) SetSort(key string, dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	col, ok := t.Column(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	if !col.IsSortable() {
		return fmt.Errorf("%w: %q", ErrNotSortable, key)
	}
	t.sort = ByColumn(key, dir)
	return nil
}

// ClearSort returns to the grouped default.
func (t *Table[T]) ClearSort() {
	t.sort = Grouped()
}

// SortState returns the current sort state.
func (t *Table[T]) SortState() SortState {
	return t.sort
}

// Filtering reports whether the table has a status filter configured.
func (t *Table[T]) Filtering() bool {
	return t.filter != nil
}

// FilterOptions returns the declared filter options, or nil when filtering
// is not configured.
func (t *Table[T]) FilterOptions() []FilterOption {
	if t.filter == nil {
		return nil
	}
	return t.filter.Options()
}

// FilterState returns the currently allowed status tags, or nil when
// filtering is not configured.
func (t *Table[T]) FilterState() []string {
	if t.filter == nil {
		return nil
	}
	return t.filter.Allowed()
}

// FilterAllows reports whether the status tag is currently allowed.
// Without a configured filter every tag is allowed.
func (t *Table[T]) FilterAllows(value string) bool {
	if t.filter == nil {
		return true
	}
	return t.filter.Allows(value)
}

// ToggleFilterValue flips whether rows tagged value are shown.
// It is a no-op when filtering is not configured.
func (t *Table[T]) ToggleFilterValue(value string) {
	if t.filter == nil {
		return
	}
	t.filter.Toggle(value)
}

// SetAllowedFilterValues replaces the allowed status tags.
// It is a no-op when filtering is not configured.
func (t *Table[T]) SetAllowedFilterValues(values ...string) {
	if t.filter == nil {
		return
	}
	t.filter.SetAllowed(values...)
}

// ResetFilters allows every declared status tag again.
func (t *Table[T]) ResetFilters() {
	if t.filter == nil {
		return
	}
	t.filter.Reset()
}

// Rows returns the filtered rows in their final order. The result is a
// fresh slice; an empty result is never nil.
func (t *Table[T]) Rows() []T {
	return t.arrange(Apply(t.filter, t.rows, t.statusOf))
}

// arrange orders an already-filtered private copy of the rows.
func (t *Table[T]) arrange(rows []T) []T {
	if t.sort.IsGrouped() {
		if t.grouped != nil {
			slices.SortStableFunc(rows, t.grouped)
		}
		return rows
	}

	col, ok := t.Column(t.sort.Column)
	if !ok || col.Order == nil {
		return rows
	}

	result := col.Order.arrange(rows, t.sort.Direction, t.title)
	if result == nil {
		return []T{}
	}
	return result
}
