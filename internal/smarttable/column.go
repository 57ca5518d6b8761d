package smarttable

import (
	"errors"
	"fmt"
	"slices"
)

// Comparator orders two rows. It returns a negative number when a sorts
// before b, zero when they tie, and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// OverrideFunc takes full control of a column's ordering. It receives the
// filtered rows (a private copy the function may reorder in place) and the
// requested direction and returns the final sequence.
type OverrideFunc[T any] func(rows []T, dir Direction) []T

// Ordering is the sort behavior of a column. It is a closed set of variants:
// [ByComparator] and [ByOverride]. A column with a nil Ordering is not
// sortable regardless of its Sortable flag.
type Ordering[T any] interface {
	// arrange orders rows for the given direction. tieBreak may be nil.
	arrange(rows []T, dir Direction, tieBreak Comparator[T]) []T

	// compare exposes the pairwise comparator used when this column acts as
	// the title tie-break for other columns. It may be nil.
	compare() Comparator[T]
}

type comparing[T any] struct {
	cmp Comparator[T]
}

// ByComparator orders a column with a stable sort over cmp. Descending order
// flips the sign of cmp; ties fall back to the title column's comparator and
// then to input order.
func ByComparator[T any](cmp Comparator[T]) Ordering[T] {
	if cmp == nil {
		return nil
	}
	return comparing[T]{cmp: cmp}
}

func (o comparing[T]) arrange(rows []T, dir Direction, tieBreak Comparator[T]) []T {
	slices.SortStableFunc(rows, func(a, b T) int {
		if c := dir.apply(o.cmp(a, b)); c != 0 {
			return c
		}
		if tieBreak != nil {
			return tieBreak(a, b)
		}
		return 0
	})
	return rows
}

func (o comparing[T]) compare() Comparator[T] {
	return o.cmp
}

type overriding[T any] struct {
	sort OverrideFunc[T]
	cmp  Comparator[T]
}

// ByOverride hands ordering of a column entirely to fn. The engine uses the
// returned slice verbatim, so fn owns every policy, including whether active
// rows stay ahead of ended ones.
func ByOverride[T any](fn OverrideFunc[T]) Ordering[T] {
	return ByOverrideCompare(fn, nil)
}

// ByOverrideCompare is ByOverride with a pairwise comparator attached. The
// comparator never orders this column; it is only consulted when the column
// is the designated title column breaking ties for comparator columns.
func ByOverrideCompare[T any](fn OverrideFunc[T], cmp Comparator[T]) Ordering[T] {
	if fn == nil {
		return ByComparator(cmp)
	}
	return overriding[T]{sort: fn, cmp: cmp}
}

func (o overriding[T]) arrange(rows []T, dir Direction, _ Comparator[T]) []T {
	return o.sort(rows, dir)
}

func (o overriding[T]) compare() Comparator[T] {
	return o.cmp
}

// Column declares how to display and optionally order rows along one dimension.
type Column[T any] struct {
	// Key uniquely identifies the column within a table.
	Key string

	// Header is the caller-facing column label.
	Header string

	// Display returns an opaque presentation value for a row. The engine
	// never inspects it.
	Display func(T) any

	// Order is the column's sort behavior; nil means not sortable.
	Order Ordering[T]

	// Sortable gates whether the view offers sort controls for the column.
	Sortable bool
}

// IsSortable reports whether the column may be selected as the sort column.
func (c Column[T]) IsSortable() bool {
	return c.Sortable && c.Order != nil
}

// Comparator returns the column's pairwise comparator, or nil.
func (c Column[T]) Comparator() Comparator[T] {
	if c.Order == nil {
		return nil
	}
	return c.Order.compare()
}

// ValidateColumns checks the column model contract: every column has a
// non-empty unique key and a display accessor. All violations are reported.
func ValidateColumns[T any](cols []Column[T]) error {
	var errs []error
	seen := make(map[string]bool, len(cols))

	for i, col := range cols {
		if col.Key == "" {
			errs = append(errs, fmt.Errorf("column %d: %w", i, ErrEmptyColumnKey))
			continue
		}
		if seen[col.Key] {
			errs = append(errs, fmt.Errorf("column %q: %w", col.Key, ErrDuplicateColumn))
		}
		seen[col.Key] = true

		if col.Display == nil {
			errs = append(errs, fmt.Errorf("column %q: %w", col.Key, ErrMissingDisplay))
		}
	}

	return errors.Join(errs...)
}
