package smarttable

import (
	"cmp"
	"slices"
	"time"
)

// Clock returns the current time. Time-dependent comparators take a Clock so
// that a recompute can be reproduced with a fixed instant.
type Clock func() time.Time

// NumericComparator compares the numeric value of accessor on each row.
// Formatted strings parse identically to their raw numbers, and missing
// values sort first in ascending order.
func NumericComparator[T any](accessor func(T) any) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(ParseNumericValue(accessor(a)), ParseNumericValue(accessor(b)))
	}
}

// TextComparator compares accessor on each row with [CompareText].
func TextComparator[T any](accessor func(T) string) Comparator[T] {
	return CollatedComparator(DefaultCollation, accessor)
}

// CollatedComparator compares accessor on each row with the given collation.
func CollatedComparator[T any](c *Collation, accessor func(T) string) Comparator[T] {
	return func(a, b T) int {
		return c.Compare(accessor(a), accessor(b))
	}
}

// TimeComparator compares the instants returned by accessor, earliest first.
func TimeComparator[T any](accessor func(T) time.Time) Comparator[T] {
	return func(a, b T) int {
		return accessor(a).Compare(accessor(b))
	}
}

// RemainingComparator compares the time left until each row's end, soonest
// to end first.
func RemainingComparator[T any](end func(T) time.Time, now Clock) Comparator[T] {
	return func(a, b T) int {
		t := now()
		return cmp.Compare(TimeRemaining(end(a), t), TimeRemaining(end(b), t))
	}
}

// TimeRemainingComparator orders live listings before concluded ones.
//
// Two active rows compare by time remaining, soonest first. Two ended rows
// compare by end time, most recently ended first. An active row always sorts
// before an ended one.
//
// Flipping the result for descending order would also flip the active/ended
// precedence. Wrap the comparator with [GroupedSort] to reverse only the
// order inside each group.
func TimeRemainingComparator[T any](end func(T) time.Time, active func(T) bool, now Clock) Comparator[T] {
	remaining := RemainingComparator(end, now)
	return func(a, b T) int {
		aActive, bActive := active(a), active(b)
		switch {
		case aActive && bActive:
			return remaining(a, b)
		case !aActive && !bActive:
			return end(b).Compare(end(a))
		case aActive:
			return -1
		default:
			return 1
		}
	}
}

// Chain combines comparators; the first non-zero result wins.
func Chain[T any](cmps ...Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		for _, c := range cmps {
			if c == nil {
				continue
			}
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Reverse inverts a comparator.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return -c(a, b)
	}
}

// Partition sorts rows in two buckets, active rows and ended rows, and
// concatenates them with the active bucket first. It is the building block
// for override columns that must keep the active-before-ended invariant
// under any direction.
type Partition[T any] struct {
	// Active reports whether a row belongs to the active bucket.
	Active func(T) bool

	// ActiveOrder orders the active bucket. Nil keeps input order.
	ActiveOrder Comparator[T]

	// EndedOrder orders the ended bucket. Nil keeps input order.
	EndedOrder Comparator[T]

	// FixedEnded keeps EndedOrder as-is for descending sorts instead of
	// flipping it.
	FixedEnded bool

	// Title breaks ties inside either bucket and is never flipped.
	Title Comparator[T]
}

// Sort arranges rows for direction dir. The input slice is reordered.
func (p Partition[T]) Sort(rows []T, dir Direction) []T {
	active := make([]T, 0, len(rows))
	ended := make([]T, 0, len(rows))
	for _, row := range rows {
		if p.Active(row) {
			active = append(active, row)
		} else {
			ended = append(ended, row)
		}
	}

	endedDir := dir
	if p.FixedEnded {
		endedDir = Asc
	}
	p.sortBucket(active, p.ActiveOrder, dir)
	p.sortBucket(ended, p.EndedOrder, endedDir)

	return append(rows[:0], append(active, ended...)...)
}

func (p Partition[T]) sortBucket(bucket []T, order Comparator[T], dir Direction) {
	if order == nil && p.Title == nil {
		return
	}
	slices.SortStableFunc(bucket, func(a, b T) int {
		if order != nil {
			if c := dir.apply(order(a, b)); c != 0 {
				return c
			}
		}
		if p.Title != nil {
			return p.Title(a, b)
		}
		return 0
	})
}

// GroupedSort returns an override that keeps active rows ahead of ended rows
// and applies cmp inside each group, flipped for descending order, with title
// as the unflipped tie-break. title may be nil.
func GroupedSort[T any](active func(T) bool, cmp Comparator[T], title Comparator[T]) OverrideFunc[T] {
	p := Partition[T]{
		Active:      active,
		ActiveOrder: cmp,
		EndedOrder:  cmp,
		Title:       title,
	}
	return p.Sort
}
