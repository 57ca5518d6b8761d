package smarttable

import (
	"fmt"
	"strings"
)

// Direction describes the order to sort a column by.
type Direction string

const (
	// Asc sorts smallest first (א-ת, 0-9).
	Asc Direction = "asc"

	// Desc sorts largest first.
	Desc Direction = "desc"
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// Valid reports whether d is Asc or Desc.
func (d Direction) Valid() bool {
	return d == Asc || d == Desc
}

// apply flips the sign of a comparison result for descending order.
func (d Direction) apply(c int) int {
	if d == Desc {
		return -c
	}
	return c
}

// ParseDirection converts user input into a Direction.
// Matching is case-insensitive; an empty string means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Asc, nil
	case "desc", "descending":
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// SortState is either the grouped default (no column) or a single column
// sorted in one direction. There is no multi-column sort.
type SortState struct {
	Column    string
	Direction Direction
}

// Grouped returns the implicit grouped sort state.
func Grouped() SortState {
	return SortState{}
}

// ByColumn returns an explicit column sort state.
func ByColumn(key string, dir Direction) SortState {
	return SortState{Column: key, Direction: dir}
}

// IsGrouped reports whether no explicit column is active.
func (s SortState) IsGrouped() bool {
	return s.Column == ""
}

// Active reports whether column key is sorted in direction dir.
// Useful for highlighting the active sort control.
func (s SortState) Active(key string, dir Direction) bool {
	return !s.IsGrouped() && s.Column == key && s.Direction == dir
}

func (s SortState) String() string {
	if s.IsGrouped() {
		return "grouped"
	}
	return s.Column + " " + string(s.Direction)
}
