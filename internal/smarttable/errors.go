package smarttable

import "errors"

// Column model errors are reported by [ValidateColumns] and [NewTable].
var (
	ErrEmptyColumnKey     = errors.New("column key is empty")
	ErrDuplicateColumn    = errors.New("duplicate column key")
	ErrMissingDisplay     = errors.New("column has no display accessor")
	ErrUnknownTitleColumn = errors.New("title column not found")
)

// Sort state errors are reported by [Table.SetSort] and [ParseDirection].
var (
	ErrUnknownColumn    = errors.New("unknown sort column")
	ErrNotSortable      = errors.New("column is not sortable")
	ErrInvalidDirection = errors.New("invalid sort direction")
)
