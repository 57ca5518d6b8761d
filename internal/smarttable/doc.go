// Package smarttable provides a data-agnostic sorting, filtering and grouping
// engine for tabular views.
//
// The engine accepts an arbitrary row type T, a set of column descriptors and
// an optional status filter, and produces a deterministically ordered view of
// the rows. It performs no I/O and never inspects a row directly: every access
// goes through column accessors, comparators and the caller's status extractor.
//
// # Sort Modes
//
// A [Table] is always in exactly one of two sort modes:
//
//   - Grouped: the caller-supplied grouped comparator orders the filtered rows
//     through a stable sort. By convention that comparator keeps every active
//     row ahead of every ended row (see [Partition] and [TimeRemainingComparator]).
//   - Column: a single column, ascending or descending. The column's [Ordering]
//     decides how: [ByComparator] runs a stable sort with the sign flipped for
//     descending order and the title column as tie-break; [ByOverride] hands the
//     whole filtered slice to the column and uses its result verbatim.
//
// # Filtering
//
// A [FilterSet] holds the currently allowed status tags. Rows whose extracted
// tag is not allowed are dropped before sorting. An empty allowed set yields an
// empty view, which is a valid terminal state rather than an error.
//
// # Value Normalization
//
// [ParseNumericValue] turns numbers and formatted numeric strings ("1,580",
// "₪ 1,234.56") into float64, mapping missing or unparsable input to negative
// infinity so it sinks to the bottom of an ascending sort. [CompareText]
// orders text with a locale-aware, case and punctuation insensitive collation
// that compares embedded digit runs numerically.
//
// Table is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
package smarttable
