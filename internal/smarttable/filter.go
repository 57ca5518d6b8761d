package smarttable

import "sort"

// FilterOption is a declared status tag and its caller-facing label.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// StatusFunc derives a row's status tag.
type StatusFunc[T any] func(T) string

// FilterSet tracks which status tags are currently allowed.
//
// A new FilterSet allows every declared tag. Tags that were never declared
// may be allowed too; they simply match no rows unless the status extractor
// produces them.
type FilterSet struct {
	options []FilterOption
	allowed map[string]struct{}
}

// NewFilterSet creates a FilterSet with every declared option allowed.
func NewFilterSet(options []FilterOption) *FilterSet {
	f := &FilterSet{
		options: append([]FilterOption(nil), options...),
	}
	f.Reset()
	return f
}

// Reset allows every declared option again.
func (f *FilterSet) Reset() {
	f.allowed = make(map[string]struct{}, len(f.options))
	for _, opt := range f.options {
		f.allowed[opt.Value] = struct{}{}
	}
}

// SetAllowed replaces the allowed set. Calling it with no values is legal and
// makes every subsequent Apply return an empty slice.
func (f *FilterSet) SetAllowed(values ...string) {
	f.allowed = make(map[string]struct{}, len(values))
	for _, v := range values {
		f.allowed[v] = struct{}{}
	}
}

// Toggle flips membership of value and reports whether it is now allowed.
func (f *FilterSet) Toggle(value string) bool {
	if _, ok := f.allowed[value]; ok {
		delete(f.allowed, value)
		return false
	}
	f.allowed[value] = struct{}{}
	return true
}

// Allows reports whether rows tagged value pass the filter.
func (f *FilterSet) Allows(value string) bool {
	_, ok := f.allowed[value]
	return ok
}

// Allowed returns the allowed tags: declared options first in declaration
// order, then any undeclared tags sorted lexically.
func (f *FilterSet) Allowed() []string {
	result := make([]string, 0, len(f.allowed))
	declared := make(map[string]bool, len(f.options))
	for _, opt := range f.options {
		declared[opt.Value] = true
		if f.Allows(opt.Value) {
			result = append(result, opt.Value)
		}
	}

	var extra []string
	for v := range f.allowed {
		if !declared[v] {
			extra = append(extra, v)
		}
	}
	sort.Strings(extra)

	return append(result, extra...)
}

// Options returns the declared filter options.
func (f *FilterSet) Options() []FilterOption {
	return append([]FilterOption(nil), f.options...)
}

// AllAllowed reports whether every declared option is allowed.
func (f *FilterSet) AllAllowed() bool {
	for _, opt := range f.options {
		if !f.Allows(opt.Value) {
			return false
		}
	}
	return true
}

// Apply returns the rows whose status tag is allowed, preserving their
// relative order. The input slice is never modified. A nil FilterSet or nil
// status extractor disables filtering and returns a copy of rows.
func Apply[T any](f *FilterSet, rows []T, status StatusFunc[T]) []T {
	if f == nil || status == nil {
		return append(make([]T, 0, len(rows)), rows...)
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		if f.Allows(status(row)) {
			result = append(result, row)
		}
	}
	return result
}
