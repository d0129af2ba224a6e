// Package query holds the pagination, filter and sort helpers shared by the
// read usecases. None of them modify their input.
package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Paginate returns the items of a 1-based page. Pages past the end, a page
// below 1 or a non-positive size give an empty slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// Filter returns the items accepted by keep, in order
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

// Contains reports whether value is one of set; an empty set matches all
func Contains(set []string, value string) bool {
	return len(set) == 0 || slices.Contains(set, value)
}

// Direction of a sort
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortText returns a copy of items ordered by a text key, compared
// case-insensitively with English collation. Equal keys are ordered by id,
// so descending is the exact reverse of ascending.
func SortText[T any](items []T, key func(T) string, id func(T) int, dir Direction) []T {
	col := collate.New(language.English, collate.IgnoreCase)
	return sortBy(items, func(a, b T) int {
		if c := col.CompareString(key(a), key(b)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	}, dir)
}

// SortNumber returns a copy of items ordered by a numeric key, ties by id
func SortNumber[T any](items []T, key func(T) float64, id func(T) int, dir Direction) []T {
	return sortBy(items, func(a, b T) int {
		if c := cmp.Compare(key(a), key(b)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	}, dir)
}

func sortBy[T any](items []T, compare func(a, b T) int, dir Direction) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		if dir == Descending {
			return -compare(a, b)
		}
		return compare(a, b)
	})
	return out
}
