// Package tabular is the shared list-view engine: search, filter,
// sort and paginate an in-memory record set. Every list endpoint
// (parcels, orders, users) funnels through it with its own field
// configuration instead of re-implementing the pipeline.
package tabular

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel filter value that matches every record.
const FilterAll = "all"

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Sort struct {
	Key       string
	Direction Direction
}

// Query carries the caller-supplied list-view parameters. Zero values
// degrade to permissive defaults: empty search matches everything,
// absent filters are ignored, an unset sort key keeps input order.
type Query struct {
	Search   string
	Filters  map[string]string
	Sort     Sort
	Page     int
	PageSize int
}

// Fields is the per-view configuration: which string fields the
// substring search scans, which accessor backs each filter key, and
// which comparator backs each sort key.
type Fields[T any] struct {
	Search []func(T) string
	Filter map[string]func(T) string
	Sort   map[string]func(a, b T) int
}

type Result[T any] struct {
	Rows       []T
	TotalCount int
	TotalPages int
}

// Paginate applies search, filters, sort and pagination in that order
// and returns the page slice plus totals. It never mutates records and
// is deterministic: identical inputs produce identical output. An
// out-of-range page yields an empty Rows slice, not an error.
func Paginate[T any](records []T, q Query, f Fields[T]) Result[T] {
	matched := make([]T, 0, len(records))
	for _, rec := range records {
		if matchesSearch(rec, q.Search, f.Search) && matchesFilters(rec, q.Filters, f.Filter) {
			matched = append(matched, rec)
		}
	}

	sortRecords(matched, q.Sort, f.Sort)

	totalCount := len(matched)
	totalPages := 0
	if q.PageSize > 0 {
		totalPages = (totalCount + q.PageSize - 1) / q.PageSize
	}

	return Result[T]{
		Rows:       pageSlice(matched, q.Page, q.PageSize),
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

func matchesSearch[T any](rec T, search string, fields []func(T) string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(rec)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](rec T, filters map[string]string, fields map[string]func(T) string) bool {
	for key, want := range filters {
		if want == "" || want == FilterAll {
			continue
		}
		field, ok := fields[key]
		if !ok {
			// Unknown filter keys degrade to permissive, not to empty results.
			continue
		}
		if field(rec) != want {
			return false
		}
	}
	return true
}

func sortRecords[T any](records []T, s Sort, comparators map[string]func(a, b T) int) {
	if s.Key == "" {
		return
	}
	cmp, ok := comparators[s.Key]
	if !ok {
		return
	}

	// SliceStable keeps the original relative order among equal keys.
	sort.SliceStable(records, func(i, j int) bool {
		c := cmp(records[i], records[j])
		if s.Direction == Desc {
			return c > 0
		}
		return c < 0
	})
}

func pageSlice[T any](records []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return records
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(records) {
		return []T{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
