package services

import (
	"fmt"
	"strings"

	"github.com/kerbaras/mangatracker/pkg/data"
)

// StatusFilter is either FilterAll or one of the entry statuses.
type StatusFilter string

const FilterAll StatusFilter = "all"

func FilterFor(s data.Status) StatusFilter {
	return StatusFilter(s)
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" || StatusFilter(s) == FilterAll {
		return FilterAll, nil
	}
	status, err := data.ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("invalid status filter: %w", err)
	}
	return FilterFor(status), nil
}

func (f StatusFilter) Matches(s data.Status) bool {
	return f == FilterAll || data.Status(f) == s
}

func (f StatusFilter) Label() string {
	if f == FilterAll {
		return "All Status"
	}
	return data.Status(f).Label()
}

// Next cycles all -> reading -> completed -> plan-to-read -> dropped -> all.
func (f StatusFilter) Next() StatusFilter {
	order := append([]StatusFilter{FilterAll}, statusFilters()...)
	for i, candidate := range order {
		if candidate == f {
			return order[(i+1)%len(order)]
		}
	}
	return FilterAll
}

func statusFilters() []StatusFilter {
	statuses := data.Statuses()
	filters := make([]StatusFilter, len(statuses))
	for i, s := range statuses {
		filters[i] = FilterFor(s)
	}
	return filters
}

// Filter keeps the entries whose title contains searchTerm (case-insensitively)
// and whose status passes filter. Input order is preserved.
func Filter(entries []data.Entry, searchTerm string, filter StatusFilter) []data.Entry {
	needle := strings.ToLower(searchTerm)

	result := make([]data.Entry, 0, len(entries))
	for _, e := range entries {
		if !strings.Contains(strings.ToLower(e.Title), needle) {
			continue
		}
		if !filter.Matches(e.Status) {
			continue
		}
		result = append(result, e)
	}
	return result
}
