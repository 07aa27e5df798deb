package model

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are displayed
type Filter string

const (
	// FilterAll shows every task
	FilterAll Filter = "all"

	// FilterActive shows tasks that are not completed
	FilterActive Filter = "active"

	// FilterCompleted shows completed tasks only
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// String returns the string representation of Filter
func (f Filter) String() string {
	return string(f)
}

// Matches returns true if the task belongs to the filtered subset.
// Unknown filters behave like FilterAll.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next returns the filter following f in display order, wrapping around
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// ParseFilter parses a filter name case-insensitively
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return f, nil
	case "":
		return FilterAll, nil
	}
	return FilterAll, fmt.Errorf("unknown filter: %q (want all, active or completed)", s)
}
