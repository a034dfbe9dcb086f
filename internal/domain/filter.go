package domain

import (
	"strings"
	"time"
)

// Filter selects which tasks List returns.
type Filter string

const (
	FilterAll       Filter = "all"       // Every task
	FilterPending   Filter = "pending"   // Not completed
	FilterCompleted Filter = "completed" // Completed
	FilterOverdue   Filter = "overdue"   // Pending and past its due date
)

// AllFilters returns the recognized filter values.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterPending, FilterCompleted, FilterOverdue}
}

// ParseFilter trims and lower-cases s. The result may be an unrecognized filter;
// List treats those as matching nothing.
func ParseFilter(s string) Filter {
	return Filter(strings.ToLower(strings.TrimSpace(s)))
}

// IsValid returns true if the filter is a recognized value.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterPending, FilterCompleted, FilterOverdue:
		return true
	default:
		return false
	}
}

// Matches reports whether the task passes the filter at the given moment.
func (f Filter) Matches(t *Task, now time.Time) bool {
	switch f {
	case FilterAll:
		return true
	case FilterPending:
		return !t.completed
	case FilterCompleted:
		return t.completed
	case FilterOverdue:
		return t.IsOverdue(now)
	default:
		return false
	}
}
