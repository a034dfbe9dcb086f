package usecase

import (
	"context"

	"github.com/runoshun/tasktracker/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter string // all, pending, completed or overdue (empty = all)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Filter        domain.Filter // Parsed filter
	Tasks         []domain.Task // Matching tasks in insertion order
	UnknownFilter bool          // True when Filter is not a recognized value
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	store *domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store *domain.TaskStore) *ListTasks {
	return &ListTasks{store: store}
}

// Execute lists tasks matching the filter.
// An unrecognized filter is not an error; it simply matches nothing.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := domain.FilterAll
	if in.Filter != "" {
		filter = domain.ParseFilter(in.Filter)
	}

	return &ListTasksOutput{
		Filter:        filter,
		Tasks:         uc.store.List(filter),
		UnknownFilter: !filter.IsValid(),
	}, nil
}
