// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/runoshun/tasktracker/internal/domain"
)

// categoryPattern is the accepted shape of a normalized category.
var categoryPattern = regexp.MustCompile(`^[a-z0-9 ]+$`)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Title    string // Task title (required)
	DueDate  string // Due date in YYYY-MM-DD
	Priority string // Free-form priority (e.g. low, medium, high)
	Category string // Letters, digits and spaces only
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task *domain.Task // Copy of the added task
}

// AddTask is the use case for adding a task.
type AddTask struct {
	store     *domain.TaskStore
	snapshots domain.SnapshotRepository
	logger    domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store *domain.TaskStore, snapshots domain.SnapshotRepository, logger domain.Logger) *AddTask {
	return &AddTask{
		store:     store,
		snapshots: snapshots,
		logger:    logger,
	}
}

// Execute validates the input, adds the task and saves the snapshot.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if err := ValidateTaskFields(in.Title, in.Category); err != nil {
		return nil, err
	}

	task, err := uc.store.Add(in.Title, in.DueDate, in.Priority, in.Category)
	if err != nil {
		return nil, err
	}

	if err := saveSnapshot(uc.snapshots, uc.store); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added: %q due %s", task.Title(), task.DueDateString()))
	}

	return &AddTaskOutput{Task: task}, nil
}

// ValidateTaskFields applies the input rules enforced before a task reaches the store.
func ValidateTaskFields(title, category string) error {
	if strings.TrimSpace(title) == "" {
		return domain.ErrEmptyTitle
	}
	return validateCategory(category)
}

func validateCategory(category string) error {
	if !categoryPattern.MatchString(domain.Normalize(category)) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCategory, category)
	}
	return nil
}
