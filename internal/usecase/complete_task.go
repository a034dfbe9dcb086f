package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktracker/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Title string // Title to match (trimmed and case-folded before comparison)
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task *domain.Task // Copy of the completed task
}

// CompleteTask is the use case for marking a task as complete.
// Only the earliest task with a matching title is completed.
type CompleteTask struct {
	store     *domain.TaskStore
	snapshots domain.SnapshotRepository
	logger    domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(store *domain.TaskStore, snapshots domain.SnapshotRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		store:     store,
		snapshots: snapshots,
		logger:    logger,
	}
}

// Execute completes the task and saves the snapshot.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	task, err := uc.store.Complete(in.Title)
	if err != nil {
		return nil, fmt.Errorf("complete %q: %w", in.Title, err)
	}

	if err := saveSnapshot(uc.snapshots, uc.store); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("completed: %q", task.Title()))
	}

	return &CompleteTaskOutput{Task: task}, nil
}
