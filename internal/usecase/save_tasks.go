package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktracker/internal/domain"
)

// SaveTasksInput contains the input for the SaveTasks use case.
type SaveTasksInput struct{}

// SaveTasksOutput contains the result of saving tasks.
type SaveTasksOutput struct {
	Count int // Number of rows upserted
}

// SaveTasks upserts the store into a relational sink.
type SaveTasks struct {
	store  *domain.TaskStore
	open   domain.UpsertSinkOpener
	logger domain.Logger
}

// NewSaveTasks creates a new SaveTasks use case.
func NewSaveTasks(store *domain.TaskStore, open domain.UpsertSinkOpener, logger domain.Logger) *SaveTasks {
	return &SaveTasks{
		store:  store,
		open:   open,
		logger: logger,
	}
}

// Execute opens the sink, upserts every task in one batch and closes the sink.
func (uc *SaveTasks) Execute(ctx context.Context, _ SaveTasksInput) (out *SaveTasksOutput, err error) {
	sink, err := uc.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			out = nil
			err = fmt.Errorf("close database: %w", cerr)
		}
	}()

	rows := uc.store.UpsertView()
	if err := sink.Upsert(ctx, rows); err != nil {
		if uc.logger != nil {
			uc.logger.Error("save", err.Error())
		}
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("save", fmt.Sprintf("saved %d tasks", len(rows)))
	}
	return &SaveTasksOutput{Count: len(rows)}, nil
}
