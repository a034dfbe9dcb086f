package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktracker/internal/domain"
)

// ExportTasksInput contains the input for the ExportTasks use case.
type ExportTasksInput struct{}

// ExportTasksOutput contains the result of exporting tasks.
type ExportTasksOutput struct {
	Count int // Number of rows written (excluding header)
}

// ExportTasks writes the export view to a sink.
type ExportTasks struct {
	store  *domain.TaskStore
	sink   domain.ExportSink
	logger domain.Logger
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(store *domain.TaskStore, sink domain.ExportSink, logger domain.Logger) *ExportTasks {
	return &ExportTasks{
		store:  store,
		sink:   sink,
		logger: logger,
	}
}

// Execute exports every task.
func (uc *ExportTasks) Execute(ctx context.Context, _ ExportTasksInput) (*ExportTasksOutput, error) {
	rows := uc.store.ExportView()
	if err := uc.sink.Export(ctx, rows); err != nil {
		if uc.logger != nil {
			uc.logger.Error("export", err.Error())
		}
		return nil, fmt.Errorf("export tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("export", fmt.Sprintf("exported %d tasks", len(rows)))
	}
	return &ExportTasksOutput{Count: len(rows)}, nil
}
