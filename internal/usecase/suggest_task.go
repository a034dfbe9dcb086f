package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasktracker/internal/domain"
)

// SuggestTaskInput contains the parameters for fetching a suggestion.
// When Add is set, the suggestion is added as a task with the given fields.
type SuggestTaskInput struct {
	DueDate  string
	Priority string
	Category string
	Add      bool
}

// SuggestTaskOutput contains the fetched suggestion.
type SuggestTaskOutput struct {
	Task  *domain.Task // Added task (nil unless Add was requested)
	Title string       // Suggested title, title-cased for display
}

// SuggestTask fetches a task suggestion from a remote source.
type SuggestTask struct {
	source  domain.SuggestionSource
	addTask *AddTask
	logger  domain.Logger
}

// NewSuggestTask creates a new SuggestTask use case.
// addTask may be nil when suggestions are only displayed.
func NewSuggestTask(source domain.SuggestionSource, addTask *AddTask, logger domain.Logger) *SuggestTask {
	return &SuggestTask{
		source:  source,
		addTask: addTask,
		logger:  logger,
	}
}

// Execute fetches the suggestion and optionally adds it.
func (uc *SuggestTask) Execute(ctx context.Context, in SuggestTaskInput) (*SuggestTaskOutput, error) {
	title, err := uc.source.Suggest(ctx)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("suggest", err.Error())
		}
		return nil, fmt.Errorf("fetch suggestion: %w", err)
	}

	out := &SuggestTaskOutput{Title: domain.TitleCase(title)}
	if !in.Add || uc.addTask == nil {
		return out, nil
	}

	added, err := uc.addTask.Execute(ctx, AddTaskInput{
		Title:    title,
		DueDate:  in.DueDate,
		Priority: in.Priority,
		Category: in.Category,
	})
	if err != nil {
		return nil, err
	}
	out.Task = added.Task
	return out, nil
}
