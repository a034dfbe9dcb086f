package usecase

import (
	"context"

	"github.com/runoshun/tasktracker/internal/domain"
)

// ShowAnalyticsInput contains the input for the ShowAnalytics use case.
type ShowAnalyticsInput struct{}

// ShowAnalyticsOutput contains the output of the ShowAnalytics use case.
type ShowAnalyticsOutput struct {
	Analytics domain.Analytics
}

// ShowAnalytics summarizes the store.
type ShowAnalytics struct {
	store *domain.TaskStore
}

// NewShowAnalytics creates a new ShowAnalytics use case.
func NewShowAnalytics(store *domain.TaskStore) *ShowAnalytics {
	return &ShowAnalytics{store: store}
}

// Execute computes the analytics.
func (uc *ShowAnalytics) Execute(_ context.Context, _ ShowAnalyticsInput) (*ShowAnalyticsOutput, error) {
	return &ShowAnalyticsOutput{Analytics: uc.store.Analytics()}, nil
}
