package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/tasktracker/internal/domain"
)

// ScrapeTasksInput contains the parameters for scraping a page.
// When Add is set, every non-empty item becomes a task with the shared fields.
type ScrapeTasksInput struct {
	URL      string
	DueDate  string
	Priority string
	Category string
	Add      bool
}

// ScrapeTasksOutput contains the scraped items.
type ScrapeTasksOutput struct {
	Items []string       // List item texts in document order
	Added []*domain.Task // Tasks added from the items (empty unless Add was requested)
}

// ScrapeTasks extracts list items from a web page.
type ScrapeTasks struct {
	scraper domain.PageScraper
	addTask *AddTask
	logger  domain.Logger
}

// NewScrapeTasks creates a new ScrapeTasks use case.
// addTask may be nil when items are only displayed.
func NewScrapeTasks(scraper domain.PageScraper, addTask *AddTask, logger domain.Logger) *ScrapeTasks {
	return &ScrapeTasks{
		scraper: scraper,
		addTask: addTask,
		logger:  logger,
	}
}

// Execute scrapes the page and optionally adds the items as tasks.
// Shared fields are validated before anything is added.
func (uc *ScrapeTasks) Execute(ctx context.Context, in ScrapeTasksInput) (*ScrapeTasksOutput, error) {
	if strings.TrimSpace(in.URL) == "" {
		return nil, fmt.Errorf("scrape: url is required")
	}

	var validated bool
	if in.Add && uc.addTask != nil {
		if _, err := domain.ParseDueDate(in.DueDate); err != nil {
			return nil, err
		}
		if err := validateCategory(in.Category); err != nil {
			return nil, err
		}
		validated = true
	}

	items, err := uc.scraper.Scrape(ctx, in.URL)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("scrape", err.Error())
		}
		return nil, fmt.Errorf("scrape %s: %w", in.URL, err)
	}

	out := &ScrapeTasksOutput{Items: items, Added: []*domain.Task{}}
	if !validated {
		return out, nil
	}

	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		added, err := uc.addTask.Execute(ctx, AddTaskInput{
			Title:    item,
			DueDate:  in.DueDate,
			Priority: in.Priority,
			Category: in.Category,
		})
		if err != nil {
			return nil, err
		}
		out.Added = append(out.Added, added.Task)
	}

	if uc.logger != nil {
		uc.logger.Info("scrape", fmt.Sprintf("scraped %d items from %s, added %d", len(items), in.URL, len(out.Added)))
	}
	return out, nil
}
