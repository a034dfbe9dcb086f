package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tasktracker/internal/app"
	"github.com/runoshun/tasktracker/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies
	container *app.Container
	err       error

	// State
	answers []string
	output  *MsgActionDone

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Numeric state
	mode   Mode
	action Action
	cursor int
	width  int
	height int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.CharLimit = 500

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		input:     ti,
		mode:      ModeMenu,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// now returns the container clock's time.
func (m *Model) now() time.Time {
	if m.container == nil || m.container.Clock == nil {
		return time.Now()
	}
	return m.container.Clock.Now()
}

// runAction returns a command executing the action with the collected answers.
func (m *Model) runAction(action Action, answers []string) tea.Cmd {
	c := m.container
	return func() tea.Msg {
		ctx := context.Background()
		switch action {
		case ActionAdd:
			if _, err := c.AddTaskUseCase().Execute(ctx, usecase.AddTaskInput{
				Title:    answers[0],
				DueDate:  answers[1],
				Priority: answers[2],
				Category: answers[3],
			}); err != nil {
				return MsgError{Err: err}
			}
			return MsgActionDone{Lines: []string{"Task added successfully."}}

		case ActionComplete:
			if _, err := c.CompleteTaskUseCase().Execute(ctx, usecase.CompleteTaskInput{Title: answers[0]}); err != nil {
				return MsgError{Err: err}
			}
			return MsgActionDone{Lines: []string{"Task marked as complete."}}

		case ActionList:
			out, err := c.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Filter: answers[0]})
			if err != nil {
				return MsgError{Err: err}
			}
			done := MsgActionDone{Title: "Task List", Tasks: out.Tasks}
			if out.UnknownFilter {
				done.Lines = []string{fmt.Sprintf("Unknown filter %q.", answers[0])}
			} else if len(out.Tasks) == 0 {
				done.Lines = []string{"No tasks."}
			}
			return done

		case ActionAnalytics:
			out, err := c.ShowAnalyticsUseCase().Execute(ctx, usecase.ShowAnalyticsInput{})
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgActionDone{Title: "Task Analytics", Lines: out.Analytics.Lines()}

		case ActionExport:
			path := c.ExportPath()
			if _, err := c.ExportTasksUseCase(path).Execute(ctx, usecase.ExportTasksInput{}); err != nil {
				return MsgError{Err: err}
			}
			return MsgActionDone{Lines: []string{"Tasks exported to " + path}}

		case ActionSave:
			driver, dsn := c.DatabaseTarget("", "")
			out, err := c.SaveTasksUseCase(driver, dsn).Execute(ctx, usecase.SaveTasksInput{})
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgActionDone{Lines: []string{fmt.Sprintf("Saved %d tasks to %s database.", out.Count, driver)}}

		case ActionSuggest:
			out, err := c.SuggestTaskUseCase().Execute(ctx, usecase.SuggestTaskInput{})
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgActionDone{Lines: []string{"Sample Task Suggestion: " + out.Title}}

		case ActionScrape:
			out, err := c.ScrapeTasksUseCase().Execute(ctx, usecase.ScrapeTasksInput{URL: answers[0]})
			if err != nil {
				return MsgError{Err: err}
			}
			if len(out.Items) == 0 {
				return MsgActionDone{Lines: []string{"No <li> elements found at that URL."}}
			}
			lines := make([]string, 0, len(out.Items))
			for i, item := range out.Items {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
			}
			return MsgActionDone{Title: "Scraped tasks", Lines: lines}
		}
		return nil
	}
}
