package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/tasktracker/internal/app"
	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/runoshun/tasktracker/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Due      string
		Priority string
		Category string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Long: `Add a task with a due date, priority and category.

Title, priority and category are stored trimmed and case-insensitively.
The due date must be a real calendar date in YYYY-MM-DD form.
Categories may contain only letters, digits and spaces.

Examples:
  tasks add "Pay rent" --due 2025-07-01 --priority high --category home
  tasks add "Review PR" --due 2025-07-02 --category work`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddTaskUseCase()
			_, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Title:    strings.Join(args, " "),
				DueDate:  opts.Due,
				Priority: opts.Priority,
				Category: opts.Category,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Task added successfully.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "Due date (YYYY-MM-DD) (required)")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "medium", "Priority (high/medium/low)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category (required)")
	_ = cmd.MarkFlagRequired("due")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

// newCompleteCommand creates the complete command.
func newCompleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <title>",
		Short: "Mark a task as complete",
		Long: `Mark the earliest-added task with the given title as complete.

Titles are matched case-insensitively after trimming. When several tasks
share a title only the first one is completed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.CompleteTaskUseCase()
			_, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				Title: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Task marked as complete.")
			return nil
		},
	}
	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks in the order they were added.

Filters:
  all        every task (default)
  pending    tasks not yet completed
  completed  completed tasks
  overdue    pending tasks whose due date has passed

Examples:
  tasks list
  tasks list --filter overdue`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			if out.UnknownFilter {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s %q (use %s)\n",
					domain.ErrUnknownFilter, filter, joinFilters())
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", string(domain.FilterAll), "Filter: "+joinFilters())

	return cmd
}

// joinFilters returns the recognized filters separated by slashes.
func joinFilters() string {
	filters := domain.AllFilters()
	names := make([]string, 0, len(filters))
	for _, f := range filters {
		names = append(names, string(f))
	}
	return strings.Join(names, "/")
}

// printTaskList prints tasks one per line under a heading.
func printTaskList(w io.Writer, tasks []domain.Task) {
	_, _ = fmt.Fprintln(w, "=== Task List ===")
	for i := range tasks {
		_, _ = fmt.Fprintln(w, tasks[i].String())
	}
	_, _ = fmt.Fprintln(w)
}

// newAnalyticsCommand creates the analytics command.
func newAnalyticsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show task analytics",
		Long: `Show the total number of tasks, how many are completed and the most
common category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowAnalyticsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowAnalyticsInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "=== Task Analytics ===")
			for _, line := range out.Analytics.Lines() {
				_, _ = fmt.Fprintln(w, line)
			}
			_, _ = fmt.Fprintln(w)
			return nil
		},
	}
	return cmd
}
