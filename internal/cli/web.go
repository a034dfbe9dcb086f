package cli

import (
	"fmt"

	"github.com/runoshun/tasktracker/internal/app"
	"github.com/runoshun/tasktracker/internal/usecase"
	"github.com/spf13/cobra"
)

// addFlags holds the task fields used when a fetched title is added as a task.
type addFlags struct {
	Due      string
	Priority string
	Category string
	Add      bool
}

func (f *addFlags) register(cmd *cobra.Command, what string) {
	cmd.Flags().BoolVar(&f.Add, "add", false, "Add "+what+" as tasks")
	cmd.Flags().StringVarP(&f.Due, "due", "d", "", "Due date (YYYY-MM-DD) for added tasks")
	cmd.Flags().StringVarP(&f.Priority, "priority", "p", "medium", "Priority for added tasks")
	cmd.Flags().StringVarP(&f.Category, "category", "c", "", "Category for added tasks")
}

// newSuggestCommand creates the suggest command.
func newSuggestCommand(c *app.Container) *cobra.Command {
	var flags addFlags

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get a task suggestion from the web",
		Long: `Fetch a sample task title from [fetch] suggestion_url and print it.

With --add the suggestion is also added as a task.

Examples:
  tasks suggest
  tasks suggest --add --due 2025-07-01 --category home`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.SuggestTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SuggestTaskInput{
				Add:      flags.Add,
				DueDate:  flags.Due,
				Priority: flags.Priority,
				Category: flags.Category,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Sample Task Suggestion: %s\n", out.Title)
			if out.Task != nil {
				_, _ = fmt.Fprintln(w, "Task added successfully.")
			}
			return nil
		},
	}

	flags.register(cmd, "the suggestion")

	return cmd
}

// newScrapeCommand creates the scrape command.
func newScrapeCommand(c *app.Container) *cobra.Command {
	var flags addFlags

	cmd := &cobra.Command{
		Use:   "scrape <url>",
		Short: "Scrape list items from a web page",
		Long: `Fetch a web page and print the text of every <li> element in document order.

With --add every non-empty item is added as a task sharing the given
due date, priority and category.

Examples:
  tasks scrape https://example.com/todo
  tasks scrape https://example.com/todo --add --due 2025-07-01 --category chores`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ScrapeTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ScrapeTasksInput{
				URL:      args[0],
				Add:      flags.Add,
				DueDate:  flags.Due,
				Priority: flags.Priority,
				Category: flags.Category,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Items) == 0 {
				_, _ = fmt.Fprintln(w, "No <li> elements found at that URL.")
				return nil
			}
			_, _ = fmt.Fprintln(w, "Scraped tasks:")
			for i, item := range out.Items {
				_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, item)
			}
			if flags.Add {
				_, _ = fmt.Fprintf(w, "Added %d tasks.\n", len(out.Added))
			}
			return nil
		},
	}

	flags.register(cmd, "scraped items")

	return cmd
}
