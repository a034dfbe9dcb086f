// Package cli provides the command-line interface for tasktracker.
package cli

import (
	"fmt"

	"github.com/runoshun/tasktracker/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupData  = "data"
	groupWeb   = "web"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for tasktracker.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasks",
		Short: "Personal task tracker",
		Long: `tasks keeps a personal list of tasks with due dates, priorities and categories.

Tasks can be completed, filtered, summarized, exported to CSV and saved
to a SQLite or PostgreSQL database. Run without arguments to open the
interactive menu.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.Settings == nil {
				return nil
			}
			for _, w := range c.Settings.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupData, Title: "Export & Storage:"},
		&cobra.Group{ID: groupWeb, Title: "Web:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	completeCmd := newCompleteCommand(c)
	completeCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	analyticsCmd := newAnalyticsCommand(c)
	analyticsCmd.GroupID = groupTask

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	saveCmd := newSaveCommand(c)
	saveCmd.GroupID = groupData

	suggestCmd := newSuggestCommand(c)
	suggestCmd.GroupID = groupWeb

	scrapeCmd := newScrapeCommand(c)
	scrapeCmd.GroupID = groupWeb

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		completeCmd,
		listCmd,
		analyticsCmd,
		exportCmd,
		saveCmd,
		suggestCmd,
		scrapeCmd,
		configCmd,
		tuiCmd,
	)

	return root
}
