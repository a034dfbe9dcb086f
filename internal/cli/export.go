package cli

import (
	"fmt"

	"github.com/runoshun/tasktracker/internal/app"
	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/runoshun/tasktracker/internal/usecase"
	"github.com/spf13/cobra"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks to CSV",
		Long: `Write every task to a CSV file with the header
Title, Due Date, Priority, Category, Completed.

The default path comes from [export] path in the config (tasks_export.csv).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := output
			if path == "" {
				path = c.ExportPath()
			}

			uc := c.ExportTasksUseCase(path)
			if _, err := uc.Execute(cmd.Context(), usecase.ExportTasksInput{}); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tasks exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default from config)")

	return cmd
}

// newSaveCommand creates the save command.
func newSaveCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Driver string
		DSN    string
	}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save tasks to a database",
		Long: `Upsert every task into the tasks table of a SQLite or PostgreSQL database.

Rows are keyed on (title, due date); saving again replaces existing rows.
Driver and DSN default to the [database] section of the config.

Examples:
  tasks save
  tasks save --dsn ./backup.db
  tasks save --driver postgres --dsn postgres://localhost/tasks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			driver, dsn := c.DatabaseTarget(opts.Driver, opts.DSN)

			uc := c.SaveTasksUseCase(driver, dsn)
			if _, err := uc.Execute(cmd.Context(), usecase.SaveTasksInput{}); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if driver == domain.DriverSQLite {
				_, _ = fmt.Fprintf(w, "Tasks saved to database '%s'.\n", dsn)
			} else {
				_, _ = fmt.Fprintf(w, "Tasks saved to %s database.\n", driver)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Driver, "driver", "", "Database driver: sqlite or postgres")
	cmd.Flags().StringVar(&opts.DSN, "dsn", "", "SQLite file path or PostgreSQL connection URL")

	return cmd
}
