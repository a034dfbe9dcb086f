package cli

import (
	"bytes"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/runoshun/tasktracker/internal/app"
	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/runoshun/tasktracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is the fixed clock used by command tests.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

func newTestContainer(t *testing.T) (*app.Container, *testutil.MockSnapshotRepository) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	clock := &testutil.MockClock{NowTime: testNow}
	snapshots := &testutil.MockSnapshotRepository{}
	container := app.NewWithDeps(
		app.Config{WorkDir: t.TempDir()},
		domain.NewTaskStore(clock),
		snapshots,
		clock,
		logger,
	)
	container.ConfigLoader = testutil.NewMockConfigLoader()
	container.ConfigManager = testutil.NewMockConfigManager()
	return container, snapshots
}

func seedTasks(t *testing.T, c *app.Container, tasks ...[4]string) {
	t.Helper()
	for _, f := range tasks {
		_, err := c.Store.Add(f[0], f[1], f[2], f[3])
		require.NoError(t, err)
	}
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestNewAddCommand_AddsTask(t *testing.T) {
	container, snapshots := newTestContainer(t)

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Pay", "rent", "--due", "2025-07-01", "--priority", "High", "--category", "Home"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task added successfully.\n", buf.String())
	tasks := container.Store.List(domain.FilterAll)
	require.Len(t, tasks, 1)
	assert.Equal(t, "pay rent", tasks[0].Title())
	assert.Equal(t, "high", tasks[0].Priority())
	assert.Len(t, snapshots.Records, 1)
}

func TestNewAddCommand_InvalidDate(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "--due", "2025/07/01", "--category", "home"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidDueDate)
	assert.Equal(t, 0, container.Store.Len())
}

func TestNewAddCommand_InvalidCategory(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "--due", "2025-07-01", "--category", "home&work"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestNewAddCommand_RequiresDue(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "--category", "home"})

	assert.Error(t, cmd.Execute())
}

// =============================================================================
// Complete Command Tests
// =============================================================================

func TestNewCompleteCommand_CompletesFirstMatch(t *testing.T) {
	container, _ := newTestContainer(t)
	seedTasks(t, container,
		[4]string{"report", "2025-05-01", "high", "work"},
		[4]string{"report", "2025-05-02", "low", "work"},
	)

	cmd := newCompleteCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"REPORT"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Task marked as complete.\n", buf.String())
	tasks := container.Store.List(domain.FilterAll)
	assert.True(t, tasks[0].Completed())
	assert.False(t, tasks[1].Completed())
}

func TestNewCompleteCommand_NotFound(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newCompleteCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"missing"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestNewListCommand_Filters(t *testing.T) {
	container, _ := newTestContainer(t)
	seedTasks(t, container,
		[4]string{"old bill", "2025-05-01", "high", "home"},
		[4]string{"future trip", "2025-07-01", "low", "travel"},
	)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all",
			args: nil,
			want: "=== Task List ===\n" +
				"Old Bill | Due: 2025-05-01 | Priority: High | Category: Home | Status: Pending\n" +
				"Future Trip | Due: 2025-07-01 | Priority: Low | Category: Travel | Status: Pending\n\n",
		},
		{
			name: "overdue",
			args: []string{"--filter", "overdue"},
			want: "=== Task List ===\n" +
				"Old Bill | Due: 2025-05-01 | Priority: High | Category: Home | Status: Pending\n\n",
		},
		{
			name: "completed",
			args: []string{"-f", "completed"},
			want: "=== Task List ===\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newListCommand(container)
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNewListCommand_UnknownFilterWarns(t *testing.T) {
	container, _ := newTestContainer(t)
	seedTasks(t, container, [4]string{"a", "2025-05-01", "high", "home"})

	cmd := newListCommand(container)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--filter", "someday"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "=== Task List ===\n\n", out.String())
	assert.Contains(t, errOut.String(), `unknown filter "someday"`)
	assert.Contains(t, errOut.String(), "all/pending/completed/overdue")
}

// =============================================================================
// Analytics Command Tests
// =============================================================================

func TestNewAnalyticsCommand(t *testing.T) {
	container, _ := newTestContainer(t)
	seedTasks(t, container,
		[4]string{"a", "2025-05-01", "high", "work"},
		[4]string{"b", "2025-05-01", "high", "home"},
		[4]string{"c", "2025-05-01", "high", "work"},
		[4]string{"d", "2025-05-01", "high", "errands"},
	)
	_, err := container.Store.Complete("a")
	require.NoError(t, err)

	cmd := newAnalyticsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "=== Task Analytics ===\n"+
		"Total tasks: 4\n"+
		"Completed: 1 (25.00%)\n"+
		"Most common category: Work (2 times)\n\n", buf.String())
}

func TestNewAnalyticsCommand_Empty(t *testing.T) {
	container, _ := newTestContainer(t)

	cmd := newAnalyticsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "=== Task Analytics ===\nTotal tasks: 0\nCompleted: 0\n\n", buf.String())
}
