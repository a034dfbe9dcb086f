package tui

import (
	"log/slog"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/tasktracker/internal/app"
	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/runoshun/tasktracker/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

func newTestModel(t *testing.T) (*Model, *app.Container) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	clock := &testutil.MockClock{NowTime: testNow}
	c := app.NewWithDeps(
		app.Config{WorkDir: t.TempDir()},
		domain.NewTaskStore(clock),
		&testutil.MockSnapshotRepository{},
		clock,
		logger,
	)
	return New(c), c
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeAnswer enters text into the prompt and submits it.
func typeAnswer(t *testing.T, m *Model, text string) tea.Cmd {
	t.Helper()
	if text != "" {
		_, _ = m.Update(keyRunes(text))
	}
	_, cmd := m.Update(keyType(tea.KeyEnter))
	return cmd
}

// runCmd executes cmd and feeds the resulting message back into the model.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, _ = m.Update(msg)
	return msg
}
