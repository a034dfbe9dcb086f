package usecase_test

import (
	"testing"
	"time"

	"github.com/runoshun/tasktracker/internal/domain"
	"github.com/runoshun/tasktracker/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixedNow is the reference moment used by use case tests.
var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

func newStore(t *testing.T, tasks ...[4]string) *domain.TaskStore {
	t.Helper()
	store := domain.NewTaskStore(&testutil.MockClock{NowTime: fixedNow})
	for _, f := range tasks {
		_, err := store.Add(f[0], f[1], f[2], f[3])
		require.NoError(t, err)
	}
	return store
}
