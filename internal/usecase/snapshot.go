package usecase

import (
	"fmt"

	"github.com/runoshun/tasktracker/internal/domain"
)

// saveSnapshot persists the current store contents. A nil repository is a no-op.
func saveSnapshot(snapshots domain.SnapshotRepository, store *domain.TaskStore) error {
	if snapshots == nil {
		return nil
	}
	if err := snapshots.Save(store.Records()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
