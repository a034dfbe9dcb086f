package domain

import "sync"

// TaskStore owns an insertion-ordered collection of tasks.
// Duplicate titles are allowed; uniqueness is only enforced by relational sinks.
type TaskStore struct {
	clock Clock
	tasks []*Task
	mu    sync.Mutex
}

// NewTaskStore creates an empty store. A nil clock means RealClock.
func NewTaskStore(clock Clock) *TaskStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &TaskStore{clock: clock}
}

// RestoreStore rebuilds a store from snapshot records, preserving their order.
func RestoreStore(clock Clock, records []TaskRecord) (*TaskStore, error) {
	s := NewTaskStore(clock)
	for _, rec := range records {
		t, err := RestoreTask(rec)
		if err != nil {
			return nil, err
		}
		s.tasks = append(s.tasks, t)
	}
	return s, nil
}

// Add constructs a task and appends it.
// On a *DateFormatError the store is left unchanged.
func (s *TaskStore) Add(title, dueDate, priority, category string) (*Task, error) {
	t, err := NewTask(title, dueDate, priority, category)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	c := *t
	return &c, nil
}

// Complete marks the earliest-inserted task whose normalized title matches.
// Later tasks with the same title are left untouched.
func (s *TaskStore) Complete(title string) (*Task, error) {
	key := Normalize(title)

	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findFirst(func(t *Task) bool { return t.matchesTitle(key) })
	if t == nil {
		return nil, ErrTaskNotFound
	}
	t.MarkComplete()
	c := *t
	return &c, nil
}

// findFirst scans in insertion order and returns the first task satisfying match.
// Callers must hold s.mu.
func (s *TaskStore) findFirst(match func(*Task) bool) *Task {
	for _, t := range s.tasks {
		if match(t) {
			return t
		}
	}
	return nil
}

// List returns copies of the tasks passing the filter, in insertion order.
// Unrecognized filters yield an empty slice.
func (s *TaskStore) List(filter Filter) []Task {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	result := []Task{}
	for _, t := range s.tasks {
		if filter.Matches(t, now) {
			result = append(result, *t)
		}
	}
	return result
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// ExportView returns one display row per task for file export.
func (s *TaskStore) ExportView() []ExportRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]ExportRow, 0, len(s.tasks))
	for _, t := range s.tasks {
		completed := "No"
		if t.completed {
			completed = "Yes"
		}
		rows = append(rows, ExportRow{
			Title:     TitleCase(t.title),
			DueDate:   t.DueDateString(),
			Priority:  TitleCase(t.priority),
			Category:  TitleCase(t.category),
			Completed: completed,
		})
	}
	return rows
}

// UpsertView returns one row per task for a sink keyed on (Title, DueDate).
func (s *TaskStore) UpsertView() []UpsertRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]UpsertRow, 0, len(s.tasks))
	for _, t := range s.tasks {
		rows = append(rows, UpsertRow{
			Title:     TitleCase(t.title),
			DueDate:   t.DueDateString(),
			Priority:  TitleCase(t.priority),
			Category:  TitleCase(t.category),
			Completed: t.completed,
		})
	}
	return rows
}

// Records returns the snapshot form of every task, in insertion order.
func (s *TaskStore) Records() []TaskRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]TaskRecord, 0, len(s.tasks))
	for _, t := range s.tasks {
		records = append(records, t.Record())
	}
	return records
}
