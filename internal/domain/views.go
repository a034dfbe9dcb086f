package domain

// ExportRow is a display-formatted task row handed to a file export sink.
type ExportRow struct {
	Title     string
	DueDate   string
	Priority  string
	Category  string
	Completed string // "Yes" or "No"
}

// ExportHeader is the header row written before export rows.
var ExportHeader = []string{"Title", "Due Date", "Priority", "Category", "Completed"}

// Fields returns the row in header order.
func (r ExportRow) Fields() []string {
	return []string{r.Title, r.DueDate, r.Priority, r.Category, r.Completed}
}

// UpsertRow is a task row for a relational sink.
// (Title, DueDate) is the uniqueness key; a later row with the same key replaces an earlier one.
type UpsertRow struct {
	Title     string
	DueDate   string
	Priority  string
	Category  string
	Completed bool
}

// CompletedInt returns 1 for completed rows and 0 otherwise.
func (r UpsertRow) CompletedInt() int {
	if r.Completed {
		return 1
	}
	return 0
}

// TaskRecord is the persisted snapshot form of a task.
type TaskRecord struct {
	Title     string `json:"title" yaml:"title"`
	DueDate   string `json:"dueDate" yaml:"dueDate"`
	Priority  string `json:"priority" yaml:"priority"`
	Category  string `json:"category" yaml:"category"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Record returns the snapshot form of the task.
func (t *Task) Record() TaskRecord {
	return TaskRecord{
		Title:     t.title,
		DueDate:   t.DueDateString(),
		Priority:  t.priority,
		Category:  t.category,
		Completed: t.completed,
	}
}

// RestoreTask rebuilds a task from a snapshot record through the same validation as NewTask.
func RestoreTask(rec TaskRecord) (*Task, error) {
	t, err := NewTask(rec.Title, rec.DueDate, rec.Priority, rec.Category)
	if err != nil {
		return nil, err
	}
	if rec.Completed {
		t.MarkComplete()
	}
	return t, nil
}
