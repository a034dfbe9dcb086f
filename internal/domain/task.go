// Package domain contains core business entities and interfaces.
package domain

import (
	"regexp"
	"strings"
	"time"
)

// DueDateLayout is the only accepted due date format.
const DueDateLayout = "2006-01-02"

// dueDatePattern rejects inputs time.Parse would otherwise tolerate.
var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Task is a single tracked item.
// Text fields are normalized once in NewTask and never change afterwards.
// Fields are ordered to minimize memory padding.
type Task struct {
	dueDate   time.Time // Local midnight of the due day
	title     string    // Trimmed, case-folded
	priority  string    // Trimmed, case-folded (open set)
	category  string    // Trimmed, case-folded (open set)
	completed bool
}

// NewTask validates and normalizes its inputs into a pending task.
// It returns a *DateFormatError if dueDate is not a YYYY-MM-DD calendar date.
func NewTask(title, dueDate, priority, category string) (*Task, error) {
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return nil, err
	}
	return &Task{
		title:    Normalize(title),
		dueDate:  due,
		priority: Normalize(priority),
		category: Normalize(category),
	}, nil
}

// ParseDueDate parses s as a local calendar date in YYYY-MM-DD form.
// Surrounding whitespace is ignored.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dueDatePattern.MatchString(s) {
		return time.Time{}, &DateFormatError{Input: s}
	}
	due, err := time.ParseInLocation(DueDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, &DateFormatError{Input: s, Err: err}
	}
	return due, nil
}

// Title returns the normalized title.
func (t *Task) Title() string { return t.title }

// DueDate returns the due date at local midnight.
func (t *Task) DueDate() time.Time { return t.dueDate }

// Priority returns the normalized priority.
func (t *Task) Priority() string { return t.priority }

// Category returns the normalized category.
func (t *Task) Category() string { return t.category }

// Completed reports whether the task has been completed.
func (t *Task) Completed() bool { return t.completed }

// MarkComplete marks the task as done. Calling it again is a no-op.
func (t *Task) MarkComplete() {
	t.completed = true
}

// IsOverdue reports whether the task is pending and now is past midnight of its due day.
func (t *Task) IsOverdue(now time.Time) bool {
	return !t.completed && now.After(t.dueDate)
}

// DueDateString returns the due date in YYYY-MM-DD form.
func (t *Task) DueDateString() string {
	return t.dueDate.Format(DueDateLayout)
}

// StatusLabel returns "Done" or "Pending".
func (t *Task) StatusLabel() string {
	if t.completed {
		return "Done"
	}
	return "Pending"
}

// String renders the task as a single display line.
// Format: <Title> | Due: 2025-12-31 | Priority: <Priority> | Category: <Category> | Status: Pending
func (t *Task) String() string {
	return TitleCase(t.title) +
		" | Due: " + t.DueDateString() +
		" | Priority: " + TitleCase(t.priority) +
		" | Category: " + TitleCase(t.category) +
		" | Status: " + t.StatusLabel()
}

// matchesTitle compares against an already normalized key.
func (t *Task) matchesTitle(key string) bool {
	return t.title == key
}
