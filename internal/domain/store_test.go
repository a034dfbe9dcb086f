package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock is a test double for Clock.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newStoreAt(year int, month time.Month, day int) *TaskStore {
	return NewTaskStore(fixedClock{now: time.Date(year, month, day, 0, 0, 0, 0, time.Local)})
}

func titles(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for i := range tasks {
		out = append(out, tasks[i].Title())
	}
	return out
}

func TestTaskStore_Add(t *testing.T) {
	s := NewTaskStore(nil)

	task, err := s.Add("Sample", "2025-12-31", "Low", "Test")
	require.NoError(t, err)
	assert.Equal(t, "sample", task.Title())
	assert.Equal(t, 1, s.Len())
}

func TestTaskStore_Add_InvalidDateLeavesStoreUnchanged(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("First", "2025-12-31", "low", "work")
	require.NoError(t, err)

	task, err := s.Add("Broken", "2025/12/31", "low", "work")
	assert.Nil(t, task)
	assert.ErrorIs(t, err, ErrInvalidDueDate)
	assert.Equal(t, 1, s.Len())
}

func TestTaskStore_Add_AllowsDuplicates(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("Same", "2025-12-31", "low", "work")
	require.NoError(t, err)
	_, err = s.Add("same ", "2025-12-31", "high", "home")
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
}

func TestTaskStore_Add_ReturnsCopy(t *testing.T) {
	s := NewTaskStore(nil)
	task, err := s.Add("Copy", "2025-12-31", "low", "work")
	require.NoError(t, err)

	task.MarkComplete()
	assert.Empty(t, s.List(FilterCompleted))
}

func TestTaskStore_Complete(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("Finish", "2025-12-31", "High", "Work")
	require.NoError(t, err)
	_, err = s.Add("Other", "2025-12-31", "Low", "Home")
	require.NoError(t, err)

	task, err := s.Complete("Finish")
	require.NoError(t, err)
	assert.True(t, task.Completed())

	assert.Equal(t, []string{"finish"}, titles(s.List(FilterCompleted)))
	assert.Equal(t, []string{"other"}, titles(s.List(FilterPending)))
}

func TestTaskStore_Complete_NormalizesKey(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("Finish", "2025-12-31", "High", "Work")
	require.NoError(t, err)

	_, err = s.Complete(" FINISH ")
	require.NoError(t, err)
	assert.Len(t, s.List(FilterCompleted), 1)
}

func TestTaskStore_Complete_FirstMatchOnly(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("Dup", "2025-01-01", "low", "work")
	require.NoError(t, err)
	_, err = s.Add("Dup", "2025-02-01", "low", "work")
	require.NoError(t, err)

	_, err = s.Complete("dup")
	require.NoError(t, err)

	all := s.List(FilterAll)
	require.Len(t, all, 2)
	assert.True(t, all[0].Completed())
	assert.False(t, all[1].Completed())

	// A second call hits the same (already completed) task again
	_, err = s.Complete("dup")
	require.NoError(t, err)
	all = s.List(FilterAll)
	assert.True(t, all[0].Completed())
	assert.False(t, all[1].Completed())
}

func TestTaskStore_Complete_NotFound(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("Present", "2025-12-31", "low", "work")
	require.NoError(t, err)

	task, err := s.Complete("absent")
	assert.Nil(t, task)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Empty(t, s.List(FilterCompleted))
}

func TestTaskStore_List_Filters(t *testing.T) {
	s := newStoreAt(2025, time.June, 1)
	for _, in := range []struct{ title, due string }{
		{"a", "2025-01-01"},
		{"b", "2025-12-31"},
		{"c", "2024-05-05"},
		{"d", "2026-01-01"},
	} {
		_, err := s.Add(in.title, in.due, "low", "work")
		require.NoError(t, err)
	}
	_, err := s.Complete("c")
	require.NoError(t, err)
	_, err = s.Complete("d")
	require.NoError(t, err)

	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"a", "b", "c", "d"}},
		{FilterPending, []string{"a", "b"}},
		{FilterCompleted, []string{"c", "d"}},
		{FilterOverdue, []string{"a"}},
		{Filter("bogus-filter"), []string{}},
		{Filter(""), []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := s.List(tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestTaskStore_List_OverdueScenario(t *testing.T) {
	s := newStoreAt(2025, time.June, 1)

	_, err := s.Add("Ancient", "2000-01-01", "low", "work")
	require.NoError(t, err)
	_, err = s.Add("Tomorrow", "2025-06-02", "low", "work")
	require.NoError(t, err)
	_, err = s.Add("Year End", "2025-12-31", "low", "work")
	require.NoError(t, err)
	_, err = s.Complete("ancient")
	require.NoError(t, err)

	assert.Empty(t, s.List(FilterOverdue))

	_, err = s.Add("New Year", "2025-01-01", "low", "work")
	require.NoError(t, err)

	assert.Equal(t, []string{"new year"}, titles(s.List(FilterOverdue)))
}

func TestTaskStore_Views(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("pay rent", "2025-07-01", "HIGH", "home")
	require.NoError(t, err)
	_, err = s.Add("review pr", "2025-07-02", "low", "work")
	require.NoError(t, err)
	_, err = s.Complete("review pr")
	require.NoError(t, err)

	assert.Equal(t, []ExportRow{
		{Title: "Pay Rent", DueDate: "2025-07-01", Priority: "High", Category: "Home", Completed: "No"},
		{Title: "Review Pr", DueDate: "2025-07-02", Priority: "Low", Category: "Work", Completed: "Yes"},
	}, s.ExportView())

	assert.Equal(t, []UpsertRow{
		{Title: "Pay Rent", DueDate: "2025-07-01", Priority: "High", Category: "Home", Completed: false},
		{Title: "Review Pr", DueDate: "2025-07-02", Priority: "Low", Category: "Work", Completed: true},
	}, s.UpsertView())
}

func TestTaskStore_Views_Empty(t *testing.T) {
	s := NewTaskStore(nil)
	assert.Empty(t, s.ExportView())
	assert.Empty(t, s.UpsertView())
	assert.Empty(t, s.Records())
}

func TestRestoreStore_RoundTrip(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("one", "2025-07-01", "high", "home")
	require.NoError(t, err)
	_, err = s.Add("two", "2025-07-02", "low", "work")
	require.NoError(t, err)
	_, err = s.Complete("two")
	require.NoError(t, err)

	restored, err := RestoreStore(nil, s.Records())
	require.NoError(t, err)
	assert.Equal(t, s.Records(), restored.Records())
}

func TestRestoreStore_InvalidRecord(t *testing.T) {
	_, err := RestoreStore(nil, []TaskRecord{
		{Title: "ok", DueDate: "2025-01-01"},
		{Title: "bad", DueDate: "not a date"},
	})
	assert.ErrorIs(t, err, ErrInvalidDueDate)
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterOverdue, ParseFilter("  Overdue "))
	assert.True(t, ParseFilter("ALL").IsValid())
	assert.False(t, ParseFilter("bogus").IsValid())
	assert.Len(t, AllFilters(), 4)
}
