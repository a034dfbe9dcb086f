package domain

import "fmt"

// Analytics summarizes the whole store.
// Fields are ordered to minimize memory padding.
type Analytics struct {
	TopCategory      string  // Most frequent category (empty if HasTopCategory is false)
	CompletionRate   float64 // Completed / Total * 100 (0 if HasRate is false)
	Total            int
	Completed        int
	TopCategoryCount int
	HasRate          bool // False when the store is empty
	HasTopCategory   bool // False when the store is empty
}

// Analytics computes totals, completion percentage and the most common category.
// Category ties go to the category first seen in insertion order.
func (s *TaskStore) Analytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Analytics{Total: len(s.tasks)}
	counts := make(map[string]int)
	var order []string
	for _, t := range s.tasks {
		if t.completed {
			a.Completed++
		}
		if _, seen := counts[t.category]; !seen {
			order = append(order, t.category)
		}
		counts[t.category]++
	}

	if a.Total > 0 {
		a.HasRate = true
		a.CompletionRate = float64(a.Completed) / float64(a.Total) * 100
	}

	for _, category := range order {
		if counts[category] > a.TopCategoryCount {
			a.TopCategory = category
			a.TopCategoryCount = counts[category]
			a.HasTopCategory = true
		}
	}
	return a
}

// Lines renders the summary for display.
func (a Analytics) Lines() []string {
	lines := []string{fmt.Sprintf("Total tasks: %d", a.Total)}
	if a.HasRate {
		lines = append(lines, fmt.Sprintf("Completed: %d (%.2f%%)", a.Completed, a.CompletionRate))
	} else {
		lines = append(lines, "Completed: 0")
	}
	if a.HasTopCategory {
		lines = append(lines, fmt.Sprintf("Most common category: %s (%d times)", TitleCase(a.TopCategory), a.TopCategoryCount))
	}
	return lines
}
