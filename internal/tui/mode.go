// Package tui provides the interactive terminal menu for tasktracker.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeMenu  Mode = iota // Choosing a menu option
	ModeInput             // Answering a prompt for the current action
	ModeBusy              // Waiting for an action to finish
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeInput:
		return "input"
	case ModeBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInput
}

// Action is a menu option.
type Action int

const (
	ActionAdd Action = iota
	ActionComplete
	ActionList
	ActionAnalytics
	ActionExport
	ActionSave
	ActionSuggest
	ActionScrape
	ActionExit
)

// Actions returns the menu options in display order.
func Actions() []Action {
	return []Action{
		ActionAdd,
		ActionComplete,
		ActionList,
		ActionAnalytics,
		ActionExport,
		ActionSave,
		ActionSuggest,
		ActionScrape,
		ActionExit,
	}
}

// Label returns the menu text for the action.
func (a Action) Label() string {
	switch a {
	case ActionAdd:
		return "Add Task"
	case ActionComplete:
		return "Complete Task"
	case ActionList:
		return "Show Tasks (all/pending/completed/overdue)"
	case ActionAnalytics:
		return "Show Analytics"
	case ActionExport:
		return "Export Tasks to CSV"
	case ActionSave:
		return "Save Tasks to SQL Database"
	case ActionSuggest:
		return "Need help? Get Task Suggestion from Web"
	case ActionScrape:
		return "Scrape Tasks from Web Page"
	case ActionExit:
		return "Exit"
	}
	return ""
}

// Prompts returns the questions asked before the action runs.
func (a Action) Prompts() []string {
	switch a {
	case ActionAdd:
		return []string{"Task title", "Due date (YYYY-MM-DD)", "Priority (High/Medium/Low)", "Category"}
	case ActionComplete:
		return []string{"Title of task to complete"}
	case ActionList:
		return []string{"Filter (all/pending/completed/overdue)"}
	case ActionScrape:
		return []string{"URL of page to scrape"}
	case ActionAnalytics, ActionExport, ActionSave, ActionSuggest, ActionExit:
		return nil
	}
	return nil
}
