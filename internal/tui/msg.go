package tui

import "github.com/runoshun/tasktracker/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgActionDone is sent when a menu action finishes.
type MsgActionDone struct {
	Title string        // Section heading (e.g. "Task List")
	Lines []string      // Output lines
	Tasks []domain.Task // Tasks to render below Lines (list action only)
}

func (MsgActionDone) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
