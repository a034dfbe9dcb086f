package tui

import (
	"fmt"
	"strings"
)

// View renders the TUI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("=== Task Manager ==="))
	b.WriteString("\n")

	b.WriteString(m.viewMenu())

	switch m.mode {
	case ModeInput:
		b.WriteString("\n")
		b.WriteString(m.viewInput())
	case ModeBusy:
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("Working..."))
		b.WriteString("\n")
	case ModeMenu:
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.output != nil {
		b.WriteString("\n")
		b.WriteString(m.viewOutput())
	}

	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

// viewMenu renders the numbered option list.
func (m *Model) viewMenu() string {
	var b strings.Builder
	for i, action := range Actions() {
		line := m.styles.MenuNumber.Render(fmt.Sprintf("%d.", i+1)) + " " + action.Label()
		if i == m.cursor {
			b.WriteString(m.styles.MenuItemSelected.Render(line))
		} else {
			b.WriteString(m.styles.MenuItem.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// viewInput renders answered prompts followed by the active one.
func (m *Model) viewInput() string {
	var b strings.Builder
	prompts := m.action.Prompts()
	for i, answer := range m.answers {
		b.WriteString(m.styles.Answered.Render(prompts[i] + ": " + answer))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.InputPrompt.Render(m.Prompt() + ": "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// viewOutput renders the result of the last action.
func (m *Model) viewOutput() string {
	var b strings.Builder
	if m.output.Title != "" {
		b.WriteString(m.styles.OutputTitle.Render("=== " + m.output.Title + " ==="))
		b.WriteString("\n")
	}
	for _, line := range m.output.Lines {
		b.WriteString(m.styles.OutputLine.Render(line))
		b.WriteString("\n")
	}

	now := m.now()
	for i := range m.output.Tasks {
		task := &m.output.Tasks[i]
		style := m.styles.OutputLine
		switch {
		case task.Completed():
			style = m.styles.Done
		case task.IsOverdue(now):
			style = m.styles.Overdue
		}
		b.WriteString(style.Render(task.String()))
		b.WriteString("\n")
	}
	return b.String()
}
