package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-40, 20)
		return m, nil

	case MsgActionDone:
		m.mode = ModeMenu
		m.err = nil
		m.output = &msg
		return m, nil

	case MsgError:
		m.mode = ModeMenu
		m.err = msg.Err
		m.output = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input based on the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeBusy:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case ModeMenu:
		return m.handleMenuMode(msg)
	}
	return m, nil
}

// handleMenuMode handles keys while choosing an option.
func (m *Model) handleMenuMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	actions := Actions()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(actions)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Number):
		m.cursor = int(msg.Runes[0] - '1')
		return m.startAction(actions[m.cursor])

	case key.Matches(msg, m.keys.Enter):
		return m.startAction(actions[m.cursor])
	}

	return m, nil
}

// startAction begins the action, prompting first when it needs input.
func (m *Model) startAction(action Action) (tea.Model, tea.Cmd) {
	if action == ActionExit {
		return m, tea.Quit
	}

	m.action = action
	m.answers = nil
	m.err = nil
	m.output = nil

	if len(action.Prompts()) == 0 {
		return m.execute()
	}

	m.mode = ModeInput
	m.input.Reset()
	m.input.Placeholder = action.Prompts()[0]
	return m, m.input.Focus()
}

// handleInputMode handles keys while answering prompts.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeMenu
		m.answers = nil
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.answers = append(m.answers, strings.TrimSpace(m.input.Value()))
		m.input.Reset()

		prompts := m.action.Prompts()
		if len(m.answers) < len(prompts) {
			m.input.Placeholder = prompts[len(m.answers)]
			return m, nil
		}
		m.input.Blur()
		return m.execute()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs the current action asynchronously.
func (m *Model) execute() (tea.Model, tea.Cmd) {
	m.mode = ModeBusy
	return m, m.runAction(m.action, m.answers)
}

// Prompt returns the current prompt text, or "" outside input mode.
func (m *Model) Prompt() string {
	if m.mode != ModeInput {
		return ""
	}
	prompts := m.action.Prompts()
	if len(m.answers) >= len(prompts) {
		return ""
	}
	return prompts[len(m.answers)]
}
