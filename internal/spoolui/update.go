package spoolui

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case frameMsg:
		m.step()
		return m, m.frame()

	case tea.KeyPressMsg:
		if m.prompt {
			return m.handlePromptKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg)
	}
	return m, nil
}

// step advances the board one tick and reacts to plug and completion
// transitions.
func (m *Model) step() {
	if m.ended || m.board == nil {
		return
	}
	m.snap = m.board.Step()

	if m.snap.Connected && !m.plugged {
		m.sound.Plug()
	}
	m.plugged = m.snap.Connected

	if m.snap.Completed && !m.finished {
		m.finished = true
		m.board.Release()
		m.sound.Complete()
		next := m.index + 1
		if next >= m.pack.Len() {
			next = 0
		}
		m.save(next)
	}
}

func (m *Model) save(next int) {
	if m.progress == nil {
		return
	}
	if err := m.progress.Save(m.pack.Name, next); err != nil {
		m.log.Warnf("saving progress: %v", err)
		m.status = "progress not saved"
	}
}

func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case m.ended:
		// The end screen only restarts or quits.
		if key.Matches(msg, m.keys.Next, m.keys.Reset) {
			m.goTo(0)
		}

	case key.Matches(msg, m.keys.Next):
		if m.finished {
			m.advance()
		}

	case key.Matches(msg, m.keys.Reset):
		m.goTo(m.index)

	case key.Matches(msg, m.keys.Skip):
		m.advance()

	case key.Matches(msg, m.keys.Back):
		if m.index > 0 {
			m.goTo(m.index - 1)
		}

	case key.Matches(msg, m.keys.Goto):
		return m.openPrompt()
	}
	return m, nil
}

// advance moves to the next level, or to the end screen after the last.
func (m *Model) advance() {
	if m.index+1 >= m.pack.Len() {
		m.ended = true
		m.board.Release()
		m.save(0)
		m.log.Infof("pack %q finished", m.pack.Name)
		return
	}
	m.goTo(m.index + 1)
}

func (m *Model) goTo(i int) {
	if err := m.loadLevel(i); err != nil {
		m.log.Warnf("loading level %d: %v", i+1, err)
		m.status = err.Error()
	}
}

func (m Model) openPrompt() (tea.Model, tea.Cmd) {
	m.prompt = true
	m.input = textinput.New()
	m.input.Prompt = "level: "
	m.input.Placeholder = strconv.Itoa(m.index + 1)
	m.input.CharLimit = 3
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) handlePromptKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.prompt = false
		return m, nil

	case "enter":
		m.prompt = false
		n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		if err != nil || n < 1 || n > m.pack.Len() {
			m.status = "no such level"
			return m, nil
		}
		m.goTo(n - 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
