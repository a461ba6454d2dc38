package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/tasksh/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func refreshCmd() tea.Msg { return RefreshMsg{} }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		m.resize()
		m.syncOutput()
		return m, nil
	case RefreshMsg:
		m.reload()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(typed)
	case tea.KeyMsg:
		if key.Matches(typed, m.Keys.Quit) {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Focus {
		case FocusList:
			return m.handleListKey(typed)
		case FocusSearch:
			return m.handleSearchKey(typed)
		default:
			return m.handlePromptKey(typed)
		}
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		res, ok := m.session.Submit(m.ctx, m.prompt.Value())
		if !ok {
			return m, nil
		}
		m.prompt.SetValue("")
		if res.Search != nil {
			m.search.SetValue(*res.Search)
			m.clampCursor()
		}
		m.syncOutput()
		if res.Refresh {
			return m, refreshCmd
		}
		return m, nil
	case key.Matches(msg, m.Keys.HistoryPrev):
		if entry, ok := m.session.Recall.Prev(); ok {
			m.prompt.SetValue(entry)
			m.prompt.CursorEnd()
		}
		return m, nil
	case key.Matches(msg, m.Keys.HistoryNext):
		if entry, ok := m.session.Recall.Next(); ok {
			m.prompt.SetValue(entry)
			m.prompt.CursorEnd()
		}
		return m, nil
	case key.Matches(msg, m.Keys.ScrollUp), key.Matches(msg, m.Keys.ScrollDown):
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	case key.Matches(msg, m.Keys.SwitchFocus):
		m.Focus = FocusList
		m.prompt.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.SwitchFocus):
		return m.focusPrompt()
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.followCursor()
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < m.projection().Matched()-1 {
			m.Cursor++
		}
		m.followCursor()
	case key.Matches(msg, m.Keys.Toggle):
		return m.toggleSelected()
	case key.Matches(msg, m.Keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.Keys.Search):
		m.Focus = FocusSearch
		cmd := m.search.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Back), key.Matches(msg, m.Keys.Submit):
		m.Focus = FocusList
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.Keys.SwitchFocus):
		m.search.Blur()
		return m.focusPrompt()
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.session.SetSearch(m.search.Value())
	m.clampCursor()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.inListPanel(msg.X) {
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.Focus != FocusPrompt {
			m.search.Blur()
			return m.focusPrompt()
		}
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	idx, ok := m.rowAt(msg.Y)
	if !ok {
		return m, nil
	}
	if m.Focus == FocusPrompt {
		m.prompt.Blur()
	}
	m.search.Blur()
	m.Focus = FocusList
	m.Cursor = idx
	return m.toggleSelected()
}

func (m Model) focusPrompt() (tea.Model, tea.Cmd) {
	m.Focus = FocusPrompt
	cmd := m.prompt.Focus()
	return m, cmd
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	rows := m.projection().Rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return m, nil
	}
	if _, ok := m.actions.Toggle(m.ctx, rows[m.Cursor].Task.ID); !ok {
		return m, nil
	}
	return m, refreshCmd
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	rows := m.projection().Rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return m, nil
	}
	if !m.actions.Delete(m.ctx, rows[m.Cursor].Task.ID) {
		return m, nil
	}
	return m, refreshCmd
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	left, right := m.layout()
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("Daily Task Manager - Terminal Interface | focus: %s", m.Focus),
		LeftPane:   m.renderTerminalPane(),
		RightPane:  m.renderListPane(),
		LeftWidth:  left,
		RightWidth: right,
		Footer:     m.renderHelpView(),
		Tips:       m.tips,
	}, m.Focus == FocusPrompt)
}
