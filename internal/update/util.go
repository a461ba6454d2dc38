package update

import (
	"strings"

	"github.com/sandeepkv93/tasksh/internal/views"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	minPaneWidth  = 20
	minPaneHeight = 3
)

// DefaultTips is shown under the panels.
const DefaultTips = `- Use ↑/↓ to navigate command history
- Press tab to work the task list, space toggles, x deletes
- Tasks are saved locally and survive restarts`

func renderTips(md string) string {
	return views.RenderMarkdown(md)
}

// layout returns the content widths of the terminal and list panels.
func (m Model) layout() (left, right int) {
	leftTotal := m.width * 3 / 5
	left = leftTotal - views.PanelChrome
	right = m.width - leftTotal - views.PanelChrome
	if left < minPaneWidth {
		left = minPaneWidth
	}
	if right < minPaneWidth {
		right = minPaneWidth
	}
	return left, right
}

func (m Model) paneHeight() int {
	// header, top and bottom border, help line
	h := m.height - views.ContentTop - 2
	if m.tips != "" {
		h -= strings.Count(m.tips, "\n") + 1
	}
	if h < minPaneHeight+1 {
		h = minPaneHeight + 1
	}
	return h
}

func (m *Model) resize() {
	left, right := m.layout()
	m.output.Width = left
	m.output.Height = m.paneHeight() - 1
	m.prompt.Width = left - len(m.prompt.Prompt) - 1
	m.search.Width = right - len(m.search.Prompt) - 1
	m.helpModel.Width = m.width
	m.clampCursor()
}

// syncOutput re-renders the scrollback and keeps it pinned to the newest line.
func (m *Model) syncOutput() {
	m.output.SetContent(views.RenderTerminal(m.session.Log.Lines()))
	m.output.GotoBottom()
}

func (m Model) projection() views.Projection {
	return views.Project(m.Tasks, m.session.Search())
}

func (m *Model) clampCursor() {
	n := m.projection().Matched()
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.followCursor()
}

// followCursor scrolls the list panel so the cursor row is on screen. The
// panel header stays visible while the cursor row fits below it.
func (m *Model) followCursor() {
	view := m.listView()
	height := m.paneHeight()
	total := strings.Count(view.Content, "\n") + 1
	if m.Cursor < len(view.RowLines) {
		line := view.RowLines[m.Cursor]
		switch {
		case line < height:
			m.ListOffset = 0
		case line < m.ListOffset:
			m.ListOffset = line
		case line >= m.ListOffset+height:
			m.ListOffset = line - height + 1
		}
	}
	if maxOffset := total - height; m.ListOffset > maxOffset {
		m.ListOffset = maxOffset
	}
	if m.ListOffset < 0 {
		m.ListOffset = 0
	}
}

func (m Model) listView() views.TaskListView {
	_, right := m.layout()
	return views.RenderTaskList(views.TaskListData{
		Projection: m.projection(),
		SearchView: m.search.View(),
		Cursor:     m.Cursor,
		Focused:    m.Focus != FocusPrompt,
		Width:      right,
		DateLayout: m.dateLayout,
	})
}
