package update

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/sandeepkv93/tasksh/internal/views"
)

func (m Model) renderTerminalPane() string {
	return m.output.View() + "\n" + m.prompt.View()
}

// renderListPane clips the list to the panel: ListOffset onwards, one
// screen line per content line.
func (m Model) renderListPane() string {
	_, width := m.layout()
	lines := strings.Split(m.listView().Content, "\n")
	start := min(m.ListOffset, len(lines))
	end := min(start+m.paneHeight(), len(lines))
	visible := lines[start:end]
	for i, line := range visible {
		visible[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(visible, "\n")
}

// rowAt maps a screen row inside the list panel to a projection row.
func (m Model) rowAt(y int) (int, bool) {
	screen := y - views.ContentTop
	if screen < 0 || screen >= m.paneHeight() {
		return 0, false
	}
	line := screen + m.ListOffset
	for i, rl := range m.listView().RowLines {
		if rl == line {
			return i, true
		}
	}
	return 0, false
}

// inListPanel reports whether screen column x falls in the list panel.
func (m Model) inListPanel(x int) bool {
	left, _ := m.layout()
	return x >= left+views.PanelChrome
}
