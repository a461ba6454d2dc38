package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sandeepkv93/tasksh/internal/model"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	LeftWidth  int
	RightWidth int
	Footer     string
	Tips       string
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	commandStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	outputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedStyle   = panelStyle.BorderForeground(lipgloss.Color("10"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sectionStyle   = lipgloss.NewStyle().Bold(true)
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Strikethrough(true)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// PanelChrome is the border plus horizontal padding a panel adds around
// its content width.
const PanelChrome = 4

// ContentTop is the screen row of the first line inside the panels:
// header, then the top border.
const ContentTop = 2

func RenderApp(data AppData, focusLeft bool) string {
	leftStyle, rightStyle := panelStyle, panelStyle
	if focusLeft {
		leftStyle = focusedStyle
	} else {
		rightStyle = focusedStyle
	}
	left := leftStyle.Width(data.LeftWidth + 2).Render(data.LeftPane)
	right := rightStyle.Width(data.RightWidth + 2).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	lines := []string{
		headerStyle.Render(data.Header),
		row,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	if strings.TrimSpace(data.Tips) != "" {
		lines = append(lines, data.Tips)
	}
	return strings.Join(lines, "\n")
}

// RenderTerminal colours scrollback lines by kind.
func RenderTerminal(lines []model.Line) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		switch l.Kind {
		case model.LineCommand:
			out = append(out, commandStyle.Render(l.Content))
		case model.LineError:
			out = append(out, errorStyle.Render(l.Content))
		default:
			out = append(out, outputStyle.Render(l.Content))
		}
	}
	return strings.Join(out, "\n")
}

type TaskListData struct {
	Projection Projection
	SearchView string
	Cursor     int
	Focused    bool
	Width      int
	DateLayout string
}

// TaskListView is the rendered panel. RowLines[i] is the line offset of
// Projection.Rows()[i] inside Content.
type TaskListView struct {
	Content  string
	RowLines []int
}

func RenderTaskList(data TaskListData) TaskListView {
	p := data.Projection
	layout := data.DateLayout
	if layout == "" {
		layout = "Jan 2, 2006"
	}
	width := data.Width
	if width <= 0 {
		width = 40
	}

	lines := []string{
		sectionStyle.Render("Task List"),
		mutedStyle.Render(fmt.Sprintf("%d total • %d pending • %d completed", p.Total, p.PendingTotal, p.CompletedTotal)),
		data.SearchView,
		"",
	}
	view := TaskListView{RowLines: make([]int, 0, p.Matched())}

	if p.Total == 0 {
		lines = append(lines, mutedStyle.Render("No tasks yet"), mutedStyle.Render("Use the terminal to add your first task"))
		view.Content = strings.Join(lines, "\n")
		return view
	}
	if p.Matched() == 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("No tasks match %q", p.Term)))
		view.Content = strings.Join(lines, "\n")
		return view
	}

	pos := 0
	section := func(title string, rows []Row) {
		if len(rows) == 0 {
			return
		}
		if pos > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, sectionStyle.Render(fmt.Sprintf("%s (%d)", title, len(rows))))
		for _, r := range rows {
			view.RowLines = append(view.RowLines, len(lines))
			lines = append(lines, renderRow(r, pos == data.Cursor && data.Focused, width, layout))
			pos++
		}
	}
	section("Pending", p.Pending)
	section("Completed", p.Completed)

	view.Content = strings.Join(lines, "\n")
	return view
}

func renderRow(r Row, selected bool, width int, layout string) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	glyph := "○"
	if r.Task.Completed {
		glyph = "●"
	}
	date := r.Task.FormatDate(layout, time.Local)
	prefix := fmt.Sprintf("%s%s #%d ", marker, glyph, r.Index)
	suffix := " · " + date
	room := width - runewidth.StringWidth(prefix) - runewidth.StringWidth(suffix)
	if room < 1 {
		room = 1
	}
	text := runewidth.Truncate(r.Task.Text, room, "…")

	body := text
	if r.Task.Completed {
		body = completedStyle.Render(text)
	}
	if selected {
		prefix = cursorStyle.Render(prefix)
	}
	return prefix + body + mutedStyle.Render(suffix)
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
