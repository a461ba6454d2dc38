package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tasksh/internal/model"
	"github.com/sandeepkv93/tasksh/internal/shell"
)

type Focus string

const (
	FocusPrompt Focus = "terminal"
	FocusList   Focus = "list"
	FocusSearch Focus = "search"
)

// TaskActions is what the list panel does to the store directly.
type TaskActions interface {
	Load(ctx context.Context) []model.Task
	Toggle(ctx context.Context, id string) (model.Task, bool)
	Delete(ctx context.Context, id string) bool
}

// RefreshMsg asks the list panel to re-read the store.
type RefreshMsg struct{}

type Model struct {
	Focus      Focus
	Tasks      []model.Task
	Cursor     int
	// ListOffset is the first list panel line on screen.
	ListOffset int
	Keys       KeyMap
	Quitting   bool

	ctx        context.Context
	session    *shell.Session
	actions    TaskActions
	dateLayout string
	tips       string
	width      int
	height     int

	prompt    textinput.Model
	search    textinput.Model
	output    viewport.Model
	helpModel help.Model
}

type Options struct {
	// DateLayout formats created dates in the list panel.
	DateLayout string
	// Tips is markdown rendered under the panels.
	Tips string
}

func NewModel(ctx context.Context, session *shell.Session, actions TaskActions, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.DateLayout == "" {
		opts.DateLayout = "Jan 2, 2006"
	}
	m := Model{
		Focus:      FocusPrompt,
		Keys:       DefaultKeyMap(),
		ctx:        ctx,
		session:    session,
		actions:    actions,
		dateLayout: opts.DateLayout,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.tips = renderTips(opts.Tips)
	m.initBubbleComponents()
	m.reload()
	m.syncOutput()
	return m
}

func (m *Model) initBubbleComponents() {
	m.prompt = textinput.New()
	m.prompt.Prompt = "$ "
	m.prompt.Placeholder = "Enter command (type 'help' for commands)"
	m.prompt.CharLimit = 512
	m.prompt.Focus()

	m.search = textinput.New()
	m.search.Prompt = "search: "
	m.search.Placeholder = "filter tasks"
	m.search.CharLimit = 128
	m.search.SetValue(m.session.Search())

	m.output = viewport.New(0, 0)
	m.helpModel = help.New()
	m.resize()
}

func (m *Model) reload() {
	m.Tasks = m.actions.Load(m.ctx)
	m.clampCursor()
}

// Search is the shared filter term.
func (m Model) Search() string { return m.session.Search() }

// Prompt returns the current command input.
func (m Model) Prompt() string { return m.prompt.Value() }
