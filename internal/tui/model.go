package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"wikitui/internal/tui/focus"
	"wikitui/internal/tui/state"
	"wikitui/internal/wiki"
)

// Focus ids. Items of the search scope get ids from itemID.
const (
	idPage        = "page"
	idSearch      = "search"
	idSearchInput = "search.input"
	idEditor      = "editor"
)

// Scheduler arms a timer that delivers msg after d.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// Tick is the default Scheduler.
func Tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Options configures a Model.
type Options struct {
	Debounce    time.Duration
	OrdinalBase int
	SyntaxStyle string
	NoColor     bool

	Scheduler Scheduler
	Clipboard func(string) error
	Log       zerolog.Logger
}

// Messages.
type (
	searchTickMsg   struct{ gen int }
	searchResultMsg struct {
		query string
		resp  wiki.SearchResponse
		err   error
	}
	saveDoneMsg   struct{ outcome wiki.Outcome }
	pageLoadedMsg struct {
		client Wiki
		page   wiki.Page
		err    error
	}
	noticeMsg string
)

// Model is one wiki page in the terminal: the article, its editor and the
// live search box.
type Model struct {
	ctx    context.Context
	client Wiki
	opts   Options
	log    zerolog.Logger
	keys   keyMap

	ed     state.EditorState
	ui     state.UIState
	search state.SearchState
	nav    *focus.Navigator

	title textinput.Model
	body  textarea.Model
	query textinput.Model
	page  viewport.Model

	width, height int
	showHelp      bool
	loading       bool
}

// New builds the model for a loaded page.
func New(ctx context.Context, client Wiki, p wiki.Page, opts Options) Model {
	if opts.Scheduler == nil {
		opts.Scheduler = Tick
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 200 * time.Millisecond
	}

	q := textinput.New()
	q.Prompt = "Search: "
	q.Placeholder = "type to search"

	m := Model{
		ctx:    ctx,
		client: client,
		opts:   opts,
		log:    opts.Log,
		keys:   defaultKeys(),
		ui:     state.UIState{MinCol: 30},
		query:  q,
		title:  textinput.New(),
		body:   textarea.New(),
		page:   viewport.New(80, 20),
		width:  80,
		height: 24,
	}
	m.load(p)
	return m
}

// load replaces the page state with p. Search and focus start over.
func (m *Model) load(p wiki.Page) {
	m.ed = state.NewEditor(p)
	m.search = state.NewSearch(m.opts.OrdinalBase)
	m.query.SetValue("")
	m.query.Blur()

	m.nav = focus.New()
	m.nav.Add(idPage, "")
	m.nav.Add(idSearch, idPage)
	m.nav.Add(idEditor, idPage)
	for _, f := range []string{wiki.FieldTitle, wiki.FieldBody, wiki.FieldTheme} {
		m.nav.Add(fieldID(f), idEditor)
	}
	m.nav.DefineScope(idSearch, m.opts.OrdinalBase, true)
	m.nav.DefineScope(idEditor, 0, false)
	m.syncResults()
	m.nav.Focus(idPage)

	if m.ed.Mode != state.Viewing {
		m.prepareEditor()
		m.resetFields()
		m.nav.Focus(fieldID(m.ed.Focus))
	}
	m.syncFocus()
	m.refreshPage()
}

func fieldID(name string) string { return idEditor + "." + name }

// Editor returns the editor state.
func (m Model) Editor() state.EditorState { return m.ed }

// Search returns the search state.
func (m Model) Search() state.SearchState { return m.search }

// Focused returns the focused element id.
func (m Model) Focused() string { return m.nav.Active() }

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.windowTitle())
}

func (m Model) windowTitle() string {
	if m.ed.Display.Title == "" {
		return "wikitui"
	}
	return m.ed.Display.Title + " · wikitui"
}
