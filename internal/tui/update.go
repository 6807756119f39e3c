package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wikitui/internal/render"
	"wikitui/internal/tui/focus"
	"wikitui/internal/tui/state"
)

const savingNotice = "Saving… wait for it to finish before leaving"

// Update handles all page interactions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case searchTickMsg:
		return m.searchTick(msg.gen)
	case searchResultMsg:
		return m.searchResult(msg)
	case saveDoneMsg:
		return m.saveDone(msg.outcome)
	case pageLoadedMsg:
		return m.pageLoaded(msg)
	case noticeMsg:
		m.ui = state.SetNotice(m.ui, string(msg))
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ed.Modal.Kind != state.ModalNone {
		return m.updateModal(msg)
	}
	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m.requestQuit()
	}
	if m.loading {
		return m, nil
	}
	m.ui = state.SetNotice(m.ui, "")
	if key.Matches(msg, m.keys.save) && state.AcceleratorActive(m.ed) {
		return m.submit()
	}
	if m.nav.Within(m.nav.Active(), idSearch) {
		return m.updateSearch(msg)
	}
	if m.ed.Mode != state.Viewing {
		return m.updateEditor(msg)
	}
	return m.updatePage(msg)
}

func (m Model) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m.requestQuit()
	case key.Matches(msg, m.keys.help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.edit):
		m.openEditor()
		return m, nil
	case key.Matches(msg, m.keys.search):
		m.focusSearch()
		return m, nil
	case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.down):
		// Arrow keys outside every scope go to the default (search) scope.
		before := m.nav.Active()
		k := focus.Next
		if key.Matches(msg, m.keys.up) {
			k = focus.Prev
		}
		if m.nav.Handle(k) && m.nav.Active() != before {
			m.syncFocus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	md := m.ed.Modal
	switch md.Kind {
	case state.ModalAlert:
		if md.Conflict {
			switch {
			case key.Matches(msg, m.keys.diff):
				m.ui = state.ToggleDiff(m.ui)
				return m, nil
			case key.Matches(msg, m.keys.diffView):
				m.ui = state.Resize(state.ToggleView(m.ui), m.width)
				return m, nil
			case key.Matches(msg, m.keys.up):
				m.ui = state.ScrollDiff(m.ui, -1)
				return m, nil
			case key.Matches(msg, m.keys.down):
				m.ui = state.ScrollDiff(m.ui, 1)
				return m, nil
			case msg.String() == "y":
				return m, m.copy(m.ed.Draft, "your draft")
			}
		}
		if key.Matches(msg, m.keys.confirm) || key.Matches(msg, m.keys.dismiss) {
			m.ed, _ = state.ResolveModal(m.ed, false)
		}
	case state.ModalConfirmDiscard:
		switch {
		case key.Matches(msg, m.keys.confirm):
			m.ed, _ = state.ResolveModal(m.ed, true)
		case key.Matches(msg, m.keys.dismiss):
			m.ed, _ = state.ResolveModal(m.ed, false)
		}
	case state.ModalConfirmLeave:
		switch {
		case key.Matches(msg, m.keys.confirm):
			var leave bool
			m.ed, leave = state.ResolveModal(m.ed, true)
			if leave {
				return m.leave(md.URL)
			}
		case key.Matches(msg, m.keys.dismiss):
			m.ed, _ = state.ResolveModal(m.ed, false)
		}
	case state.ModalLogin:
		switch {
		case key.Matches(msg, m.keys.copyURL):
			return m, m.copy(md.URL, "login link")
		case key.Matches(msg, m.keys.confirm), key.Matches(msg, m.keys.dismiss):
			m.ed, _ = state.ResolveModal(m.ed, false)
		}
	}
	m.afterEditorChange()
	return m, nil
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	var ok bool
	m.ed, ok = state.RequestLeave(m.ed, "")
	if ok {
		return m, tea.Quit
	}
	if m.ed.Mode == state.Saving {
		m.ui = state.SetNotice(m.ui, savingNotice)
	}
	m.syncFocus()
	return m, nil
}

// leave quits for an empty target and navigates otherwise. The guard has
// already passed.
func (m Model) leave(target string) (tea.Model, tea.Cmd) {
	if target == "" {
		return m, tea.Quit
	}
	m.loading = true
	m.ui = state.SetNotice(m.ui, "Opening "+target+"…")
	m.log.Debug().Str("target", target).Msg("navigate")
	return m, navigateCmd(m.ctx, m.client, target)
}

func navigateCmd(ctx context.Context, c Wiki, target string) tea.Cmd {
	return func() tea.Msg {
		next, err := c.At(target)
		if err != nil {
			return pageLoadedMsg{err: err}
		}
		p, err := next.Load(ctx)
		return pageLoadedMsg{client: next, page: p, err: err}
	}
}

func (m Model) pageLoaded(msg pageLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Msg("navigation failed")
		m.ui = state.SetNotice(m.ui, fmt.Sprintf("Could not open page: %v", msg.err))
		return m, nil
	}
	m.client = msg.client
	m.ui = state.UIState{MinCol: m.ui.MinCol}
	m.load(msg.page)
	m.ui = state.Resize(m.ui, m.width)
	return m, tea.SetWindowTitle(m.windowTitle())
}

// copy puts text on the clipboard and reports the result in the status bar.
func (m Model) copy(text, what string) tea.Cmd {
	write := m.opts.Clipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return noticeMsg(fmt.Sprintf("Could not copy %s: %v", what, err))
		}
		return noticeMsg("Copied " + what)
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.ui = state.Resize(m.ui, w)
	m.query.Width = w - len(m.query.Prompt) - 2
	m.title.Width = m.fieldWidth()
	m.body.SetWidth(m.fieldWidth())
	m.page.Width = w
	m.page.Height = h - 8
	if m.page.Height < 3 {
		m.page.Height = 3
	}
	m.autosize()
	m.refreshPage()
}

// refreshPage re-renders the article body for view mode.
func (m *Model) refreshPage() {
	if m.opts.NoColor {
		m.page.SetContent(render.Wrap(m.ed.Display.Body, m.page.Width))
		return
	}
	m.page.SetContent(render.Body(m.ed.Display.Body, m.page.Width, m.opts.SyntaxStyle))
}
