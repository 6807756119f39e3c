package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wikitui/internal/render"
	"wikitui/internal/tui/state"
	"wikitui/internal/tui/widgets/editor"
	"wikitui/internal/wiki"
)

var fieldOrder = []string{wiki.FieldTitle, wiki.FieldBody, wiki.FieldTheme}

// prepareEditor configures the edit controls; it runs on an editor's first
// Open only.
func (m *Model) prepareEditor() {
	m.title.Prompt = ""
	m.title.Placeholder = "Title"
	m.body.Prompt = ""
	m.body.ShowLineNumbers = false
	m.body.CharLimit = 0
	m.body.MaxHeight = 0
	m.body.SetWidth(m.fieldWidth())
	m.title.Width = m.fieldWidth()
	m.log.Debug().Str("url", m.ed.Display.URL).Msg("editor ready")
}

func (m Model) fieldWidth() int {
	if m.width > 8 {
		return m.width - 4
	}
	return 40
}

// resetFields copies the form into the edit controls.
func (m *Model) resetFields() {
	m.title.SetValue(m.ed.Form.Title)
	m.body.SetValue(m.ed.Form.Body)
	m.autosize()
}

// autosize grows the body control with its content.
func (m *Model) autosize() {
	max := m.height - 14
	if max < 3 {
		max = 3
	}
	m.body.SetHeight(render.Autosize(m.body.Value(), m.body.Width(), 3, max))
}

func (m *Model) openEditor() {
	var first bool
	m.ed, first = state.Open(m.ed)
	if first {
		m.prepareEditor()
	}
	m.resetFields()
	m.nav.Focus(fieldID(m.ed.Focus))
	m.syncFocus()
}

// afterEditorChange brings controls and focus in line with the editor state
// after a reducer ran.
func (m *Model) afterEditorChange() {
	if m.ed.Mode == state.Viewing {
		if m.nav.Within(m.nav.Active(), idEditor) {
			m.nav.Focus(idPage)
		}
		m.resetFields()
	} else if m.ed.Modal.Kind == state.ModalNone && m.ed.Focus != "" && !m.nav.Within(m.nav.Active(), idSearch) {
		m.nav.Focus(fieldID(m.ed.Focus))
	}
	m.syncFocus()
	m.refreshPage()
}

func (m *Model) cycleField(delta int) {
	idx := 0
	for i, f := range fieldOrder {
		if f == m.ed.Focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fieldOrder)) % len(fieldOrder)
	m.ed = state.FocusField(m.ed, fieldOrder[idx])
	m.nav.Focus(fieldID(m.ed.Focus))
	m.syncFocus()
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !state.ControlsEnabled(m.ed) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.ed = state.RequestCancel(m.ed)
		m.afterEditorChange()
		return m, nil
	case key.Matches(msg, m.keys.nextField):
		m.cycleField(1)
		return m, nil
	case key.Matches(msg, m.keys.prevField):
		m.cycleField(-1)
		return m, nil
	case key.Matches(msg, m.keys.find):
		m.focusSearch()
		return m, nil
	case key.Matches(msg, m.keys.editorDiff):
		if m.ed.Draft != "" {
			m.ui = state.ToggleDiff(m.ui)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.ed.Focus {
	case wiki.FieldTheme:
		switch {
		case key.Matches(msg, m.keys.themePrev):
			m.ed = state.SelectTheme(m.ed, editor.NextTheme(m.ed.Form.Theme, -1))
		case key.Matches(msg, m.keys.themeNext):
			m.ed = state.SelectTheme(m.ed, editor.NextTheme(m.ed.Form.Theme, 1))
		}
	case wiki.FieldTitle:
		m.title, cmd = m.title.Update(msg)
		m.ed = state.SetField(m.ed, wiki.FieldTitle, m.title.Value())
	case wiki.FieldBody:
		m.body, cmd = m.body.Update(msg)
		m.ed = state.SetField(m.ed, wiki.FieldBody, m.body.Value())
		m.autosize()
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	var encoded string
	var ok bool
	m.ed, encoded, ok = state.Submit(m.ed)
	if !ok {
		return m, nil
	}
	m.syncFocus()
	m.log.Debug().Str("action", m.ed.Action).Msg("saving")
	return m, saveCmd(m.ctx, m.client, m.ed.Action, encoded)
}

func saveCmd(ctx context.Context, c Wiki, action, encoded string) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{outcome: c.Save(ctx, action, encoded)}
	}
}

func (m Model) saveDone(o wiki.Outcome) (tea.Model, tea.Cmd) {
	m.ed = state.ApplyOutcome(m.ed, o)
	m.log.Info().Str("outcome", o.Kind.String()).Str("url", m.ed.Display.URL).Msg("save finished")

	var cmd tea.Cmd
	switch o.Kind {
	case wiki.Success, wiki.Conflict:
		m.resetFields()
		m.ui.ShowDiff = false
		m.ui.ScrollV = 0
		if m.ed.Display.URL != m.client.PageURL() {
			if c, err := m.client.At(m.ed.Display.URL); err == nil {
				m.client = c
			}
		}
		cmd = tea.SetWindowTitle(m.windowTitle())
	}
	m.afterEditorChange()
	return m, cmd
}
