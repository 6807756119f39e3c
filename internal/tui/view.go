package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"wikitui/internal/tui/state"
	"wikitui/internal/tui/util"
	"wikitui/internal/tui/views/header"
	"wikitui/internal/tui/views/search"
	"wikitui/internal/tui/widgets/diff"
	"wikitui/internal/tui/widgets/editor"
	"wikitui/internal/tui/widgets/helpoverlay"
	"wikitui/internal/tui/widgets/modal"
	"wikitui/internal/tui/widgets/statusbar"
)

var (
	urlStyle     = lipgloss.NewStyle().Faint(true)
	resultsStyle = lipgloss.NewStyle().PaddingLeft(2)
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader() + "\n")
	b.WriteString(m.query.View() + "\n")
	if m.search.Visible() {
		active := m.search.Base - 1
		if it, ok := m.activeItem(); ok {
			active = it.Ordinal
		}
		b.WriteString(resultsStyle.Render(search.RenderResults(m.search.Items, active, m.width-2)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.viewBody() + "\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	p := util.DefaultPalette()
	accent := p.ThemeColor(m.ed.PageTheme)
	title := m.ed.Display.Title
	if title == "" {
		title = "(untitled)"
	}
	st := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if !m.opts.NoColor {
		st = st.Background(accent).Foreground(util.ThemeForeground(m.ed.PageTheme))
	}
	line := st.Render(title)
	if tags := header.RenderTags(util.ComputeTags(m.ed), m.opts.NoColor); tags != "" {
		line += " " + tags
	}
	return line + "\n" + urlStyle.Render(m.ed.Display.URL)
}

func (m Model) viewBody() string {
	accent := util.DefaultPalette().ThemeColor(m.ed.PageTheme)
	conflictDiff := m.ui.ShowDiff && m.ed.Draft != ""
	switch {
	case m.showHelp:
		return helpoverlay.NewHelpOverlay().View(m.ed)
	case m.ed.Modal.Kind != state.ModalNone:
		out := modal.NewModal().View(m.ed.Modal, m.width, accent)
		if m.ed.Modal.Conflict && conflictDiff {
			out += "\n" + diff.NewDiffView().View(m.ui, m.ed.Draft, m.ed.Form.Body)
		}
		return out
	case m.ed.Mode == state.Viewing:
		return m.page.View()
	}
	out := editor.NewEditor().View(m.ed, editor.Fields{Title: m.title.View(), Body: m.body.View()})
	if conflictDiff {
		out += "\n\n" + diff.NewDiffView().View(m.ui, m.ed.Draft, m.ed.Form.Body)
	}
	return out
}

func (m Model) viewFooter() string {
	status := statusbar.NewStatusBar().View(m.ed, m.ui)
	h := help.New()
	h.Width = m.width
	return status + "\n" + h.ShortHelpView(m.keys.footer(m.ed.Mode != state.Viewing))
}
