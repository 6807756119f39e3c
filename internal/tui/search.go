package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"wikitui/internal/tui/focus"
	"wikitui/internal/tui/state"
	"wikitui/internal/wiki"
)

func itemID(ordinal int) string { return fmt.Sprintf("search.item.%d", ordinal) }

// syncResults hands the rendered result items to the focus navigator. The
// input sits one position before the first result.
func (m *Model) syncResults() {
	items := []focus.Item{{ID: idSearchInput, Ordinal: m.search.Base - 1}}
	for _, it := range m.search.Items {
		if it.Ordinal >= 0 {
			items = append(items, focus.Item{ID: itemID(it.Ordinal), Ordinal: it.Ordinal})
		}
	}
	m.nav.SetItems(idSearch, items)
	if m.nav.Active() == idSearch {
		m.nav.Focus(idSearchInput)
	}
	m.syncFocus()
}

// syncFocus pushes the navigator's focus into the controls.
func (m *Model) syncFocus() {
	active := m.nav.Active()
	m.search = state.SearchFocus(m.search, m.nav.Within(active, idSearch))
	if active == idSearchInput {
		m.query.Focus()
	} else {
		m.query.Blur()
	}
	enabled := state.ControlsEnabled(m.ed)
	if enabled && active == fieldID(wiki.FieldTitle) {
		m.title.Focus()
	} else {
		m.title.Blur()
	}
	if enabled && active == fieldID(wiki.FieldBody) {
		m.body.Focus()
	} else {
		m.body.Blur()
	}
}

func (m *Model) focusSearch() {
	m.nav.Focus(idSearchInput)
	m.syncFocus()
}

// leaveSearch blurs the search box. An open editor takes focus back.
func (m *Model) leaveSearch() {
	m.nav.Handle(focus.Escape)
	if m.ed.Mode != state.Viewing {
		f := m.ed.Focus
		if f == "" {
			f = wiki.FieldBody
		}
		m.ed = state.FocusField(m.ed, f)
		m.nav.Focus(fieldID(f))
	}
	m.syncFocus()
}

func (m Model) activeItem() (state.SearchItem, bool) {
	id := m.nav.Active()
	for _, it := range m.search.Items {
		if it.Ordinal >= 0 && itemID(it.Ordinal) == id {
			return it, true
		}
	}
	return state.SearchItem{}, false
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel), key.Matches(msg, m.keys.nextField):
		m.leaveSearch()
		return m, nil
	case key.Matches(msg, m.keys.up):
		m.nav.Handle(focus.Prev)
		m.syncFocus()
		return m, nil
	case key.Matches(msg, m.keys.down):
		m.nav.Handle(focus.Next)
		m.syncFocus()
		return m, nil
	case key.Matches(msg, m.keys.open):
		return m.activate()
	}
	if m.nav.Active() != idSearchInput {
		return m, nil
	}
	before := m.query.Value()
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	if m.query.Value() == before {
		return m, cmd
	}
	var eff state.SearchEffect
	m.search, eff = state.SearchInput(m.search, m.query.Value())
	m.syncResults()
	return m, tea.Batch(cmd, m.runEffect(eff))
}

// activate follows the focused result: a hit opens its article, the
// trailing item copies the link to the full result list.
func (m Model) activate() (tea.Model, tea.Cmd) {
	it, ok := m.activeItem()
	if !ok {
		return m, nil
	}
	switch it.Kind {
	case state.ItemHit:
		target := it.Hit.Slug
		if target == "" {
			target = "."
		}
		var allowed bool
		m.ed, allowed = state.RequestLeave(m.ed, target)
		if allowed {
			return m.leave(target)
		}
		if m.ed.Mode == state.Saving {
			m.ui = state.SetNotice(m.ui, savingNotice)
		}
		m.syncFocus()
	case state.ItemMore:
		return m, m.copy(m.client.SearchURL(m.search.Shown, 0), "search link")
	}
	return m, nil
}

func (m Model) runEffect(eff state.SearchEffect) tea.Cmd {
	switch eff.Kind {
	case state.EffectArmTimer:
		return m.opts.Scheduler(m.opts.Debounce, searchTickMsg{gen: eff.Gen})
	case state.EffectFetch:
		m.log.Debug().Str("query", eff.Query).Msg("search")
		return searchCmd(m.ctx, m.client, eff.Query)
	}
	return nil
}

func searchCmd(ctx context.Context, c Wiki, query string) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.Search(ctx, query)
		return searchResultMsg{query: query, resp: resp, err: err}
	}
}

func (m Model) searchTick(gen int) (tea.Model, tea.Cmd) {
	var eff state.SearchEffect
	m.search, eff = state.SearchTimerFired(m.search, gen)
	return m, m.runEffect(eff)
}

func (m Model) searchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	var eff state.SearchEffect
	if msg.err != nil {
		m.log.Warn().Err(msg.err).Str("query", msg.query).Msg("search failed")
		m.search, eff = state.SearchFailed(m.search, msg.query)
	} else {
		m.search, eff = state.SearchResolved(m.search, msg.query, msg.resp)
	}
	m.syncResults()
	return m, m.runEffect(eff)
}
