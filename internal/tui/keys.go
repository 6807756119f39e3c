package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	edit       key.Binding
	save       key.Binding
	cancel     key.Binding
	nextField  key.Binding
	prevField  key.Binding
	themePrev  key.Binding
	themeNext  key.Binding
	search     key.Binding
	find       key.Binding
	up         key.Binding
	down       key.Binding
	open       key.Binding
	quit       key.Binding
	help       key.Binding

	// dialogs
	confirm  key.Binding
	dismiss  key.Binding
	copyURL  key.Binding
	diff     key.Binding
	diffView key.Binding

	// editor only
	editorDiff key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		nextField:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prevField:  key.NewBinding(key.WithKeys("shift+tab")),
		themePrev:  key.NewBinding(key.WithKeys("left", "h")),
		themeNext:  key.NewBinding(key.WithKeys("right", "l")),
		search:     key.NewBinding(key.WithKeys("/", "ctrl+f"), key.WithHelp("/", "search")),
		find:       key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		up:         key.NewBinding(key.WithKeys("up")),
		down:       key.NewBinding(key.WithKeys("down")),
		open:       key.NewBinding(key.WithKeys("enter")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		confirm:    key.NewBinding(key.WithKeys("enter", "y")),
		dismiss:    key.NewBinding(key.WithKeys("esc", "n")),
		copyURL:    key.NewBinding(key.WithKeys("c")),
		diff:       key.NewBinding(key.WithKeys("d")),
		diffView:   key.NewBinding(key.WithKeys("v")),
		editorDiff: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "conflict diff")),
	}
}

// footer is the one-line key hint for the current mode.
func (k keyMap) footer(editing bool) []key.Binding {
	if editing {
		return []key.Binding{k.save, k.cancel, k.nextField, k.find}
	}
	return []key.Binding{k.edit, k.search, k.help, k.quit}
}
