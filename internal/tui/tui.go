package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"wikitui/internal/tui/util"
	"wikitui/internal/wiki"
)

// Run loads the page the client is bound to and shows it until the user
// quits. Leaving with unsaved edits asks first.
func Run(ctx context.Context, client *wiki.Client, opts Options) error {
	p, err := client.Load(ctx)
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}
	if util.NoColor(opts.NoColor) {
		opts.NoColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	m := New(ctx, FromClient(client), p, opts)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
