package statusbar

import (
    "fmt"
    "strings"

    "wikitui/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key page state.
func (StatusBar) View(ed state.EditorState, s state.UIState) string {
    mode := "[VIEW]"
    switch ed.Mode {
    case state.Editing:
        mode = "[EDIT]"
    case state.Saving:
        mode = "[SAVING]"
    }
    parts := []string{mode}
    if ed.Display.LastUpdated != "" {
        parts = append(parts, "Last updated: "+ed.Display.LastUpdated)
    }
    if ed.Draft != "" {
        view := "Unified"
        if s.View == state.SideBySide {
            view = "Side-by-side"
        }
        parts = append(parts, "Diff: "+view)
    }
    parts = append(parts, fmt.Sprintf("W:%d", s.Width))
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
