package editor

import (
    "fmt"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "wikitui/internal/tui/state"
    "wikitui/internal/tui/util"
    "wikitui/internal/wiki"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// Fields carries the rendered title and body controls.
type Fields struct {
    Title string
    Body  string
}

var (
    label   = lipgloss.NewStyle().Bold(true)
    focused = lipgloss.NewStyle().Bold(true).Underline(true)
    muted   = lipgloss.NewStyle().Faint(true)
)

// View renders the edit surface: title, body, theme picker and the save and
// cancel hints. Disabled controls are shown faint.
func (Editor) View(s state.EditorState, f Fields) string {
    var b strings.Builder
    enabled := state.ControlsEnabled(s)
    fmt.Fprintf(&b, "%s\n%s\n\n", fieldLabel("Title", s.Focus == wiki.FieldTitle), dim(f.Title, enabled))
    fmt.Fprintf(&b, "%s\n%s\n\n", fieldLabel("Body", s.Focus == wiki.FieldBody), dim(f.Body, enabled))
    fmt.Fprintf(&b, "%s  %s\n\n", fieldLabel("Theme", s.Focus == wiki.FieldTheme), ThemePicker(s.Form.Theme))
    hints := "[ctrl+s] Save  [esc] Cancel"
    if s.Mode == state.Saving {
        hints = "Saving…"
    }
    b.WriteString(muted.Render(hints))
    return b.String()
}

func fieldLabel(name string, isFocused bool) string {
    if isFocused {
        return focused.Render("▸ " + name)
    }
    return label.Render("  " + name)
}

func dim(s string, enabled bool) string {
    if enabled {
        return s
    }
    return muted.Render(s)
}

// ThemePicker renders the selected theme between its neighbours.
func ThemePicker(theme string) string {
    idx := -1
    for i, t := range wiki.Themes {
        if t == theme {
            idx = i
        }
    }
    if idx < 0 {
        return "‹ " + theme + " ›"
    }
    p := util.DefaultPalette()
    chip := lipgloss.NewStyle().
        Background(p.ThemeColor(theme)).
        Foreground(util.ThemeForeground(theme)).
        Padding(0, 1).
        Render(theme)
    return fmt.Sprintf("‹ %s › (%d/%d)", chip, idx+1, len(wiki.Themes))
}

// NextTheme returns the theme delta steps from theme, clamped to the list.
func NextTheme(theme string, delta int) string {
    idx := 0
    for i, t := range wiki.Themes {
        if t == theme {
            idx = i
        }
    }
    idx += delta
    if idx < 0 {
        idx = 0
    }
    if idx >= len(wiki.Themes) {
        idx = len(wiki.Themes) - 1
    }
    return wiki.Themes[idx]
}
