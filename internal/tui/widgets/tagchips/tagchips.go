package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "wikitui/internal/tui/state"
    "wikitui/internal/tui/util"
)

// View renders header tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    style := chipStyle(t)
    return style.Render(" " + label + " ")
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.EDITING:
        return "Editing"
    case state.SAVING:
        return "Saving…"
    case state.UNSAVED:
        return "Unsaved"
    case state.CONFLICT:
        return "Conflict"
    case state.REVISION:
        return fmt.Sprintf("Rev %s", t.Text)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    p := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
    white := lipgloss.Color("#FFFFFF")
    switch t.Kind {
    case state.EDITING:
        return base.Background(p.Primary).Foreground(white)
    case state.SAVING:
        return base.Background(p.Success).Foreground(white)
    case state.UNSAVED:
        return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
    case state.CONFLICT:
        return base.Background(p.Danger).Foreground(white)
    case state.REVISION:
        return base.Background(p.Muted).Foreground(white)
    default:
        return base
    }
}
