package search

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "wikitui/internal/tui/state"
)

// Unavailable is the placeholder shown when a search request fails.
const Unavailable = "Search is unavailable"

var (
    title    = lipgloss.NewStyle().Bold(true)
    snippet  = lipgloss.NewStyle().Faint(true)
    selected = lipgloss.NewStyle().Reverse(true)
)

// RenderResults renders the live result list. active is the ordinal of the
// focused item, or any value outside the list when none is focused.
func RenderResults(items []state.SearchItem, active int, width int) string {
    if len(items) == 0 {
        return snippet.Render("No results")
    }
    var b strings.Builder
    for i, it := range items {
        if i > 0 {
            b.WriteString("\n")
        }
        var line string
        switch it.Kind {
        case state.ItemUnavailable:
            b.WriteString(snippet.Render(Unavailable))
            continue
        case state.ItemMore:
            line = "More results…"
        default:
            line = title.Render(it.Hit.Title)
            if it.Hit.Slug != "" {
                line += snippet.Render("  /" + it.Hit.Slug)
            }
        }
        if it.Ordinal == active {
            line = selected.Render("▸ " + line)
        } else {
            line = "  " + line
        }
        b.WriteString(line)
        if it.Kind == state.ItemHit && it.Hit.Snippet != "" {
            b.WriteString("\n    " + snippet.Render(clip(oneLine(it.Hit.Snippet), width-4)))
        }
    }
    return b.String()
}

func oneLine(s string) string {
    return strings.Join(strings.Fields(s), " ")
}

func clip(s string, width int) string {
    r := []rune(s)
    if width <= 1 || len(r) <= width {
        return s
    }
    return string(r[:width-1]) + "…"
}
