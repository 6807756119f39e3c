package helpoverlay

import (
    "fmt"
    "strings"

    "wikitui/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current mode indicated.
func (HelpOverlay) View(ed state.EditorState) string {
    sections := []struct {
        title string
        keys  []string
    }{
        {"Page", []string{"e: edit article", "/: search", "?: toggle help", "q/ctrl+c: quit", "j/k, pgup/pgdown: scroll article"}},
        {"Search", []string{"↑/↓: move through results", "Enter: open result", "Enter on more: copy search URL", "Esc: leave results"}},
        {"Editor", []string{"Tab: next field", "←/→: pick theme", "ctrl+s: save", "Esc: cancel", "ctrl+f: search", "ctrl+d: conflict diff"}},
        {"Dialogs", []string{"Enter/y: confirm", "Esc/n: dismiss", "c: copy login URL", "d: toggle conflict diff", "v: unified/side-by-side", "y: copy conflict draft"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s)\n", strings.ToUpper(ed.Mode.String()))
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
