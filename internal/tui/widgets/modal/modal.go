package modal

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "wikitui/internal/tui/state"
)

type Modal struct{}

func NewModal() Modal { return Modal{} }

var box = lipgloss.NewStyle().
    Border(lipgloss.RoundedBorder()).
    Padding(1, 2)

// View renders the open dialog, or "" when none is open. width bounds the
// box; accent colors its border.
func (Modal) View(m state.Modal, width int, accent lipgloss.Color) string {
    if m.Kind == state.ModalNone {
        return ""
    }
    var lines []string
    switch m.Kind {
    case state.ModalAlert:
        lines = append(lines, m.Message, "")
        if m.Conflict {
            lines = append(lines, "[d] show diff  [y] copy your draft  [enter] ok")
        } else {
            lines = append(lines, "[enter] ok")
        }
    case state.ModalConfirmDiscard, state.ModalConfirmLeave:
        lines = append(lines, m.Message, "", "[y] yes  [n] no")
    case state.ModalLogin:
        lines = append(lines,
            "You need to log in to save your changes.",
            "Log in with a browser, then save again:",
            "",
            m.URL,
            "",
            "[c] copy URL  [enter] ok")
    }
    st := box.BorderForeground(accent)
    if width > 8 {
        st = st.Width(width - 4)
    }
    return st.Render(strings.Join(lines, "\n"))
}
