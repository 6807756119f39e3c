package diff

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"
    "wikitui/internal/tui/state"
)

var (
    delLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    addLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    delChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    addChar = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint   = lipgloss.NewStyle().Faint(true)
    header  = lipgloss.NewStyle().Bold(true)
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders the body the user tried to save (draft) against the body the
// server returned with the conflict. Lines above s.ScrollV are skipped.
func (DiffView) View(s state.UIState, draft, server string) string {
    var out string
    if s.View == state.SideBySide {
        out = sideBySide(draft, server, s.Width)
    } else {
        out = unified(draft, server)
    }
    return scroll(out, s.ScrollV)
}

func scroll(out string, from int) string {
    if from <= 0 {
        return out
    }
    lines := strings.SplitAfter(out, "\n")
    // Keep the header line.
    if from >= len(lines)-1 {
        from = len(lines) - 2
    }
    if from <= 0 {
        return out
    }
    return lines[0] + strings.Join(lines[1+from:], "")
}

// lineDiff aligns the two texts line by line using go-diff's line mode.
func lineDiff(before, after string) []dmp.Diff {
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffMain(a, b, false)
    return d.DiffCharsToLines(diffs, lines)
}

func splitLines(s string) []string {
    s = strings.TrimSuffix(s, "\n")
    if s == "" {
        return nil
    }
    return strings.Split(s, "\n")
}

// charSpans renders a changed line pair with char-level highlights.
func charSpans(bl, al string) (string, string) {
    d := dmp.New()
    diffs := d.DiffMain(bl, al, false)
    d.DiffCleanupSemantic(diffs)
    var lbuf, rbuf strings.Builder
    for _, df := range diffs {
        switch df.Type {
        case dmp.DiffDelete:
            lbuf.WriteString(delChar.Render(df.Text))
        case dmp.DiffInsert:
            rbuf.WriteString(addChar.Render(df.Text))
        case dmp.DiffEqual:
            lbuf.WriteString(delLine.Render(df.Text))
            rbuf.WriteString(addLine.Render(df.Text))
        }
    }
    return lbuf.String(), rbuf.String()
}

func unified(draft, server string) string {
    var b strings.Builder
    b.WriteString(header.Render("DRAFT vs SAVED (Unified)") + "\n")
    if draft == server {
        b.WriteString("No changes\n")
        return b.String()
    }
    diffs := lineDiff(draft, server)
    for i := 0; i < len(diffs); i++ {
        df := diffs[i]
        switch df.Type {
        case dmp.DiffEqual:
            for _, l := range splitLines(df.Text) {
                b.WriteString("  " + faint.Render(l) + "\n")
            }
        case dmp.DiffDelete:
            dels := splitLines(df.Text)
            var ins []string
            if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
                ins = splitLines(diffs[i+1].Text)
                i++
            }
            // Pair changed lines for char-level spans when counts match.
            if len(dels) == len(ins) {
                for j := range dels {
                    l, r := charSpans(dels[j], ins[j])
                    b.WriteString(delLine.Render("- ") + l + "\n")
                    b.WriteString(addLine.Render("+ ") + r + "\n")
                }
                continue
            }
            for _, l := range dels {
                b.WriteString(delLine.Render("- "+l) + "\n")
            }
            for _, l := range ins {
                b.WriteString(addLine.Render("+ "+l) + "\n")
            }
        case dmp.DiffInsert:
            for _, l := range splitLines(df.Text) {
                b.WriteString(addLine.Render("+ "+l) + "\n")
            }
        }
    }
    return b.String()
}

func sideBySide(draft, server string, width int) string {
    const sep = " │ "
    colWidth := 40
    if width > 0 {
        colWidth = (width - len(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    var b strings.Builder
    b.WriteString(pad(header.Render("DRAFT"), colWidth) + sep + header.Render("SAVED") + "\n")
    left := strings.Split(draft, "\n")
    right := strings.Split(server, "\n")
    max := len(left)
    if len(right) > max {
        max = len(right)
    }
    for i := 0; i < max; i++ {
        var l, r string
        if i < len(left) {
            l = clip(left[i], colWidth-2)
        }
        if i < len(right) {
            r = clip(right[i], colWidth-2)
        }
        if l == r {
            b.WriteString(pad("  "+faint.Render(l), colWidth) + sep + "  " + faint.Render(r) + "\n")
            continue
        }
        ls, rs := charSpans(l, r)
        b.WriteString(pad(delLine.Render("- ")+ls, colWidth) + sep + addLine.Render("+ ") + rs + "\n")
    }
    return b.String()
}

func clip(s string, width int) string {
    runes := []rune(s)
    if width < 0 || len(runes) <= width {
        return s
    }
    return string(runes[:width])
}

func pad(s string, width int) string {
    if w := lipgloss.Width(s); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
