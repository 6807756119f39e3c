package statusbar

import (
    "strings"
    "testing"

    "wikitui/internal/tui/state"
    "wikitui/internal/wiki"
)

func TestStatusLine(t *testing.T) {
    ed := state.EditorState{Mode: state.Saving, Display: wiki.Display{LastUpdated: "2 minutes ago"}}
    out := NewStatusBar().View(ed, state.UIState{Width: 80, Notice: "Copied"})
    for _, want := range []string{"[SAVING]", "Last updated: 2 minutes ago", "W:80", "Copied"} {
        if !strings.Contains(out, want) {
            t.Fatalf("missing %q in %q", want, out)
        }
    }
    if strings.Contains(out, "Diff:") {
        t.Fatalf("diff mode shown without a conflict draft")
    }
}
