package tagchips

import (
    "testing"

    "wikitui/internal/tui/state"
)

func TestASCIIFallback(t *testing.T) {
    out := View([]state.Tag{{Kind: state.EDITING}, {Kind: state.REVISION, Text: "12"}}, true)
    if out != "[Editing] [Rev 12]" {
        t.Fatalf("unexpected chips %q", out)
    }
    if View(nil, true) != "" {
        t.Fatalf("no tags should render nothing")
    }
}
