package header

import (
    "wikitui/internal/tui/state"
    chips "wikitui/internal/tui/widgets/tagchips"
)

// RenderTags is a thin adapter over the TagChips widget for the page header.
func RenderTags(tags []state.Tag, noColor bool) string {
    return chips.View(tags, noColor)
}
