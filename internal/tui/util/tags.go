package util

import (
    "wikitui/internal/tui/state"
)

// ComputeTags derives the header chips for an editor.
//
// The returned slice preserves a stable order:
//   Editing|Saving, Unsaved, Conflict, Revision
//
// Editing and Saving are mutually exclusive and follow the mode. Unsaved
// compares the form against the snapshot, so it clears when an edit is
// reverted. Conflict is shown while a conflict draft is held. Revision is
// omitted for articles that have never been saved.
func ComputeTags(s state.EditorState) []state.Tag {
    tags := make([]state.Tag, 0, 4)

    switch s.Mode {
    case state.Editing:
        tags = append(tags, state.Tag{Kind: state.EDITING})
    case state.Saving:
        tags = append(tags, state.Tag{Kind: state.SAVING})
    }

    if s.Mode != state.Viewing && state.Dirty(s) {
        tags = append(tags, state.Tag{Kind: state.UNSAVED})
    }

    if s.Mode != state.Viewing && s.Draft != "" {
        tags = append(tags, state.Tag{Kind: state.CONFLICT})
    }

    if s.Display.Revision != "" {
        tags = append(tags, state.Tag{Kind: state.REVISION, Text: s.Display.Revision})
    }
    return tags
}
