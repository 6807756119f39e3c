package state

// TagKind enumerates the status chips shown in the page header.
type TagKind int

const (
    // Stable ordering for display: Mode, Unsaved, Conflict, Revision
    EDITING TagKind = iota
    SAVING
    UNSAVED
    CONFLICT
    REVISION
)

// Tag represents a single status chip. Text carries the revision token for
// REVISION; other tags leave it empty.
type Tag struct {
    Kind TagKind
    Text string
}
