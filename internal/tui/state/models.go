package state

import "wikitui/internal/wiki"

// SaveState is the editor's position in the view/edit/save cycle.
type SaveState int

const (
    Viewing SaveState = iota
    Editing
    Saving
)

func (s SaveState) String() string {
    switch s {
    case Editing:
        return "editing"
    case Saving:
        return "saving"
    default:
        return "viewing"
    }
}

// ModalKind enumerates the blocking dialogs the editor can raise.
type ModalKind int

const (
    ModalNone ModalKind = iota
    ModalAlert
    ModalConfirmDiscard
    ModalConfirmLeave
    ModalLogin
)

// Modal is the dialog currently covering the page. URL is the login
// destination for ModalLogin and the navigation target for ModalConfirmLeave.
type Modal struct {
    Kind     ModalKind
    Message  string
    URL      string
    Conflict bool
}

// EditorState is the whole state of one article editor. Presentation is
// derived from it; nothing else records whether the page is being edited.
type EditorState struct {
    Mode     SaveState
    Action   string
    Form     wiki.EditForm
    Snapshot wiki.EditForm
    Display  wiki.Display

    // PageTheme is the theme the page is painted with; it follows the theme
    // picker optimistically while editing.
    PageTheme string

    Modal Modal

    // Focus is the name of the focused form control, "" when blurred.
    Focus       string
    CursorAtEnd bool

    // ListenersReady is set by the first Open; input and resize handling is
    // registered once per editor, not once per Open.
    ListenersReady bool

    // Draft keeps the body the user had when a save came back in conflict.
    Draft string
}

// DiffMode controls how the conflict diff is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// UIState holds presentation preferences for the conflict diff.
type UIState struct {
    View     DiffMode
    ShowDiff bool

    Width   int
    MinCol  int
    ScrollV int

    // Notices and ephemeral messages
    Notice string
}

// SearchPhase is whether a search request is outstanding.
type SearchPhase int

const (
    SearchIdle SearchPhase = iota
    SearchPending
)

// ItemKind distinguishes rendered search list entries.
type ItemKind int

const (
    ItemHit ItemKind = iota
    ItemMore
    ItemUnavailable
)

// SearchItem is one rendered entry of the live results. Ordinal is its roving
// focus position; ItemUnavailable has none (-1).
type SearchItem struct {
    Kind    ItemKind
    Hit     wiki.SearchHit
    Ordinal int
}

// SearchState is the live search controller's state.
type SearchState struct {
    Input string
    Phase SearchPhase

    // Stale records that Input moved away from InFlight while a request was
    // outstanding.
    Stale    bool
    InFlight string

    // Gen identifies the armed debounce timer; a timer whose generation does
    // not match is ignored.
    Gen int

    // Shown is the query the rendered Items answer, "" when none.
    Shown      string
    Items      []SearchItem
    HasResults bool

    // Focused tracks focus within the search control.
    Focused bool

    Base int
}

// Visible reports whether the results panel is shown.
func (s SearchState) Visible() bool {
    return s.Focused && s.HasResults
}

// EffectKind names what the caller must do after a search transition.
type EffectKind int

const (
    EffectNone EffectKind = iota
    EffectArmTimer
    EffectFetch
)

// SearchEffect is the single side effect a search transition asks for.
type SearchEffect struct {
    Kind  EffectKind
    Gen   int
    Query string
}
