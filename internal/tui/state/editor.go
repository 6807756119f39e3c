package state

import (
    "net/url"

    "wikitui/internal/wiki"
)

// ConflictMessage is shown when a save comes back in conflict.
const ConflictMessage = "Your edit came into conflict with another change and has not been saved.\n" +
    "Please resolve the merge conflict and save again."

// NewEditor builds the editor state for a loaded page. A page served in edit
// mode (a new article, for instance) starts out already opened.
func NewEditor(p wiki.Page) EditorState {
    d := p.Display
    if d.URL == "" {
        d.URL = p.URL
    }
    s := EditorState{
        Action:    p.Action,
        Display:   d,
        Form:      p.Form,
        Snapshot:  p.Form,
        PageTheme: p.Form.Theme,
    }
    if p.Editing {
        s, _ = Open(s)
        // The served form may already hold values that differ from Display
        // (a new article's placeholder title, say); the form is the baseline.
        s.Form = p.Form
        s.Snapshot = p.Form
    }
    return s
}

// displayedForm is the form the page's displayed values describe.
func displayedForm(d wiki.Display) wiki.EditForm {
    return wiki.EditForm{
        Title:        d.Title,
        Body:         d.Body,
        Theme:        d.Theme,
        BaseRevision: d.Revision,
    }
}

// Open moves Viewing to Editing. The form and the snapshot both start from
// the displayed values and the body control takes focus at end of text. The
// second return is true only the first time an editor is opened, when input
// and resize handling must be registered.
func Open(s EditorState) (EditorState, bool) {
    if s.Mode != Viewing {
        return s, false
    }
    s.Mode = Editing
    s.Form = displayedForm(s.Display)
    s.Snapshot = s.Form
    s.PageTheme = s.Form.Theme
    s.Focus = wiki.FieldBody
    s.CursorAtEnd = true
    first := !s.ListenersReady
    s.ListenersReady = true
    return s, first
}

// Dirty reports unsaved edits.
func Dirty(s EditorState) bool {
    return wiki.HasUnsavedEdits(s.Form, s.Snapshot)
}

// ControlsEnabled reports whether form controls accept input.
func ControlsEnabled(s EditorState) bool {
    return s.Mode == Editing && s.Modal.Kind == ModalNone
}

// AcceleratorActive reports whether the save shortcut is live.
func AcceleratorActive(s EditorState) bool {
    return ControlsEnabled(s)
}

// SetField records a new value for a text control. Disabled controls ignore input.
func SetField(s EditorState, name, value string) EditorState {
    if !ControlsEnabled(s) {
        return s
    }
    switch name {
    case wiki.FieldTitle:
        s.Form.Title = value
    case wiki.FieldBody:
        s.Form.Body = value
    }
    return s
}

// FocusField moves focus between form controls; "" blurs.
func FocusField(s EditorState, name string) EditorState {
    if !ControlsEnabled(s) && name != "" {
        return s
    }
    s.Focus = name
    s.CursorAtEnd = false
    return s
}

// SelectTheme re-themes the page at once; the choice is saved with the form.
func SelectTheme(s EditorState, theme string) EditorState {
    if !ControlsEnabled(s) || !wiki.ValidTheme(theme) {
        return s
    }
    s.Form.Theme = theme
    s.PageTheme = theme
    return s
}

// Submit moves Editing to Saving. It returns the encoded form body (taken
// while the controls are still enabled) and whether a save must be started.
func Submit(s EditorState) (EditorState, string, bool) {
    if !ControlsEnabled(s) {
        return s, "", false
    }
    encoded := wiki.EncodeFields(s.Form.Fields(false))
    s.Mode = Saving
    return s, encoded, true
}

// ApplyOutcome finishes a save. Outcomes arriving outside Saving are ignored.
func ApplyOutcome(s EditorState, o wiki.Outcome) EditorState {
    if s.Mode != Saving || s.Modal.Kind != ModalNone {
        return s
    }
    switch o.Kind {
    case wiki.Success:
        s = applyResult(s, o.Result)
        s.Mode = Viewing
        s.Focus = ""
        s.Draft = ""
    case wiki.Conflict:
        draft := s.Form.Body
        s = applyResult(s, o.Result)
        s.Mode = Editing
        s.Draft = draft
        s.Modal = Modal{Kind: ModalAlert, Message: ConflictMessage, Conflict: true}
    case wiki.AuthRequired:
        // Stays in Saving with the controls disabled until the login notice
        // is dismissed.
        s.Modal = Modal{Kind: ModalLogin, URL: o.LoginURL}
    default:
        s.Mode = Editing
        s.Modal = Modal{Kind: ModalAlert, Message: o.Message()}
    }
    return s
}

// applyResult makes the server's answer both the displayed state and the new
// baseline.
func applyResult(s EditorState, r wiki.SaveResult) EditorState {
    slug := r.Slug
    if slug == "" {
        slug = "."
    }
    s.Display = wiki.Display{
        URL:         resolve(s.Display.URL, slug),
        Title:       r.Title,
        Slug:        r.Slug,
        Body:        r.Body,
        Rendered:    r.Rendered,
        Theme:       r.Theme,
        Revision:    string(r.Revision),
        LastUpdated: r.LastUpdated,
        ArticleID:   string(r.ArticleID),
    }
    s.Snapshot = r.Form()
    s.Form = s.Snapshot
    s.PageTheme = r.Theme
    return s
}

func resolve(base, ref string) string {
    b, err := url.Parse(base)
    if err != nil {
        return ref
    }
    r, err := url.Parse(ref)
    if err != nil {
        return base
    }
    return b.ResolveReference(r).String()
}

// RequestCancel leaves edit mode at once when nothing changed, otherwise asks
// for confirmation first.
func RequestCancel(s EditorState) EditorState {
    if !ControlsEnabled(s) {
        return s
    }
    if !Dirty(s) {
        return discard(s)
    }
    s.Modal = Modal{Kind: ModalConfirmDiscard, Message: "Discard changes?"}
    return s
}

func discard(s EditorState) EditorState {
    s.Form = s.Snapshot
    s.PageTheme = s.Snapshot.Theme
    s.Mode = Viewing
    s.Focus = ""
    s.Draft = ""
    return s
}

// RequestLeave guards navigating away from the page. It returns true when the
// navigation may go ahead now; otherwise a confirmation is raised and
// ResolveModal reports the decision. Leaving is refused outright while a save
// is in flight, so its outcome always reaches ApplyOutcome.
func RequestLeave(s EditorState, target string) (EditorState, bool) {
    if s.Modal.Kind != ModalNone || s.Mode == Saving {
        return s, false
    }
    if !Dirty(s) {
        return s, true
    }
    s.Modal = Modal{Kind: ModalConfirmLeave, Message: "Leave page and discard changes?", URL: target}
    return s, false
}

// ResolveModal closes the open dialog. confirmed is the user's answer for
// confirmations and ignored for notices. The second return is true when a
// guarded navigation was confirmed.
func ResolveModal(s EditorState, confirmed bool) (EditorState, bool) {
    m := s.Modal
    s.Modal = Modal{}
    switch m.Kind {
    case ModalConfirmDiscard:
        if confirmed {
            s = discard(s)
        }
    case ModalConfirmLeave:
        return s, confirmed
    case ModalLogin:
        s.Mode = Editing
    }
    return s, false
}
