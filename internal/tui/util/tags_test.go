package util

import (
    "testing"

    "wikitui/internal/tui/state"
    "wikitui/internal/wiki"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func page() wiki.Page {
    return wiki.Page{
        URL:  "http://wiki.local/a",
        Form: wiki.EditForm{Title: "A", Body: "b", Theme: "red", BaseRevision: "2"},
        Display: wiki.Display{
            URL: "http://wiki.local/a", Title: "A", Slug: "a", Body: "b", Theme: "red", Revision: "2",
        },
    }
}

func TestViewingShowsOnlyRevision(t *testing.T) {
    tags := ComputeTags(state.NewEditor(page()))
    if len(tags) != 1 || tags[0].Kind != state.REVISION || tags[0].Text != "2" {
        t.Fatalf("unexpected tags %+v", tags)
    }
}

func TestEditingAndSavingExclusive(t *testing.T) {
    s, _ := state.Open(state.NewEditor(page()))
    s = state.SetField(s, wiki.FieldBody, "changed")
    tags := ComputeTags(s)
    if _, ok := findKind(tags, state.EDITING); !ok {
        t.Fatalf("expected EDITING")
    }
    if _, ok := findKind(tags, state.UNSAVED); !ok {
        t.Fatalf("expected UNSAVED")
    }
    s, _, _ = state.Submit(s)
    tags = ComputeTags(s)
    if _, ok := findKind(tags, state.EDITING); ok {
        t.Fatalf("EDITING shown while saving")
    }
    if _, ok := findKind(tags, state.SAVING); !ok {
        t.Fatalf("expected SAVING")
    }
}

func TestUnsavedClearsOnRevert(t *testing.T) {
    s, _ := state.Open(state.NewEditor(page()))
    s = state.SetField(s, wiki.FieldBody, "x")
    s = state.SetField(s, wiki.FieldBody, "b")
    if _, ok := findKind(ComputeTags(s), state.UNSAVED); ok {
        t.Fatalf("reverted edit still tagged unsaved")
    }
}

func TestNewArticleHasNoRevision(t *testing.T) {
    p := page()
    p.Display.Revision = ""
    if _, ok := findKind(ComputeTags(state.NewEditor(p)), state.REVISION); ok {
        t.Fatalf("revision chip for an unsaved article")
    }
}

func TestStableOrder(t *testing.T) {
    s, _ := state.Open(state.NewEditor(page()))
    s = state.SetField(s, wiki.FieldBody, "mine")
    s.Draft = "mine"
    tags := ComputeTags(s)
    order := []state.TagKind{state.EDITING, state.UNSAVED, state.CONFLICT, state.REVISION}
    if len(tags) != len(order) {
        t.Fatalf("expected %d tags, got %+v", len(order), tags)
    }
    for i, k := range order {
        if tags[i].Kind != k {
            t.Fatalf("tag %d is %v, want %v", i, tags[i].Kind, k)
        }
    }
}

func TestThemeColor(t *testing.T) {
    p := DefaultPalette()
    for _, th := range wiki.Themes {
        if p.ThemeColor(th) == p.Primary {
            t.Fatalf("theme %q has no color", th)
        }
    }
    if p.ThemeColor("plaid") != p.Primary {
        t.Fatalf("unknown theme should fall back to primary")
    }
}
