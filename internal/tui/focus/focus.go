// Package focus implements roving keyboard focus over ordinal-tagged items.
//
// Elements form a tree by id. A scope is a subtree whose items carry
// contiguous ordinal tags; arrow keys move focus to the item whose ordinal is
// one above or below the focused item's own tag, inside the same scope, with
// no wrap-around. One scope may be the page default and receives navigation
// keys while focus is outside every scope.
package focus

// Key is a navigation key.
type Key int

const (
    Next Key = iota
    Prev
    Escape
)

// Item is an element tagged with a position.
type Item struct {
    ID      string
    Ordinal int
}

type scope struct {
    base  int
    items map[int]string
}

// Navigator tracks the focused element and moves it between scope items.
type Navigator struct {
    parent  map[string]string
    scopes  map[string]*scope
    ordinal map[string]int
    def     string
    active  string
}

// New returns an empty navigator; nothing is focused.
func New() *Navigator {
    return &Navigator{
        parent:  map[string]string{},
        scopes:  map[string]*scope{},
        ordinal: map[string]int{},
    }
}

// Add places id under parent in the element tree. An empty parent makes id a
// top-level element.
func (n *Navigator) Add(id, parent string) {
    n.parent[id] = parent
}

// Within reports whether id is ancestor or lies below it.
func (n *Navigator) Within(id, ancestor string) bool {
    seen := map[string]bool{}
    for cur := id; cur != "" && !seen[cur]; cur = n.parent[cur] {
        if cur == ancestor {
            return true
        }
        seen[cur] = true
    }
    return false
}

// DefineScope makes root a navigation scope whose ordinals start at base.
// With asDefault it also receives keys while focus is outside every scope.
func (n *Navigator) DefineScope(root string, base int, asDefault bool) {
    if old, ok := n.scopes[root]; ok {
        n.clearItems(old)
    }
    n.scopes[root] = &scope{base: base, items: map[int]string{}}
    if asDefault {
        n.def = root
    }
}

// SetItems replaces the tagged items of a scope. Items become children of
// the scope root. If the focused element disappears focus falls back to root.
func (n *Navigator) SetItems(root string, items []Item) {
    sc, ok := n.scopes[root]
    if !ok {
        return
    }
    _, wasItem := n.ordinal[n.active]
    n.clearItems(sc)
    for _, it := range items {
        sc.items[it.Ordinal] = it.ID
        n.ordinal[it.ID] = it.Ordinal
        n.parent[it.ID] = root
    }
    if _, isItem := n.ordinal[n.active]; wasItem && !isItem {
        n.active = root
    }
}

func (n *Navigator) clearItems(sc *scope) {
    for _, id := range sc.items {
        delete(n.ordinal, id)
        delete(n.parent, id)
    }
    sc.items = map[int]string{}
}

// Focus moves focus to id.
func (n *Navigator) Focus(id string) { n.active = id }

// Blur drops focus.
func (n *Navigator) Blur() { n.active = "" }

// Active returns the focused element, "" when nothing is focused.
func (n *Navigator) Active() string { return n.active }

// Ordinal returns the position tag of id.
func (n *Navigator) Ordinal(id string) (int, bool) {
    o, ok := n.ordinal[id]
    return o, ok
}

// Handle applies a navigation key. It reports whether the key was claimed.
func (n *Navigator) Handle(k Key) bool {
    switch k {
    case Escape:
        n.Blur()
        return true
    case Next:
        return n.move(1)
    case Prev:
        return n.move(-1)
    }
    return false
}

func (n *Navigator) move(delta int) bool {
    if ord, ok := n.ordinal[n.active]; ok {
        sc := n.scopes[n.parent[n.active]]
        if sc == nil {
            return false
        }
        if id, ok := sc.items[ord+delta]; ok {
            n.active = id
        }
        return true
    }
    if n.inScope(n.active) || n.def == "" {
        // Focus is on an untagged element of a scope: not an anchor.
        return false
    }
    sc := n.scopes[n.def]
    if id, ok := sc.items[sc.base-1+delta]; ok {
        n.active = id
    }
    return true
}

func (n *Navigator) inScope(id string) bool {
    for root := range n.scopes {
        if id != "" && n.Within(id, root) {
            return true
        }
    }
    return false
}
