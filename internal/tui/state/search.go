package state

import "wikitui/internal/wiki"

// NewSearch returns an idle search whose result ordinals start at base.
func NewSearch(base int) SearchState {
    return SearchState{Base: base}
}

// SearchInput records new input text. Empty text clears and hides the results
// and disarms any pending debounce; anything else (re)arms the debounce timer.
// A request already in flight is left alone and marked stale instead.
func SearchInput(s SearchState, text string) (SearchState, SearchEffect) {
    s.Input = text
    s.Gen++
    if text == "" {
        s.Items = nil
        s.HasResults = false
        s.Shown = ""
        s.Stale = false
        return s, SearchEffect{}
    }
    if s.Phase == SearchPending {
        s.Stale = text != s.InFlight
    }
    return s, SearchEffect{Kind: EffectArmTimer, Gen: s.Gen}
}

// SearchTimerFired handles the debounce timer of generation gen elapsing.
func SearchTimerFired(s SearchState, gen int) (SearchState, SearchEffect) {
    if gen != s.Gen || s.Input == "" {
        return s, SearchEffect{}
    }
    if s.Phase == SearchPending {
        if s.Input != s.InFlight {
            s.Stale = true
        }
        return s, SearchEffect{}
    }
    if s.Input == s.Shown {
        return s, SearchEffect{}
    }
    return fire(s)
}

func fire(s SearchState) (SearchState, SearchEffect) {
    s.Phase = SearchPending
    s.InFlight = s.Input
    s.Stale = false
    return s, SearchEffect{Kind: EffectFetch, Query: s.Input}
}

// SearchResolved renders the response to query and, when the input moved on
// while it was outstanding, issues the one coalesced follow-up.
func SearchResolved(s SearchState, query string, resp wiki.SearchResponse) (SearchState, SearchEffect) {
    if s.Phase != SearchPending || query != s.InFlight {
        return s, SearchEffect{}
    }
    s.Phase = SearchIdle
    s.InFlight = ""
    if s.Input != "" {
        s.Items = items(resp, s.Base)
        s.Shown = query
        s.HasResults = true
    }
    return followUp(s, query)
}

// SearchFailed replaces the results with the unavailable placeholder. The
// next input change (or a pending follow-up) retries.
func SearchFailed(s SearchState, query string) (SearchState, SearchEffect) {
    if s.Phase != SearchPending || query != s.InFlight {
        return s, SearchEffect{}
    }
    s.Phase = SearchIdle
    s.InFlight = ""
    if s.Input != "" {
        s.Items = []SearchItem{{Kind: ItemUnavailable, Ordinal: -1}}
        s.Shown = ""
        s.HasResults = true
    }
    return followUp(s, query)
}

func followUp(s SearchState, query string) (SearchState, SearchEffect) {
    stale := s.Stale
    s.Stale = false
    if stale && s.Input != "" && s.Input != query {
        return fire(s)
    }
    return s, SearchEffect{}
}

// SearchFocus records whether focus is now inside the search control.
func SearchFocus(s SearchState, within bool) SearchState {
    s.Focused = within
    return s
}

func items(resp wiki.SearchResponse, base int) []SearchItem {
    out := make([]SearchItem, 0, len(resp.Hits)+1)
    for i, h := range resp.Hits {
        out = append(out, SearchItem{Kind: ItemHit, Hit: h, Ordinal: base + i})
    }
    if resp.Next {
        out = append(out, SearchItem{Kind: ItemMore, Ordinal: base + len(resp.Hits)})
    }
    return out
}
