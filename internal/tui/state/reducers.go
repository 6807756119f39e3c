package state

// ToggleDiff shows or hides the conflict diff.
func ToggleDiff(s UIState) UIState {
    s.ShowDiff = !s.ShowDiff
    return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return s
}

// Resize updates width and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width int) UIState {
    s.Width = width
    threshold := 2*s.MinCol + 3
    if s.View == SideBySide && s.Width < threshold {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

// ScrollDiff moves the diff viewport, never above the first line.
func ScrollDiff(s UIState, delta int) UIState {
    s.ScrollV += delta
    if s.ScrollV < 0 {
        s.ScrollV = 0
    }
    return s
}

// SetNotice replaces the ephemeral status message.
func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
