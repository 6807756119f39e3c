package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Danger    lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Danger:    lipgloss.Color("#D9534F"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
    }
}

// Material 500 shades, one per page theme.
var themeColors = map[string]lipgloss.Color{
    "red":         "#F44336",
    "pink":        "#E91E63",
    "purple":      "#9C27B0",
    "deep-purple": "#673AB7",
    "indigo":      "#3F51B5",
    "blue":        "#2196F3",
    "light-blue":  "#03A9F4",
    "cyan":        "#00BCD4",
    "teal":        "#009688",
    "green":       "#4CAF50",
    "light-green": "#8BC34A",
    "lime":        "#CDDC39",
    "yellow":      "#FFEB3B",
    "amber":       "#FFC107",
    "orange":      "#FF9800",
    "deep-orange": "#FF5722",
    "brown":       "#795548",
    "gray":        "#9E9E9E",
    "blue-gray":   "#607D8B",
}

// ThemeColor returns the accent color of a page theme, Primary for unknown
// themes.
func (p Palette) ThemeColor(theme string) lipgloss.Color {
    if c, ok := themeColors[theme]; ok {
        return c
    }
    return p.Primary
}

// ThemeForeground picks black or white text for a theme accent.
func ThemeForeground(theme string) lipgloss.Color {
    switch theme {
    case "lime", "yellow", "amber", "light-green", "cyan", "light-blue", "orange", "gray":
        return lipgloss.Color("#111111")
    }
    return lipgloss.Color("#FFFFFF")
}
