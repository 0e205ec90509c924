package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/revell/cuetime/internal/state"
)

// Theme defines the overlay colors. Tier colors match the server's own
// timer views so operators see the same warnings everywhere.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Warning string
	Danger  string
	Clock   string
	Offline string
}

// themes holds the built-in palettes, keyed by prefs theme name.
var themes = map[string]Theme{
	"stage": {
		Name:    "stage",
		Text:    "#FFFFFF",
		Muted:   "#666666",
		Warning: "#FFA528",
		Danger:  "#FA5656",
		Clock:   "#FFFF00",
		Offline: "#888888",
	},
	"mono": {
		Name:    "mono",
		Text:    "#DDDDDD",
		Muted:   "#555555",
		Warning: "#DDDDDD",
		Danger:  "#DDDDDD",
		Clock:   "#DDDDDD",
		Offline: "#777777",
	},
}

// ThemeByName resolves a prefs theme name, falling back to stage.
func ThemeByName(name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes["stage"]
}

// TierColor returns the display color for a threshold tier.
func (t Theme) TierColor(tier state.Tier) string {
	switch tier {
	case state.TierWarning:
		return t.Warning
	case state.TierDanger:
		return t.Danger
	default:
		return t.Text
	}
}

func (t Theme) timerStyle(rs state.RenderState) lipgloss.Style {
	color := t.TierColor(rs.Tier)
	if rs.Dimmed {
		color = t.Muted
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
}

func (t Theme) offlineStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Offline)).Italic(true)
}

func (t Theme) clockStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Clock))
}
