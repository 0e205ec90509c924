package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/revell/cuetime/internal/prefs"
)

// View renders the overlay: event title, the big timer line, next event,
// and a status footer.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var lines []string

	if m.render.Title != "" {
		lines = append(lines, m.theme.mutedStyle().Render(m.render.Title))
	}

	lines = append(lines, m.timerLine())

	if m.render.NextTitle != "" {
		lines = append(lines, m.theme.mutedStyle().Render("next: "+m.render.NextTitle))
	}

	lines = append(lines, "", m.statusLine())
	if m.showHelp {
		lines = append(lines, m.helpLines()...)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.prefs.ShowBackground {
		content = lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.Muted)).
			Render(content)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) timerLine() string {
	if m.prefs.DisplayMode == prefs.ModeClock {
		return m.theme.clockStyle().Render(m.now.Format("15:04:05"))
	}
	return m.theme.timerStyle(m.render).Render(enlarge(m.render.DisplayText))
}

func (m Model) statusLine() string {
	var parts []string
	if !m.render.Connected {
		parts = append(parts, m.theme.offlineStyle().Render("offline"))
	}
	if m.blackout {
		parts = append(parts, "blackout")
	}
	if m.blink {
		parts = append(parts, "blink")
	}
	if m.note != "" {
		parts = append(parts, m.note)
	}
	if len(parts) == 0 {
		return m.theme.mutedStyle().Render("? for help")
	}
	return m.theme.mutedStyle().Render(strings.Join(parts, "  ·  "))
}

func (m Model) helpLines() []string {
	bindings := []struct{ keys, desc string }{
		{"space", "start"}, {"p", "pause"}, {"r", "reload"},
		{"R", "reload+start"}, {"n/b", "next/previous"},
		{"+/-", "±1 minute"}, {"B", "blink"}, {"x", "blackout"},
		{"c", "timer/clock"}, {"t", "background"}, {"q", "quit"},
	}
	style := m.theme.mutedStyle()
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		lines = append(lines, style.Render(b.keys+"  "+b.desc))
	}
	return lines
}

// enlarge spaces out the timer text so it reads at a distance. The terminal
// stands in for the original floating window; real font scaling belongs to
// a richer render surface.
func enlarge(text string) string {
	runes := []rune(text)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return strings.Join(out, " ")
}
