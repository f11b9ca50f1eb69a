package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one resolved color scheme. Views hold the active palette
// and receive a new one when the theme setting changes.
type Palette struct {
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Accent  lipgloss.Color
	Warm    lipgloss.Color
	Green   lipgloss.Color

	Title lipgloss.Style
	Muted lipgloss.Style
	Hot   lipgloss.Style
	Good  lipgloss.Style
	Pane  lipgloss.Style
}

func build(base, mantle, surface, text, subtext, accent, warm, green lipgloss.Color) Palette {
	return Palette{
		Base:    base,
		Mantle:  mantle,
		Surface: surface,
		Text:    text,
		Subtext: subtext,
		Accent:  accent,
		Warm:    warm,
		Green:   green,

		Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(subtext),
		Hot:   lipgloss.NewStyle().Foreground(warm).Bold(true),
		Good:  lipgloss.NewStyle().Foreground(green),
		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(surface).
			Padding(1),
	}
}

func Dark() Palette {
	return build(
		lipgloss.Color("#1e1e2e"),
		lipgloss.Color("#181825"),
		lipgloss.Color("#45475a"),
		lipgloss.Color("#cdd6f4"),
		lipgloss.Color("#a6adc8"),
		lipgloss.Color("#74c7ec"),
		lipgloss.Color("#fab387"),
		lipgloss.Color("#a6e3a1"),
	)
}

func Light() Palette {
	return build(
		lipgloss.Color("#eff1f5"),
		lipgloss.Color("#e6e9ef"),
		lipgloss.Color("#bcc0cc"),
		lipgloss.Color("#4c4f69"),
		lipgloss.Color("#6c6f85"),
		lipgloss.Color("#1e66f5"),
		lipgloss.Color("#fe640b"),
		lipgloss.Color("#40a02b"),
	)
}

// ForMode maps a settings theme mode onto a palette; anything that is
// not "light" renders dark.
func ForMode(mode string) Palette {
	if mode == "light" {
		return Light()
	}
	return Dark()
}
