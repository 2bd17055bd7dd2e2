package output

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the console report.
type Theme struct {
	Name      string
	Accent    lipgloss.Color // Headings and totals
	TextMuted lipgloss.Color // Labels
	Text      lipgloss.Color // Values
	Green     lipgloss.Color // Positive credit
	Orange    lipgloss.Color // Zero-credit warnings
}

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:      "flexoki-dark",
	Accent:    lipgloss.Color("#3AA99F"),
	TextMuted: lipgloss.Color("#878580"),
	Text:      lipgloss.Color("#FFFCF0"),
	Green:     lipgloss.Color("#879A39"),
	Orange:    lipgloss.Color("#DA702C"),
}

// FlexokiLight suits light terminal backgrounds.
var FlexokiLight = Theme{
	Name:      "flexoki-light",
	Accent:    lipgloss.Color("#24837B"),
	TextMuted: lipgloss.Color("#6F6E69"),
	Text:      lipgloss.Color("#100F0F"),
	Green:     lipgloss.Color("#66800B"),
	Orange:    lipgloss.Color("#BC5215"),
}

// Themes lists the selectable themes.
var Themes = []Theme{FlexokiDark, FlexokiLight}

// ThemeByName returns the named theme, falling back to FlexokiDark.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}
