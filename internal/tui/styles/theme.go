package styles

import "github.com/charmbracelet/lipgloss"

// Theme is a resolved color palette. Colors are lipgloss terminal colors so
// a theme can be adaptive (pick per terminal background) or fixed RGB.
type Theme struct {
	Name string

	// Text tiers: FG is primary text, FG1 slightly emphasized (section
	// titles), FG2 secondary.
	FG  lipgloss.TerminalColor
	FG1 lipgloss.TerminalColor
	FG2 lipgloss.TerminalColor

	// BoxcharFG colors borders, rules and selector glyphs.
	BoxcharFG lipgloss.TerminalColor

	// Selection colors for the focused link or table row.
	SelectionFG lipgloss.TerminalColor
	SelectionBG lipgloss.TerminalColor

	EmphasisFG lipgloss.TerminalColor
	ErrorFG    lipgloss.TerminalColor
}

// DefaultTheme adapts to the terminal background, in the spirit of the
// adaptive palette the rest of the app uses.
func DefaultTheme() *Theme {
	return &Theme{
		Name:        "default",
		FG:          lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"},
		FG1:         lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		FG2:         lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
		BoxcharFG:   lipgloss.AdaptiveColor{Light: "#888888", Dark: "#5F5F5F"},
		SelectionFG: lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"},
		SelectionBG: lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#A88BEB"},
		EmphasisFG:  lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#A88BEB"},
		ErrorFG:     lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"},
	}
}

func gruvboxTheme() *Theme {
	return &Theme{
		Name:        "gruvbox",
		FG:          lipgloss.Color("#EBDBB2"),
		FG1:         lipgloss.Color("#FBF1C7"),
		FG2:         lipgloss.Color("#BDAE93"),
		BoxcharFG:   lipgloss.Color("#665C54"),
		SelectionFG: lipgloss.Color("#282828"),
		SelectionBG: lipgloss.Color("#FABD2F"),
		EmphasisFG:  lipgloss.Color("#FE8019"),
		ErrorFG:     lipgloss.Color("#FB4934"),
	}
}

func nordTheme() *Theme {
	return &Theme{
		Name:        "nord",
		FG:          lipgloss.Color("#D8DEE9"),
		FG1:         lipgloss.Color("#ECEFF4"),
		FG2:         lipgloss.Color("#A3ABB8"),
		BoxcharFG:   lipgloss.Color("#4C566A"),
		SelectionFG: lipgloss.Color("#2E3440"),
		SelectionBG: lipgloss.Color("#88C0D0"),
		EmphasisFG:  lipgloss.Color("#EBCB8B"),
		ErrorFG:     lipgloss.Color("#BF616A"),
	}
}

// ThemeByName resolves a theme name from the config file. Unknown names
// fall back to the default theme.
func ThemeByName(name string) *Theme {
	switch name {
	case "gruvbox":
		return gruvboxTheme()
	case "nord":
		return nordTheme()
	default:
		return DefaultTheme()
	}
}

// ThemeNames lists the selectable themes, in the order the settings
// document cycles through them.
func ThemeNames() []string {
	return []string{"default", "gruvbox", "nord"}
}
