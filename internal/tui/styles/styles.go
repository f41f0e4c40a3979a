package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for the active tab and selections
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#A88BEB"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Tab bar styles
var (
	// TabActive is the style for the selected tab label
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// TabInactive is the style for unselected tab labels
	TabInactive = lipgloss.NewStyle().
			Foreground(Subtle)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// StatusBarSuccess is for confirmation messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)
)

// Spinner is the style for the refresh spinner.
var Spinner = lipgloss.NewStyle().
	Foreground(Highlight)
