package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up       Key
	Down     Key
	Top      Key
	Bottom   Key
	HalfUp   Key
	HalfDown Key
	Left     Key
	Right    Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key
	Copy    Key

	// Tabs
	NextTab      Key
	ScoresTab    Key
	StandingsTab Key
	SettingsTab  Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		// Navigation
		Up:       Key{Key: "k", Help: "up"},
		Down:     Key{Key: "j", Help: "down"},
		Top:      Key{Key: "g", Help: "top (gg)"},
		Bottom:   Key{Key: "G", Help: "bottom"},
		HalfUp:   Key{Key: "ctrl+u", Help: "half page up"},
		HalfDown: Key{Key: "ctrl+d", Help: "half page down"},
		Left:     Key{Key: "h", Help: "left"},
		Right:    Key{Key: "l", Help: "right"},

		// Actions
		Select:  Key{Key: "enter", Help: "open"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},
		Copy:    Key{Key: "y", Help: "copy location"},

		// Tabs
		NextTab:      Key{Key: "tab", Help: "next tab"},
		ScoresTab:    Key{Key: "1", Help: "scores"},
		StandingsTab: Key{Key: "2", Help: "standings"},
		SettingsTab:  Key{Key: "3", Help: "settings"},
	}
}

// KeyState tracks multi-key sequences (like 'gg').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap Keymap) (string, bool) {
	key := msg.String()

	// Handle 'gg' sequence (go to top)
	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true
		}
		// If not 'g', reset and process normally
	}

	if key == "g" {
		ks.WaitingG = true
		return "", true // Key consumed, waiting for next
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key:
		return "bottom", true
	case keymap.HalfUp.Key:
		return "half_up", true
	case keymap.HalfDown.Key:
		return "half_down", true
	case keymap.Left.Key, "left":
		return "left", true
	case keymap.Right.Key, "right":
		return "right", true
	case keymap.Select.Key:
		return "select", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.Copy.Key:
		return "copy", true
	case keymap.NextTab.Key:
		return "next_tab", true
	case "shift+tab":
		return "prev_tab", true
	case keymap.ScoresTab.Key:
		return "tab_scores", true
	case keymap.StandingsTab.Key:
		return "tab_standings", true
	case keymap.SettingsTab.Key:
		return "tab_settings", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move focus up/down"},
		{"gg/G", "Go to top/bottom"},
		{k.HalfUp.Key + "/" + k.HalfDown.Key, "Half page up/down"},
		{k.NextTab.Key, "Next tab"},
		{"1-3", "Jump to tab"},
		{"", ""},
		{"Actions", ""},
		{k.Select.Key, "Open the focused item"},
		{k.Back.Key, "Go back"},
		{k.Refresh.Key, "Refresh data"},
		{k.Copy.Key, "Copy current location"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key, "Quit"},
	}
}
