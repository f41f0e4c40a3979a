package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyBasics(t *testing.T) {
	keymap := DefaultKeymap()
	var ks KeyState

	tests := []struct {
		key  string
		want string
	}{
		{"j", "down"},
		{"k", "up"},
		{"G", "bottom"},
		{"q", "quit"},
		{"r", "refresh"},
		{"y", "copy"},
		{"1", "tab_scores"},
		{"2", "tab_standings"},
		{"3", "tab_settings"},
	}
	for _, tt := range tests {
		action, consumed := ks.HandleKey(keyMsg(tt.key), keymap)
		if !consumed || action != tt.want {
			t.Errorf("key %q = %q (%v), want %q", tt.key, action, consumed, tt.want)
		}
	}
}

func TestHandleKeyGGSequence(t *testing.T) {
	keymap := DefaultKeymap()
	var ks KeyState

	action, consumed := ks.HandleKey(keyMsg("g"), keymap)
	if !consumed || action != "" {
		t.Fatalf("first g = %q (%v), want pending", action, consumed)
	}
	action, _ = ks.HandleKey(keyMsg("g"), keymap)
	if action != "top" {
		t.Errorf("gg = %q, want top", action)
	}

	// A broken sequence falls through to the second key's own binding.
	ks.HandleKey(keyMsg("g"), keymap)
	action, _ = ks.HandleKey(keyMsg("j"), keymap)
	if action != "down" {
		t.Errorf("g then j = %q, want down", action)
	}
}

func TestHandleKeyUnbound(t *testing.T) {
	keymap := DefaultKeymap()
	var ks KeyState

	if action, consumed := ks.HandleKey(keyMsg("z"), keymap); consumed || action != "" {
		t.Errorf("unbound key = %q (%v)", action, consumed)
	}
}
