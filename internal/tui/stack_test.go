package tui

import "testing"

func TestStackLabels(t *testing.T) {
	tests := []struct {
		doc  StackedDocument
		want string
	}{
		{BoxscoreRef{AwayAbbrev: "TOR", AwayScore: 3, HomeAbbrev: "BOS", HomeScore: 2}, "TOR:3-BOS:2"},
		{TeamRef{Abbrev: "TOR"}, "TOR"},
		{PlayerRef{SweaterNumber: 87, LastName: "Crosby"}, "#87 Crosby"},
		{PlayerRef{LastName: "Crosby"}, "Crosby"},
		{SettingsRef{Category: "Display"}, "Display"},
	}
	for _, tt := range tests {
		if got := tt.doc.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestStackPushPop(t *testing.T) {
	var stack DocumentStack
	if _, ok := stack.Pop(); ok {
		t.Error("pop of empty stack should fail")
	}

	stack.Push(TeamRef{Abbrev: "TOR"})
	if stack.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", stack.Len())
	}
	if stack.Top().Nav.FocusIndex != -1 {
		t.Errorf("new entry focus = %d, want -1", stack.Top().Nav.FocusIndex)
	}

	// Cover the team page; its nav state rides along on its entry.
	stack.Top().Nav = NavState{FocusIndex: 4, ScrollOffset: 12}
	stack.Push(PlayerRef{PlayerID: 1, LastName: "Matthews"})

	entry, ok := stack.Pop()
	if !ok || entry.Doc.Label() != "Matthews" {
		t.Fatalf("pop = %+v, %v", entry, ok)
	}
	if got := stack.Top().Nav; got != (NavState{FocusIndex: 4, ScrollOffset: 12}) {
		t.Errorf("restored nav = %+v", got)
	}
}

func TestStackEntriesOrder(t *testing.T) {
	var stack DocumentStack
	stack.Push(BoxscoreRef{AwayAbbrev: "TOR", HomeAbbrev: "BOS"})
	stack.Push(PlayerRef{SweaterNumber: 34, LastName: "Matthews"})

	entries := stack.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Doc.Label() != "TOR:0-BOS:0" || entries[1].Doc.Label() != "#34 Matthews" {
		t.Errorf("order = %q, %q", entries[0].Doc.Label(), entries[1].Doc.Label())
	}
}
