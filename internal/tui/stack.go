// Package tui provides the terminal user interface for the NHL scores
// viewer: a tabbed Bubble Tea app whose drill-down pages are documents
// pushed onto a per-tab navigation stack.
package tui

import "fmt"

// StackedDocument identifies a drill-down page on the navigation stack.
// The variants carry just enough data to recreate the page and label the
// breadcrumb.
type StackedDocument interface {
	// Label is the breadcrumb text for this entry.
	Label() string
}

// BoxscoreRef points at a game's boxscore page.
type BoxscoreRef struct {
	GameID     int64
	AwayAbbrev string
	HomeAbbrev string
	AwayScore  int
	HomeScore  int
	GameDate   string
}

// Label renders like "TOR:3-BOS:2".
func (b BoxscoreRef) Label() string {
	return fmt.Sprintf("%s:%d-%s:%d", b.AwayAbbrev, b.AwayScore, b.HomeAbbrev, b.HomeScore)
}

// TeamRef points at a team detail page.
type TeamRef struct {
	Abbrev string
}

func (t TeamRef) Label() string { return t.Abbrev }

// PlayerRef points at a player detail page.
type PlayerRef struct {
	PlayerID      int64
	SweaterNumber int
	LastName      string
}

// Label renders like "#87 Crosby", or just the last name when the
// sweater number is unknown.
func (p PlayerRef) Label() string {
	if p.SweaterNumber > 0 {
		return fmt.Sprintf("#%d %s", p.SweaterNumber, p.LastName)
	}
	return p.LastName
}

// SettingsRef points at one settings category page.
type SettingsRef struct {
	Category string
}

func (s SettingsRef) Label() string { return s.Category }

// NavState is the saved focus and scroll of a document, captured when
// another document is pushed on top and restored on pop.
type NavState struct {
	FocusIndex   int
	ScrollOffset int
}

// StackEntry is one level of the navigation stack.
type StackEntry struct {
	Doc StackedDocument
	Nav NavState
}

// DocumentStack is the drill-down history of one tab. The entry on top
// is the visible document; entries below it keep the nav state they had
// when they were covered.
type DocumentStack struct {
	entries []StackEntry
}

// Push covers the current top with a new document.
func (s *DocumentStack) Push(doc StackedDocument) {
	s.entries = append(s.entries, StackEntry{Doc: doc, Nav: NavState{FocusIndex: -1}})
}

// Pop removes the top entry and returns it. The second return is false
// when the stack is empty.
func (s *DocumentStack) Pop() (StackEntry, bool) {
	if len(s.entries) == 0 {
		return StackEntry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Top returns a pointer to the visible entry, or nil for an empty stack.
func (s *DocumentStack) Top() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Len returns the stack depth.
func (s *DocumentStack) Len() int { return len(s.entries) }

// Entries returns the stack bottom-up for breadcrumb rendering.
func (s *DocumentStack) Entries() []StackEntry { return s.entries }
