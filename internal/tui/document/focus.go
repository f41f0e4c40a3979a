package document

import "github.com/pucktrack/nhl-tui/internal/tui/styles"

// TargetKind classifies what activating a focusable unit does.
type TargetKind int

const (
	TargetNone TargetKind = iota
	// TargetGame opens a game boxscore document.
	TargetGame
	// TargetTeam opens a team detail document.
	TargetTeam
	// TargetPlayer opens a player detail document.
	TargetPlayer
	// TargetAction performs a named in-place action (settings edits).
	TargetAction
)

// LinkTarget describes the destination of a link or link-like table row.
// The fields carry enough context for the navigation layer to push the
// right document and derive its breadcrumb label.
type LinkTarget struct {
	Kind TargetKind

	// Game targets
	GameID     int64
	AwayAbbrev string
	HomeAbbrev string
	AwayScore  int
	HomeScore  int
	GameDate   string

	// Team targets
	TeamAbbrev string

	// Player targets
	PlayerID      int64
	SweaterNumber int
	LastName      string

	// Action targets
	Action string
}

// GameTarget builds a boxscore link target.
func GameTarget(gameID int64, awayAbbrev, homeAbbrev string, awayScore, homeScore int) LinkTarget {
	return LinkTarget{
		Kind:       TargetGame,
		GameID:     gameID,
		AwayAbbrev: awayAbbrev,
		HomeAbbrev: homeAbbrev,
		AwayScore:  awayScore,
		HomeScore:  homeScore,
	}
}

// TeamTarget builds a team detail link target.
func TeamTarget(abbrev string) LinkTarget {
	return LinkTarget{Kind: TargetTeam, TeamAbbrev: abbrev}
}

// PlayerTarget builds a player detail link target. Pass sweaterNumber 0
// when unknown.
func PlayerTarget(playerID int64, sweaterNumber int, lastName string) LinkTarget {
	return LinkTarget{
		Kind:          TargetPlayer,
		PlayerID:      playerID,
		SweaterNumber: sweaterNumber,
		LastName:      lastName,
	}
}

// ActionTarget builds an in-place action target.
func ActionTarget(action string) LinkTarget {
	return LinkTarget{Kind: TargetAction, Action: action}
}

// FocusKey identifies one focusable unit of a document: either a link (by
// key) or a table row (by table id and row index), plus its activation
// target.
type FocusKey struct {
	Link    string
	TableID string
	Row     int
	Target  LinkTarget
}

// LinkKey builds a focus key for a link.
func LinkKey(key string, target LinkTarget) FocusKey {
	return FocusKey{Link: key, Target: target}
}

// TableRowKey builds a focus key for one table row.
func TableRowKey(tableID string, row int, target LinkTarget) FocusKey {
	return FocusKey{TableID: tableID, Row: row, Target: target}
}

// FocusContext carries the per-render environment a document consults
// while building: available width (0 until the first layout pass),
// glyph set, and the linear focus index resolved against the document's
// focusable positions in document order.
type FocusContext struct {
	// AvailableWidth is the width of the target area, or 0 when unknown.
	// Documents use it for responsive layout decisions.
	AvailableWidth int

	Unicode bool
	Boxes   styles.BoxChars

	focusIndex int
	positions  []FocusKey
}

// NewFocusContext creates a focus context with no focus set.
func NewFocusContext(availableWidth int, unicode bool) *FocusContext {
	return &FocusContext{
		AvailableWidth: availableWidth,
		Unicode:        unicode,
		Boxes:          styles.BoxCharsFor(unicode),
		focusIndex:     -1,
	}
}

// SetPositions registers the document's focusable units, in document
// order (top to bottom, row contents before the next element).
func (f *FocusContext) SetPositions(positions []FocusKey) {
	f.positions = positions
}

// SetFocusIndex stores the linear focus index. Pass -1 to clear focus.
// Out-of-range indices are clamped when queried, not rejected.
func (f *FocusContext) SetFocusIndex(i int) {
	f.focusIndex = i
}

// FocusIndex returns the clamped focus index, or -1 when nothing is
// focused or the document has no focusable units.
func (f *FocusContext) FocusIndex() int {
	if f.focusIndex < 0 || len(f.positions) == 0 {
		return -1
	}
	if f.focusIndex >= len(f.positions) {
		return len(f.positions) - 1
	}
	return f.focusIndex
}

// FocusedKey returns the focus key of the focused unit.
func (f *FocusContext) FocusedKey() (FocusKey, bool) {
	i := f.FocusIndex()
	if i < 0 {
		return FocusKey{}, false
	}
	return f.positions[i], true
}

// IsLinkFocused reports whether the link with the given key is focused.
func (f *FocusContext) IsLinkFocused(key string) bool {
	k, ok := f.FocusedKey()
	return ok && k.Link != "" && k.Link == key
}

// FocusedTableRow returns the focused row of the given table, or -1.
func (f *FocusContext) FocusedTableRow(tableID string) int {
	k, ok := f.FocusedKey()
	if !ok || k.TableID != tableID {
		return -1
	}
	return k.Row
}
