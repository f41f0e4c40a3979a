package tui

import (
	"strings"
	"testing"

	"github.com/pucktrack/nhl-tui/internal/config"
	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/documents"
)

func testApp() *App {
	a := NewApp(nhl.NewClient(), config.DefaultConfig())
	a.width = 120
	a.height = 40
	return a
}

func testScoreboard() *nhl.Scoreboard {
	return &nhl.Scoreboard{
		CurrentDate: "2025-01-15",
		Games: []nhl.Game{
			{
				ID:        2024020001,
				GameDate:  "2025-01-15",
				GameState: nhl.GameStateLive,
				AwayTeam:  nhl.ScoreTeam{Abbrev: "TOR", Name: nhl.LocalizedString{Default: "Maple Leafs"}, Score: 3},
				HomeTeam:  nhl.ScoreTeam{Abbrev: "BOS", Name: nhl.LocalizedString{Default: "Bruins"}, Score: 2},
			},
		},
	}
}

func TestCurrentDocumentWaitsForData(t *testing.T) {
	a := testApp()
	if _, ok := a.currentDocument(); ok {
		t.Error("scores tab should report loading before the scoreboard arrives")
	}

	a.Update(scoresMsg{board: testScoreboard()})
	doc, ok := a.currentDocument()
	if !ok {
		t.Fatal("scores document should exist after the scoreboard arrives")
	}
	if doc.ID() != "scores" {
		t.Errorf("doc = %q, want scores", doc.ID())
	}
}

func TestActivateGamePushesBoxscore(t *testing.T) {
	a := testApp()
	a.Update(scoresMsg{board: testScoreboard()})

	view := a.currentView()
	view.MoveFocus(1)
	a.activateFocused()

	top := a.stack().Top()
	if top == nil {
		t.Fatal("activating a game should push onto the stack")
	}
	if got := top.Doc.Label(); got != "TOR:3-BOS:2" {
		t.Errorf("label = %q, want TOR:3-BOS:2", got)
	}
	if !a.loading["boxscore_2024020001"] {
		t.Error("boxscore fetch should be marked in flight")
	}
	if _, ok := a.currentDocument(); ok {
		t.Error("boxscore document should wait for its data")
	}
}

func TestBackRestoresRootNav(t *testing.T) {
	a := testApp()
	a.Update(scoresMsg{board: testScoreboard()})

	view := a.currentView()
	view.MoveFocus(1)
	view.SetScrollOffset(5)
	a.activateFocused()

	if _, ok := a.stack().Pop(); !ok {
		t.Fatal("stack should have an entry to pop")
	}
	a.restoreNav()

	restored := a.currentView()
	if restored.FocusIndex() != 0 || restored.ScrollOffset() != 5 {
		t.Errorf("restored nav = %d/%d, want 0/5", restored.FocusIndex(), restored.ScrollOffset())
	}
}

func testAppBoxscore() *nhl.Boxscore {
	return &nhl.Boxscore{
		ID:        2024020001,
		GameState: nhl.GameStateFinal,
		AwayTeam:  nhl.BoxscoreTeam{Abbrev: "TOR", CommonName: nhl.LocalizedString{Default: "Maple Leafs"}, Score: 3},
		HomeTeam:  nhl.BoxscoreTeam{Abbrev: "BOS", CommonName: nhl.LocalizedString{Default: "Bruins"}, Score: 2},
		PlayerByGameStats: nhl.PlayerByGameStats{
			AwayTeam: nhl.TeamPlayerStats{
				Forwards: []nhl.SkaterStats{
					{PlayerID: 1, Name: nhl.LocalizedString{Default: "A. Matthews"}, SweaterNumber: 34},
					{PlayerID: 2, Name: nhl.LocalizedString{Default: "W. Nylander"}, SweaterNumber: 88},
					{PlayerID: 3, Name: nhl.LocalizedString{Default: "J. Tavares"}, SweaterNumber: 91},
				},
			},
		},
	}
}

func TestRepushSeedsFreshNav(t *testing.T) {
	a := testApp()
	a.Update(scoresMsg{board: testScoreboard()})
	a.Update(boxscoreMsg{gameID: 2024020001, box: testAppBoxscore()})

	view := a.currentView()
	view.MoveFocus(1)
	a.activateFocused()

	// Browse around the boxscore, then leave it.
	boxView := a.currentView()
	boxView.MoveFocus(1)
	boxView.MoveFocus(1)
	boxView.SetScrollOffset(7)

	a.stack().Pop()
	a.restoreNav()

	// Opening the same game again starts at the top with nothing focused.
	a.activateFocused()
	reopened := a.currentView()
	if got := reopened.FocusIndex(); got != -1 {
		t.Errorf("focus after reopening = %d, want -1", got)
	}
	if got := reopened.ScrollOffset(); got != 0 {
		t.Errorf("scroll after reopening = %d, want 0", got)
	}
}

func TestTabsKeepSeparateStacks(t *testing.T) {
	a := testApp()
	a.Update(scoresMsg{board: testScoreboard()})

	view := a.currentView()
	view.MoveFocus(1)
	a.activateFocused()

	a.switchTab(TabSettings)
	if a.stack().Len() != 0 {
		t.Error("settings stack should start empty")
	}

	a.switchTab(TabScores)
	if a.stack().Len() != 1 {
		t.Error("scores stack should survive a tab switch")
	}
}

func TestOpenActionPushesSettingsCategory(t *testing.T) {
	a := testApp()
	a.switchTab(TabSettings)

	view := a.currentView()
	view.MoveFocus(1)
	view.MoveFocus(1) // second category: Display
	a.activateFocused()

	top := a.stack().Top()
	if top == nil {
		t.Fatal("opening a category should push onto the stack")
	}
	if got := top.Doc.Label(); got != "Display" {
		t.Errorf("label = %q, want Display", got)
	}

	doc, ok := a.currentDocument()
	if !ok {
		t.Fatal("settings pages need no fetched data")
	}
	if _, isSettings := doc.(*documents.Settings); !isSettings {
		t.Errorf("doc = %T, want *documents.Settings", doc)
	}
}

func TestFinalsNotifiedOnce(t *testing.T) {
	a := testApp()
	a.config.NotifyOnFinal = false

	board := testScoreboard()
	board.Games[0].GameState = nhl.GameStateFinal
	a.Update(scoresMsg{board: board})
	if !a.notified[2024020001] {
		t.Error("final game should be marked notified")
	}
}

func TestStatusBarKeyHints(t *testing.T) {
	a := testApp()
	bar := a.renderStatusBar()
	for _, want := range []string{"j/k", "move", "enter", "open", "esc", "back", "q", "quit"} {
		if !strings.Contains(bar, want) {
			t.Errorf("status bar missing %q", want)
		}
	}
}

func TestCycleHelpers(t *testing.T) {
	if got := cycleString(timeFormats, "12h"); got != "24h" {
		t.Errorf("cycle 12h = %q", got)
	}
	if got := cycleString(timeFormats, "24h"); got != "12h" {
		t.Errorf("cycle 24h = %q", got)
	}
	if got := cycleString(logLevels, "unknown"); got != "debug" {
		t.Errorf("cycle unknown = %q", got)
	}
	if got := cycleInt(refreshIntervals, 300); got != 30 {
		t.Errorf("cycle 300 = %d", got)
	}

	verb, name, ok := splitAction("cycle:theme")
	if !ok || verb != "cycle" || name != "theme" {
		t.Errorf("splitAction = %q %q %v", verb, name, ok)
	}
	if _, _, ok := splitAction("noverb"); ok {
		t.Error("action without a verb should not parse")
	}
}
