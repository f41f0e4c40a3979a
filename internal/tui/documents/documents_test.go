package documents

import (
	"testing"

	"github.com/pucktrack/nhl-tui/internal/config"
	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
	"github.com/pucktrack/nhl-tui/internal/tui/widgets"
)

func localized(s string) nhl.LocalizedString {
	return nhl.LocalizedString{Default: s}
}

func testBoxscore() *nhl.Boxscore {
	return &nhl.Boxscore{
		ID:        2024020001,
		GameState: nhl.GameStateFinal,
		PeriodDescriptor: nhl.PeriodDescriptor{
			Number: 3, PeriodType: nhl.PeriodRegulation,
		},
		Venue:    localized("TD Garden"),
		AwayTeam: nhl.BoxscoreTeam{Abbrev: "TOR", CommonName: localized("Maple Leafs"), Score: 3},
		HomeTeam: nhl.BoxscoreTeam{Abbrev: "BOS", CommonName: localized("Bruins"), Score: 2},
		PlayerByGameStats: nhl.PlayerByGameStats{
			AwayTeam: nhl.TeamPlayerStats{
				Forwards: []nhl.SkaterStats{
					{PlayerID: 1, Name: localized("A. Matthews"), SweaterNumber: 34},
				},
				Defense: []nhl.SkaterStats{
					{PlayerID: 2, Name: localized("M. Rielly"), SweaterNumber: 44},
				},
				Goalies: []nhl.GoalieStats{
					{PlayerID: 3, Name: localized("J. Woll"), SweaterNumber: 60},
				},
			},
			HomeTeam: nhl.TeamPlayerStats{
				Forwards: []nhl.SkaterStats{
					{PlayerID: 4, Name: localized("D. Pastrnak"), SweaterNumber: 88},
				},
			},
		},
	}
}

func TestBoxscoreIdentity(t *testing.T) {
	doc := NewBoxscore(2024020001, testBoxscore(), "12h")
	if got := doc.ID(); got != "boxscore_2024020001" {
		t.Errorf("ID() = %q", got)
	}
	if got := doc.Title(); got != "TOR @ BOS - Game 2024020001" {
		t.Errorf("Title() = %q", got)
	}
}

func TestBoxscoreFocusOrder(t *testing.T) {
	doc := NewBoxscore(2024020001, testBoxscore(), "12h")
	keys := doc.FocusablePositions()
	if len(keys) != 4 {
		t.Fatalf("positions = %d, want 4", len(keys))
	}

	wantTables := []string{"away_forwards", "away_defense", "away_goalies", "home_forwards"}
	wantPlayers := []int64{1, 2, 3, 4}
	for i, k := range keys {
		if k.TableID != wantTables[i] {
			t.Errorf("key %d table = %q, want %q", i, k.TableID, wantTables[i])
		}
		if k.Target.PlayerID != wantPlayers[i] {
			t.Errorf("key %d player = %d, want %d", i, k.Target.PlayerID, wantPlayers[i])
		}
	}

	if keys[0].Target.LastName != "Matthews" {
		t.Errorf("last name = %q, want Matthews", keys[0].Target.LastName)
	}
}

func TestBoxscoreLayoutSwitchesOnWidth(t *testing.T) {
	doc := NewBoxscore(2024020001, testBoxscore(), "12h")

	wide := document.NewFocusContext(document.SideBySideMinWidth, true)
	wide.SetPositions(doc.FocusablePositions())
	elements := doc.Build(wide)
	foundRow := false
	for _, e := range elements {
		if _, ok := e.(document.Row); ok {
			foundRow = true
		}
	}
	if !foundRow {
		t.Error("wide layout should place the team panels in a row")
	}

	narrow := document.NewFocusContext(100, true)
	narrow.SetPositions(doc.FocusablePositions())
	for _, e := range doc.Build(narrow) {
		if _, ok := e.(document.Row); ok {
			t.Error("narrow layout should stack the team panels")
		}
	}
}

func TestBoxscorePlainScoreWithoutUnicode(t *testing.T) {
	doc := NewBoxscore(2024020001, testBoxscore(), "12h")
	fc := document.NewFocusContext(100, false)
	elements := doc.Build(fc)

	for _, e := range elements {
		if _, ok := e.(widgets.BigScore); ok {
			t.Fatal("ascii mode should not use the big-digit score")
		}
	}
	if _, ok := elements[0].(document.Heading); !ok {
		t.Errorf("first element = %T, want Heading", elements[0])
	}
}

func testStandings() []nhl.Standing {
	return []nhl.Standing{
		{TeamName: localized("Boston Bruins"), TeamAbbrev: localized("BOS"), DivisionName: "Atlantic", Points: 80},
		{TeamName: localized("Toronto Maple Leafs"), TeamAbbrev: localized("TOR"), DivisionName: "Atlantic", Points: 76},
		{TeamName: localized("Vegas Golden Knights"), TeamAbbrev: localized("VGK"), DivisionName: "Pacific", Points: 82},
		{TeamName: localized("Colorado Avalanche"), TeamAbbrev: localized("COL"), DivisionName: "Central", Points: 84},
	}
}

func TestStandingsDivisionOrder(t *testing.T) {
	doc := &Standings{Rows: testStandings()}
	keys := doc.FocusablePositions()

	want := []string{"BOS", "TOR", "COL", "VGK"}
	if len(keys) != len(want) {
		t.Fatalf("positions = %d, want %d", len(keys), len(want))
	}
	for i, k := range keys {
		if k.Target.TeamAbbrev != want[i] {
			t.Errorf("key %d = %q, want %q", i, k.Target.TeamAbbrev, want[i])
		}
	}
}

func TestStandingsWesternFirst(t *testing.T) {
	doc := &Standings{Rows: testStandings(), WesternFirst: true}
	keys := doc.FocusablePositions()
	if keys[0].Target.TeamAbbrev != "COL" {
		t.Errorf("first key = %q, want COL", keys[0].Target.TeamAbbrev)
	}
}

func TestScoresFocusTargets(t *testing.T) {
	board := &nhl.Scoreboard{
		CurrentDate: "2025-01-15",
		Games: []nhl.Game{
			{
				ID:       2024020001,
				GameDate: "2025-01-15",
				AwayTeam: nhl.ScoreTeam{Abbrev: "TOR", Name: localized("Maple Leafs"), Score: 3},
				HomeTeam: nhl.ScoreTeam{Abbrev: "BOS", Name: localized("Bruins"), Score: 2},
			},
		},
	}
	doc := &Scores{Board: board, TimeFormat: "12h"}

	keys := doc.FocusablePositions()
	if len(keys) != 1 {
		t.Fatalf("positions = %d, want 1", len(keys))
	}
	target := keys[0].Target
	if target.Kind != document.TargetGame || target.GameID != 2024020001 {
		t.Errorf("target = %+v", target)
	}
	if target.AwayAbbrev != "TOR" || target.AwayScore != 3 {
		t.Errorf("away side = %s:%d", target.AwayAbbrev, target.AwayScore)
	}
	if target.GameDate != "01/15" {
		t.Errorf("game date = %q, want 01/15", target.GameDate)
	}
}

func TestScoresGridWraps(t *testing.T) {
	board := &nhl.Scoreboard{Games: make([]nhl.Game, 5)}
	doc := &Scores{Board: board, TimeFormat: "12h"}

	// Width for two cards per row: five games over three rows with
	// blank lines between.
	fc := document.NewFocusContext(2*widgets.ScoreBoxWidth+scoreBoxGap, true)
	elements := doc.Build(fc)

	rows := 0
	for _, e := range elements {
		if _, ok := e.(document.Row); ok {
			rows++
		}
	}
	if rows != 3 {
		t.Errorf("rows = %d, want 3", rows)
	}
}

func TestPlayerDetailFormats(t *testing.T) {
	if got := formatHeight(71); got != "5'11\"" {
		t.Errorf("formatHeight(71) = %q", got)
	}
	if got := formatSeason(20232024); got != "2023-24" {
		t.Errorf("formatSeason = %q", got)
	}
}

func TestPlayerDetailHasNoFocusables(t *testing.T) {
	num := 87
	doc := &PlayerDetail{Player: &nhl.PlayerLanding{
		PlayerID:      8471675,
		FirstName:     localized("Sidney"),
		LastName:      localized("Crosby"),
		SweaterNumber: &num,
	}}
	if got := doc.FocusablePositions(); len(got) != 0 {
		t.Errorf("positions = %d, want 0", len(got))
	}
	if got := doc.ID(); got != "player_8471675" {
		t.Errorf("ID() = %q", got)
	}
}

func TestSettingsCategories(t *testing.T) {
	cfg := config.DefaultConfig()

	data := &Settings{Category: SettingsData, Config: cfg}
	if got := len(data.FocusablePositions()); got != 4 {
		t.Errorf("data settings focusables = %d, want 4", got)
	}
	if got := data.Title(); got != "Data Settings" {
		t.Errorf("Title() = %q", got)
	}

	display := &Settings{Category: SettingsDisplay, Config: cfg}
	keys := display.FocusablePositions()
	if keys[0].Target.Action != "cycle:theme" {
		t.Errorf("first display action = %q", keys[0].Target.Action)
	}

	menu := SettingsMenu{}
	if got := len(menu.FocusablePositions()); got != 3 {
		t.Errorf("menu focusables = %d, want 3", got)
	}
}

func TestTeamDetailFocusOrder(t *testing.T) {
	doc := &TeamDetail{
		Abbrev: "TOR",
		Stats: &nhl.ClubStats{
			Skaters: []nhl.ClubSkater{
				{PlayerID: 1, FirstName: localized("Auston"), LastName: localized("Matthews")},
			},
			Goalies: []nhl.ClubGoalie{
				{PlayerID: 2, FirstName: localized("Joseph"), LastName: localized("Woll")},
			},
		},
	}

	keys := doc.FocusablePositions()
	if len(keys) != 2 {
		t.Fatalf("positions = %d, want 2", len(keys))
	}
	if keys[0].Target.PlayerID != 1 || keys[1].Target.PlayerID != 2 {
		t.Errorf("order = %d, %d", keys[0].Target.PlayerID, keys[1].Target.PlayerID)
	}
	if got := doc.Title(); got != "Maple Leafs" {
		t.Errorf("Title() = %q", got)
	}
}
