package nhl

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.SetBaseURL(server.URL)
	return client
}

func TestScoresNowDecodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/score/now" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"currentDate": "2025-01-15",
			"games": [{
				"id": 2024020001,
				"gameState": "LIVE",
				"awayTeam": {"id": 10, "name": {"default": "Maple Leafs"}, "abbrev": "TOR", "score": 3},
				"homeTeam": {"id": 6, "name": {"default": "Bruins"}, "abbrev": "BOS", "score": 2},
				"periodDescriptor": {"number": 2, "periodType": "REG"},
				"clock": {"timeRemaining": "09:27", "inIntermission": false}
			}]
		}`))
	})

	sb, err := client.ScoresNow()
	if err != nil {
		t.Fatalf("ScoresNow: %v", err)
	}
	if len(sb.Games) != 1 {
		t.Fatalf("games = %d, want 1", len(sb.Games))
	}
	g := sb.Games[0]
	if g.AwayTeam.Abbrev != "TOR" || g.AwayTeam.Score != 3 {
		t.Errorf("away = %s %d", g.AwayTeam.Abbrev, g.AwayTeam.Score)
	}
	if g.GameState != GameStateLive {
		t.Errorf("state = %q", g.GameState)
	}
	if g.PeriodDescriptor.PeriodType != PeriodRegulation {
		t.Errorf("period type = %q", g.PeriodDescriptor.PeriodType)
	}
}

func TestBoxscorePath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gamecenter/2024020001/boxscore" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id": 2024020001, "gameState": "FINAL"}`))
	})

	box, err := client.Boxscore(2024020001)
	if err != nil {
		t.Fatalf("Boxscore: %v", err)
	}
	if box.ID != 2024020001 {
		t.Errorf("id = %d", box.ID)
	}
	if !box.GameState.Finished() {
		t.Errorf("FINAL not reported as finished")
	}
}

func TestAPIErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such game", http.StatusNotFound)
	})

	_, err := client.Boxscore(1)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
}

func TestGameStateHelpers(t *testing.T) {
	tests := []struct {
		state    GameState
		started  bool
		finished bool
	}{
		{GameStateFuture, false, false},
		{GameStatePreGame, false, false},
		{GameStateLive, true, false},
		{GameStateCritical, true, false},
		{GameStateFinal, true, true},
		{GameStateOff, true, true},
		{GameStatePostponed, false, false},
	}
	for _, tt := range tests {
		if got := tt.state.Started(); got != tt.started {
			t.Errorf("%s.Started() = %v, want %v", tt.state, got, tt.started)
		}
		if got := tt.state.Finished(); got != tt.finished {
			t.Errorf("%s.Finished() = %v, want %v", tt.state, got, tt.finished)
		}
	}
}

func TestTeamNameLookup(t *testing.T) {
	name, ok := AbbrevToCommonName("TOR")
	if !ok || name != "Maple Leafs" {
		t.Errorf("AbbrevToCommonName(TOR) = %q, %v", name, ok)
	}

	abbrev, ok := CommonNameToAbbrev("Maple Leafs")
	if !ok || abbrev != "TOR" {
		t.Errorf("CommonNameToAbbrev(Maple Leafs) = %q, %v", abbrev, ok)
	}

	if _, ok := AbbrevToCommonName("XXX"); ok {
		t.Error("unknown abbrev should not resolve")
	}
}
