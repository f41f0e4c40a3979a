package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pucktrack/nhl-tui/internal/nhl"
)

// Message types
type errMsg struct{ err error }
type tickMsg time.Time
type animFrameMsg time.Time

type scoresMsg struct{ board *nhl.Scoreboard }
type standingsMsg struct{ standings []nhl.Standing }
type boxscoreMsg struct {
	gameID int64
	box    *nhl.Boxscore
}
type clubStatsMsg struct {
	abbrev string
	stats  *nhl.ClubStats
}
type playerMsg struct{ player *nhl.PlayerLanding }

// animInterval paces the loading-dots animation.
const animInterval = 250 * time.Millisecond

// refreshTick schedules the next refresh at the configured cadence.
func (a *App) refreshTick() tea.Cmd {
	return tickCmd(time.Duration(a.config.RefreshInterval) * time.Second)
}

// tickCmd schedules the next data refresh.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// animCmd schedules the next loading animation frame.
func animCmd() tea.Cmd {
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return animFrameMsg(t)
	})
}

func (a *App) fetchScores() tea.Cmd {
	return func() tea.Msg {
		board, err := a.client.ScoresNow()
		if err != nil {
			return errMsg{err}
		}
		return scoresMsg{board: board}
	}
}

func (a *App) fetchStandings() tea.Cmd {
	return func() tea.Msg {
		standings, err := a.client.StandingsNow()
		if err != nil {
			return errMsg{err}
		}
		return standingsMsg{standings: standings}
	}
}

func (a *App) fetchBoxscore(gameID int64) tea.Cmd {
	return func() tea.Msg {
		box, err := a.client.Boxscore(gameID)
		if err != nil {
			return errMsg{err}
		}
		return boxscoreMsg{gameID: gameID, box: box}
	}
}

func (a *App) fetchClubStats(abbrev string) tea.Cmd {
	return func() tea.Msg {
		stats, err := a.client.ClubStatsNow(abbrev)
		if err != nil {
			return errMsg{err}
		}
		return clubStatsMsg{abbrev: abbrev, stats: stats}
	}
}

func (a *App) fetchPlayer(playerID int64) tea.Cmd {
	return func() tea.Msg {
		player, err := a.client.PlayerLanding(playerID)
		if err != nil {
			return errMsg{err}
		}
		return playerMsg{player: player}
	}
}
