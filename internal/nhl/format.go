package nhl

import (
	"fmt"
	"time"
)

// FormatPeriod renders a period descriptor as short text: "1st", "2nd",
// "3rd", "OT" ("2OT" for later overtimes) or "SO".
func FormatPeriod(number int, periodType PeriodType) string {
	switch periodType {
	case PeriodOvertime:
		if number > 4 {
			return fmt.Sprintf("%dOT", number-3)
		}
		return "OT"
	case PeriodShootout:
		return "SO"
	}
	switch number {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", number)
	}
}

// FormatStartTime converts a UTC start time to the local clock in the
// configured time format ("12h" or "24h"). Unparseable times render as
// "TBD".
func FormatStartTime(startTimeUTC, timeFormat string) string {
	t, err := time.Parse(time.RFC3339, startTimeUTC)
	if err != nil {
		return "TBD"
	}
	local := t.Local()
	if timeFormat == "24h" {
		return local.Format("15:04")
	}
	return local.Format("3:04 PM")
}

// FormatGameDate shortens an ISO game date to "MM/DD" for breadcrumbs.
func FormatGameDate(gameDate string) string {
	t, err := time.Parse("2006-01-02", gameDate)
	if err != nil {
		return gameDate
	}
	return t.Format("01/02")
}

// StatusText renders the one-line game status shown on score cards and
// above the big score: the start time before the game, period and clock
// while live, and a Final marker afterwards.
func StatusText(state GameState, period PeriodDescriptor, clock GameClock, startTimeUTC, timeFormat string) string {
	switch state {
	case GameStateFuture, GameStatePreGame:
		return FormatStartTime(startTimeUTC, timeFormat)
	case GameStateLive, GameStateCritical:
		p := FormatPeriod(period.Number, period.PeriodType)
		if clock.InIntermission {
			return p + " INT"
		}
		if clock.TimeRemaining == "" {
			return p
		}
		return p + " " + clock.TimeRemaining
	case GameStateFinal, GameStateOff:
		switch period.PeriodType {
		case PeriodOvertime:
			return "Final/OT"
		case PeriodShootout:
			return "Final/SO"
		default:
			return "Final"
		}
	case GameStatePostponed:
		return "Postponed"
	case GameStateSuspended:
		return "Suspended"
	}
	return ""
}

// GameStatus renders the status line for a scoreboard game.
func GameStatus(g Game, timeFormat string) string {
	return StatusText(g.GameState, g.PeriodDescriptor, g.Clock, g.StartTimeUTC, timeFormat)
}

// BoxscoreStatus renders the status line for a boxscore.
func BoxscoreStatus(b *Boxscore, timeFormat string) string {
	return StatusText(b.GameState, b.PeriodDescriptor, b.Clock, b.StartTimeUTC, timeFormat)
}
