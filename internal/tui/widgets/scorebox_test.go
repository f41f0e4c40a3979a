package widgets

import (
	"testing"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
)

func TestScoreBoxLayout(t *testing.T) {
	box := ScoreBox{
		AwayName: "Devils", HomeName: "Sabres",
		AwayScore: 3, HomeScore: 2,
		ShowScores: true,
		Status:     "Final",
	}

	buf := grid.NewBuffer(ScoreBoxWidth, ScoreBoxHeight)
	box.RenderWidget(buf.Area(), buf, testCtx())

	assertLines(t, buf, []string{
		"╭────────────────────╮",
		"│ Devils           3 │",
		"│ Sabres           2 │",
		"│ Final              │",
		"╰────────────────────╯",
	})
}

func TestScoreBoxHidesScoresBeforeStart(t *testing.T) {
	box := ScoreBox{
		AwayName: "Devils", HomeName: "Sabres",
		Status: "7:00 PM",
	}

	buf := grid.NewBuffer(ScoreBoxWidth, ScoreBoxHeight)
	box.RenderWidget(buf.Area(), buf, testCtx())

	assertLines(t, buf, []string{
		"╭────────────────────╮",
		"│ Devils             │",
		"│ Sabres             │",
		"│ 7:00 PM            │",
		"╰────────────────────╯",
	})
}

func TestScoreBoxTruncatesLongNames(t *testing.T) {
	box := ScoreBox{
		AwayName: "Columbus Blue Jackets Alumni", HomeName: "Wild",
		AwayScore: 1, HomeScore: 0,
		ShowScores: true,
		Status:     "OT 02:11",
	}

	buf := grid.NewBuffer(ScoreBoxWidth, ScoreBoxHeight)
	box.RenderWidget(buf.Area(), buf, testCtx())

	line := buf.Line(1)
	if got := len([]rune(line)); got != ScoreBoxWidth {
		t.Errorf("away line width = %d, want %d", got, ScoreBoxWidth)
	}
}
