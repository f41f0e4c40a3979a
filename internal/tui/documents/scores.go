package documents

import (
	"fmt"

	"github.com/pucktrack/nhl-tui/internal/nhl"
	"github.com/pucktrack/nhl-tui/internal/tui/document"
	"github.com/pucktrack/nhl-tui/internal/tui/widgets"
)

// scoreBoxGap separates score cards horizontally.
const scoreBoxGap = 2

// Scores is the scores tab root: a grid of compact score cards, one per
// game, each opening the game's boxscore.
type Scores struct {
	Board      *nhl.Scoreboard
	TimeFormat string
}

func (s *Scores) ID() string    { return "scores" }
func (s *Scores) Title() string { return "Scores" }

func gameKey(g nhl.Game) string {
	return fmt.Sprintf("game_%d", g.ID)
}

func (s *Scores) Build(fc *document.FocusContext) []document.Element {
	builder := document.NewBuilder()
	if len(s.Board.Games) == 0 {
		builder.Text("No games scheduled for " + s.Board.CurrentDate + ".")
		return builder.Build()
	}

	perRow := 1
	if fc.AvailableWidth > 0 {
		perRow = (fc.AvailableWidth + scoreBoxGap) / (widgets.ScoreBoxWidth + scoreBoxGap)
		if perRow < 1 {
			perRow = 1
		}
	}

	for start := 0; start < len(s.Board.Games); start += perRow {
		end := min(start+perRow, len(s.Board.Games))
		boxes := make([]document.Element, 0, end-start)
		for _, g := range s.Board.Games[start:end] {
			boxes = append(boxes, widgets.ScoreBox{
				AwayName:   g.AwayTeam.Name.Default,
				HomeName:   g.HomeTeam.Name.Default,
				AwayScore:  g.AwayTeam.Score,
				HomeScore:  g.HomeTeam.Score,
				ShowScores: g.GameState.Started(),
				Status:     nhl.GameStatus(g, s.TimeFormat),
				Selected:   fc.IsLinkFocused(gameKey(g)),
			})
		}
		if start > 0 {
			builder.Spacer(1)
		}
		builder.Row(scoreBoxGap, document.RowLeft, boxes...)
	}
	return builder.Build()
}

func (s *Scores) FocusablePositions() []document.FocusKey {
	keys := make([]document.FocusKey, 0, len(s.Board.Games))
	for _, g := range s.Board.Games {
		target := document.GameTarget(g.ID, g.AwayTeam.Abbrev, g.HomeTeam.Abbrev,
			g.AwayTeam.Score, g.HomeTeam.Score)
		target.GameDate = nhl.FormatGameDate(g.GameDate)
		keys = append(keys, document.LinkKey(gameKey(g), target))
	}
	return keys
}
