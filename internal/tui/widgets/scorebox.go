package widgets

import (
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// ScoreBoxWidth is the fixed width of one compact score box.
const ScoreBoxWidth = 22

// ScoreBoxHeight is the fixed height of one compact score box.
const ScoreBoxHeight = 5

// ScoreBox is the compact per-game card shown on the scores grid: team
// lines with right-aligned scores and a status line, inside a rounded
// border. The selected card draws its border in the emphasis style.
type ScoreBox struct {
	AwayName  string
	HomeName  string
	AwayScore int
	HomeScore int
	// ShowScores is false before a game starts; the score column is
	// left blank instead of showing 0-0.
	ShowScores bool
	Status     string
	Selected   bool
}

func (ScoreBox) Height() int         { return ScoreBoxHeight }
func (ScoreBox) PreferredWidth() int { return ScoreBoxWidth }

func (s ScoreBox) teamLine(name string, score int) string {
	inner := ScoreBoxWidth - 4
	scoreText := ""
	if s.ShowScores {
		scoreText = strconv.Itoa(score)
	}
	nameWidth := inner - runewidth.StringWidth(scoreText)
	if nameWidth < 0 {
		nameWidth = 0
	}
	return runewidth.FillRight(runewidth.Truncate(name, nameWidth, ""), nameWidth) + scoreText
}

// RenderWidget draws the card clipped to the area.
func (s ScoreBox) RenderWidget(area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	if area.Empty() {
		return
	}

	width := min(ScoreBoxWidth, area.Width)
	border := ctx.Muted()
	if s.Selected {
		border = ctx.Emphasis()
	}
	text := ctx.Text()

	row := func(y int, left, fill, right rune) {
		buf.SetRune(area.X, y, left, border)
		buf.HLine(area.X+1, y, width-2, fill, border)
		buf.SetRune(area.X+width-1, y, right, border)
	}
	sides := func(y int) {
		buf.SetRune(area.X, y, ctx.Boxes.Vertical, border)
		buf.SetRune(area.X+width-1, y, ctx.Boxes.Vertical, border)
	}
	content := func(y int, line string) {
		if y >= area.Bottom() {
			return
		}
		sides(y)
		buf.SetStringClipped(area.X+2, y, line, text, width-4)
	}

	row(area.Y, ctx.Boxes.TopLeft, ctx.Boxes.Horizontal, ctx.Boxes.TopRight)
	content(area.Y+1, s.teamLine(s.AwayName, s.AwayScore))
	content(area.Y+2, s.teamLine(s.HomeName, s.HomeScore))
	content(area.Y+3, s.Status)
	if area.Y+4 < area.Bottom() {
		row(area.Y+4, ctx.Boxes.BottomLeft, ctx.Boxes.Horizontal, ctx.Boxes.BottomRight)
	}
}
