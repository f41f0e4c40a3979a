package document

import (
	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// TeamBoxscoreWidth is the fixed width of one team's boxscore panel.
const TeamBoxscoreWidth = 85

// TeamBoxscoreGap separates the two panels when rendered side by side.
const TeamBoxscoreGap = 2

// SideBySideMinWidth is the narrowest document width at which the two
// team panels fit next to each other.
const SideBySideMinWidth = 2*TeamBoxscoreWidth + TeamBoxscoreGap


// TeamBoxscore is one team's player statistics panel: up to three sections
// (forwards, defense, goalies) stacked inside a shared border. Empty
// sections are skipped entirely.
type TeamBoxscore struct {
	TeamName string
	Forwards *Table
	Defense  *Table
	Goalies  *Table
}

type boxscoreSection struct {
	title string
	table *Table
}

func (tb *TeamBoxscore) sections() []boxscoreSection {
	var out []boxscoreSection
	for _, s := range []boxscoreSection{
		{title: tb.TeamName + " - Forwards", table: tb.Forwards},
		{title: tb.TeamName + " - Defense", table: tb.Defense},
		{title: tb.TeamName + " - Goalies", table: tb.Goalies},
	} {
		if s.table != nil && s.table.RowCount() > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Height sums the section blocks plus the bottom border. Each section is
// a title border row, a blank row, the table and a trailing blank row.
func (tb *TeamBoxscore) Height() int {
	sections := tb.sections()
	if len(sections) == 0 {
		return 0
	}
	total := 1
	for _, s := range sections {
		total += 3 + s.table.Height()
	}
	return total
}

// PreferredWidth returns the fixed panel width.
func (tb *TeamBoxscore) PreferredWidth() int { return TeamBoxscoreWidth }

// render draws the panel: a title border for each section (double
// horizontal rules with mixed corners), vertical side borders, and the
// section tables inset from the border.
func (tb *TeamBoxscore) render(area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	sections := tb.sections()
	if len(sections) == 0 || area.Empty() {
		return
	}

	width := min(TeamBoxscoreWidth, area.Width)
	border := ctx.Muted()
	y := area.Y

	drawSides := func(y int) {
		buf.SetRune(area.X, y, ctx.Boxes.Vertical, border)
		buf.SetRune(area.X+width-1, y, ctx.Boxes.Vertical, border)
	}

	for i, s := range sections {
		if y >= area.Bottom() {
			return
		}

		tb.renderSectionHeader(area.X, y, width, s.title, i == 0, buf, ctx)
		y++

		if y >= area.Bottom() {
			return
		}
		drawSides(y)
		y++

		// Table content sits between the side borders.
		tableArea := grid.NewRect(
			area.X+1, y,
			width-2, min(s.table.Height(), area.Bottom()-y),
		)
		for row := 0; row < s.table.Height() && y+row < area.Bottom(); row++ {
			drawSides(y + row)
		}
		s.table.render(tableArea, buf, ctx)
		y += min(s.table.Height(), area.Bottom()-y)

		if y >= area.Bottom() {
			return
		}
		drawSides(y)
		y++
	}

	if y >= area.Bottom() {
		return
	}
	buf.SetRune(area.X, y, ctx.Boxes.MixedDHBottomLeft, border)
	buf.HLine(area.X+1, y, width-2, ctx.Boxes.DoubleHorizontal, border)
	buf.SetRune(area.X+width-1, y, ctx.Boxes.MixedDHBottomRight, border)
}

// renderSectionHeader draws one title border row:
//
//	first section:  ╒══╡ Title ╞═══════╕
//	later sections: ╞══╡ Title ╞═══════╡
func (tb *TeamBoxscore) renderSectionHeader(x, y, width int, title string, first bool, buf *grid.Buffer, ctx *styles.Context) {
	border := ctx.Muted()
	left, right := ctx.Boxes.MixedDHLeftT, ctx.Boxes.MixedDHRightT
	if first {
		left, right = ctx.Boxes.MixedDHTopLeft, ctx.Boxes.MixedDHTopRight
	}

	buf.SetRune(x, y, left, border)
	buf.HLine(x+1, y, 2, ctx.Boxes.DoubleHorizontal, border)
	buf.SetRune(x+3, y, ctx.Boxes.MixedDHRightT, border)

	titleText := " " + title + " "
	buf.SetStringClipped(x+4, y, titleText, ctx.Text(), width-6)

	suffixX := x + 4 + len([]rune(titleText))
	buf.SetRune(suffixX, y, ctx.Boxes.MixedDHLeftT, border)
	buf.HLine(suffixX+1, y, x+width-1-(suffixX+1), ctx.Boxes.DoubleHorizontal, border)
	buf.SetRune(x+width-1, y, right, border)
}
