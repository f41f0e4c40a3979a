package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// separatorRows is the dash drawn between the two scores.
var separatorRows = [DigitHeight]string{"      ", "  ▄▄  ", "      ", "      "}

const (
	separatorWidth = 6

	// nameBoxWidth is the base width reserved for each team name.
	nameBoxWidth = 20

	// nameDigitGap separates a name box from its score digits.
	nameDigitGap = 2

	// digitGap separates the digits of a two-digit score.
	digitGap = 1

	headerHeight = 2
	footerHeight = 2
)

// BigScore draws a game score in the big-digit font:
//
//	             Final
//
//	         ▟▀▀▙      ▟▀▀▙
//	Devils    ▄▄▛  ▄▄    ▗▛  Sabres
//	            █       ▗▛
//	         ▜▄▄▛      ▄█▄▄
//
//	           TD Garden
//
// The status line and venue are centered over the full area; the score
// block itself is centered with the team names flanking the digits.
type BigScore struct {
	AwayName  string
	HomeName  string
	AwayScore int
	HomeScore int
	Status    string
	Venue     string
}

// balancedNameBoxes widens the name box opposite the wider score so the
// separator stays centered.
func (b BigScore) balancedNameBoxes() (away, home int) {
	awayDigits := scoreWidth(b.AwayScore)
	homeDigits := scoreWidth(b.HomeScore)
	switch {
	case awayDigits > homeDigits:
		return nameBoxWidth, nameBoxWidth + awayDigits - homeDigits
	case homeDigits > awayDigits:
		return nameBoxWidth + homeDigits - awayDigits, nameBoxWidth
	default:
		return nameBoxWidth, nameBoxWidth
	}
}

// PreferredWidth is the full score block width: both name boxes, both
// digit runs, the separator and the gaps.
func (b BigScore) PreferredWidth() int {
	awayBox, homeBox := b.balancedNameBoxes()
	return awayBox + nameDigitGap + scoreWidth(b.AwayScore) +
		separatorWidth + scoreWidth(b.HomeScore) + nameDigitGap + homeBox
}

// Height is status, blank, four digit rows, blank, venue.
func (b BigScore) Height() int {
	return headerHeight + DigitHeight + footerHeight
}

// RenderWidget draws the score block. Areas too small for the full block
// draw nothing rather than a partial layout.
func (b BigScore) RenderWidget(area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	if area.Height < b.Height() || area.Width < b.PreferredWidth() {
		return
	}

	style := ctx.Text()

	centered := func(y int, text string) {
		x := area.X + (area.Width-runewidth.StringWidth(text))/2
		buf.SetString(x, y, text, style)
	}

	centered(area.Y, b.Status)

	digitsY := area.Y + headerHeight
	awayBox, _ := b.balancedNameBoxes()
	awayDigitsWidth := scoreWidth(b.AwayScore)
	startX := area.X + (area.Width-b.PreferredWidth())/2

	// Team names sit on the second digit row.
	nameRow := digitsY + 1
	buf.SetString(startX+awayBox-runewidth.StringWidth(b.AwayName), nameRow, b.AwayName, style)

	awayDigitsX := startX + awayBox + nameDigitGap
	homeDigitsX := awayDigitsX + awayDigitsWidth + separatorWidth
	buf.SetString(homeDigitsX+scoreWidth(b.HomeScore)+nameDigitGap, nameRow, b.HomeName, style)

	awayDigits := scoreDigits(b.AwayScore)
	homeDigits := scoreDigits(b.HomeScore)
	for row := 0; row < DigitHeight; row++ {
		x := awayDigitsX
		for i, d := range awayDigits {
			if i > 0 {
				x += digitGap
			}
			buf.SetString(x, digitsY+row, digitRows(d)[row], style)
			x += DigitWidth
		}
		buf.SetString(x, digitsY+row, separatorRows[row], style)
		x += separatorWidth
		for i, d := range homeDigits {
			if i > 0 {
				x += digitGap
			}
			buf.SetString(x, digitsY+row, digitRows(d)[row], style)
			x += DigitWidth
		}
	}

	centered(digitsY+DigitHeight+1, b.Venue)
}
