// Package widgets holds the self-drawing leaf widgets embedded in
// documents: the big-digit scoreboard, the compact score box and the
// loading animation.
package widgets

// DigitWidth is the width of one big digit in cells.
const DigitWidth = 4

// DigitHeight is the height of one big digit in rows.
const DigitHeight = 4

// bigDigits is the half-block digit font, one 4x4 glyph per digit.
var bigDigits = [10][DigitHeight]string{
	{"▟▀▀▙", "█  █", "█  █", "▜▄▄▛"},
	{"▗█  ", " █  ", " █  ", "▗█▖ "},
	{"▟▀▀▙", "  ▗▛", " ▗▛ ", "▄█▄▄"},
	{"▟▀▀▙", " ▄▄▛", "   █", "▜▄▄▛"},
	{" ▗█ ", "▗▘█ ", "▙▄█▄", "  █ "},
	{"█▀▀▀", "█▄▄▖", "   █", "▜▄▄▛"},
	{"▗▛▀▘", "█▄▄▖", "█  █", "▜▄▄▛"},
	{"█▀▀█", "  ▟▘", " ▟▘ ", " █  "},
	{"▟▀▀▙", "▜▄▄▛", "█  █", "▜▄▄▛"},
	{"▟▀▀▙", "▜▄▄█", "  ▗▛", "▗▄▛ "},
}

// digitRows returns the glyph rows for a single digit.
func digitRows(n int) [DigitHeight]string {
	if n < 0 {
		n = 0
	}
	return bigDigits[n%10]
}

// scoreDigits splits a score into its digits. Scores are shown with at
// most two digits; anything above 99 caps at 99.
func scoreDigits(score int) []int {
	switch {
	case score < 0:
		return []int{0}
	case score < 10:
		return []int{score}
	case score < 100:
		return []int{score / 10, score % 10}
	default:
		return []int{9, 9}
	}
}

// scoreWidth is the drawn width of a score's digits including the gaps
// between them.
func scoreWidth(score int) int {
	n := len(scoreDigits(score))
	return n*DigitWidth + (n-1)*digitGap
}
