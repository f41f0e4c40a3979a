package styles

// BoxChars is the box-drawing glyph set used for borders, rules, selectors
// and breadcrumbs. Two sets exist: unicode and an ASCII fallback for
// terminals without good glyph coverage.
type BoxChars struct {
	// Single-line
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	LeftT       rune
	RightT      rune
	Cross       rune

	// Double-line
	DoubleHorizontal rune
	DoubleVertical   rune

	// Mixed double-horizontal/single-vertical, used for the team boxscore
	// section borders.
	MixedDHTopLeft     rune
	MixedDHTopRight    rune
	MixedDHBottomLeft  rune
	MixedDHBottomRight rune
	MixedDHLeftT       rune
	MixedDHRightT      rune

	Selector      rune
	BreadcrumbSep rune
	Checkmark     rune
}

// UnicodeBoxChars returns the unicode glyph set.
func UnicodeBoxChars() BoxChars {
	return BoxChars{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		LeftT:       '├',
		RightT:      '┤',
		Cross:       '┼',

		DoubleHorizontal: '═',
		DoubleVertical:   '║',

		MixedDHTopLeft:     '╒',
		MixedDHTopRight:    '╕',
		MixedDHBottomLeft:  '╘',
		MixedDHBottomRight: '╛',
		MixedDHLeftT:       '╞',
		MixedDHRightT:      '╡',

		Selector:      '▶',
		BreadcrumbSep: '▶',
		Checkmark:     '✓',
	}
}

// ASCIIBoxChars returns the ASCII fallback glyph set.
func ASCIIBoxChars() BoxChars {
	return BoxChars{
		Horizontal:  '-',
		Vertical:    '|',
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		LeftT:       '+',
		RightT:      '+',
		Cross:       '+',

		DoubleHorizontal: '=',
		DoubleVertical:   '|',

		MixedDHTopLeft:     '+',
		MixedDHTopRight:    '+',
		MixedDHBottomLeft:  '+',
		MixedDHBottomRight: '+',
		MixedDHLeftT:       '+',
		MixedDHRightT:      '+',

		Selector:      '>',
		BreadcrumbSep: '>',
		Checkmark:     '*',
	}
}

// BoxCharsFor selects the glyph set for the unicode setting.
func BoxCharsFor(unicode bool) BoxChars {
	if unicode {
		return UnicodeBoxChars()
	}
	return ASCIIBoxChars()
}
