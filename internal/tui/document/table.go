package document

import (
	"github.com/mattn/go-runewidth"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// selectorWidth is the width of the row-selector gutter: glyph plus one
// space, or blank padding on unfocused rows.
const selectorWidth = 2

// columnGap is the spacing between table columns.
const columnGap = 2

// Alignment controls horizontal cell alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// CellKind distinguishes plain cells from ones that receive selection
// styling when their row is focused.
type CellKind int

const (
	// CellText is a plain cell.
	CellText CellKind = iota
	// CellStyled receives selection styling but activates nothing.
	CellStyled
	// CellPlayerLink opens the player's detail document.
	CellPlayerLink
	// CellTeamLink opens the team's detail document.
	CellTeamLink
)

// Cell is one rendered table cell.
type Cell struct {
	Kind       CellKind
	Text       string
	PlayerID   int64
	TeamAbbrev string
}

// TextCell builds a plain cell.
func TextCell(text string) Cell {
	return Cell{Kind: CellText, Text: text}
}

// StyledCell builds a cell that shares the row's selection styling.
func StyledCell(text string) Cell {
	return Cell{Kind: CellStyled, Text: text}
}

// PlayerLinkCell builds a cell linking to a player detail document.
func PlayerLinkCell(display string, playerID int64) Cell {
	return Cell{Kind: CellPlayerLink, Text: display, PlayerID: playerID}
}

// TeamLinkCell builds a cell linking to a team detail document.
func TeamLinkCell(display, abbrev string) Cell {
	return Cell{Kind: CellTeamLink, Text: display, TeamAbbrev: abbrev}
}

// receivesSelectionStyle reports whether the cell is highlighted when its
// row is focused.
func (c Cell) receivesSelectionStyle() bool {
	return c.Kind != CellText
}

// Column defines one table column over row type T: header, fixed width,
// alignment and the cell extractor.
type Column[T any] struct {
	Title string
	Width int
	Align Alignment
	Value func(T) Cell
}

// NewColumn builds a column definition.
func NewColumn[T any](title string, width int, align Alignment, value func(T) Cell) Column[T] {
	return Column[T]{Title: title, Width: width, Align: align, Value: value}
}

// Table is a bordered statistics table element: a bold header row, a rule,
// then data rows. A focused row shows the selector glyph and selection
// styling on its link-like cells.
type Table struct {
	id         string
	headers    []string
	widths     []int
	aligns     []Alignment
	rows       [][]Cell
	focusedRow int
}

// NewTable builds a table from column definitions and row data.
func NewTable[T any](id string, columns []Column[T], data []T) *Table {
	t := &Table{
		id:         id,
		headers:    make([]string, len(columns)),
		widths:     make([]int, len(columns)),
		aligns:     make([]Alignment, len(columns)),
		rows:       make([][]Cell, len(data)),
		focusedRow: -1,
	}
	for i, col := range columns {
		t.headers[i] = col.Title
		t.widths[i] = col.Width
		t.aligns[i] = col.Align
	}
	for r, item := range data {
		cells := make([]Cell, len(columns))
		for i, col := range columns {
			cells[i] = col.Value(item)
		}
		t.rows[r] = cells
	}
	return t
}

// WithFocusedRow marks a row as focused. Pass -1 for none.
func (t *Table) WithFocusedRow(row int) *Table {
	t.focusedRow = row
	return t
}

// ID returns the table's identity used in focus keys.
func (t *Table) ID() string { return t.id }

// RowCount returns the number of data rows.
func (t *Table) RowCount() int { return len(t.rows) }

// Height returns header + rule + data rows.
func (t *Table) Height() int { return 2 + len(t.rows) }

// totalWidth is the drawn width: selector gutter plus columns and gaps.
func (t *Table) totalWidth() int {
	total := selectorWidth
	for i, w := range t.widths {
		if i > 0 {
			total += columnGap
		}
		total += w
	}
	return total
}

// formatCell truncates and pads text to the column width.
func formatCell(text string, width int, align Alignment) string {
	text = runewidth.Truncate(text, width, "")
	switch align {
	case AlignRight:
		return runewidth.FillLeft(text, width)
	case AlignCenter:
		pad := width - runewidth.StringWidth(text)
		left := pad / 2
		return runewidth.FillRight(runewidth.FillLeft(text, runewidth.StringWidth(text)+left), width)
	default:
		return runewidth.FillRight(text, width)
	}
}

// render draws the table into the area, clipped at its edges.
func (t *Table) render(area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	if area.Empty() {
		return
	}

	y := area.Y

	// Column headers
	if y < area.Bottom() {
		x := area.X + selectorWidth
		headerStyle := ctx.Text().Bold(true)
		for i, header := range t.headers {
			formatted := formatCell(header, t.widths[i], t.aligns[i])
			buf.SetStringClipped(x, y, formatted, headerStyle, area.Right()-x)
			x += t.widths[i] + columnGap
		}
		y++
	}

	// Rule under the headers
	if y < area.Bottom() {
		ruleWidth := t.totalWidth() - selectorWidth
		if ruleWidth > area.Width-selectorWidth {
			ruleWidth = area.Width - selectorWidth
		}
		buf.HLine(area.X+selectorWidth, y, ruleWidth, ctx.Boxes.Horizontal, ctx.Muted())
		y++
	}

	// Data rows
	for rowIdx, cells := range t.rows {
		if y >= area.Bottom() {
			break
		}
		rowFocused := t.focusedRow == rowIdx

		if rowFocused {
			buf.SetRune(area.X, y, ctx.Boxes.Selector, ctx.Muted())
		}

		x := area.X + selectorWidth
		for i, cell := range cells {
			formatted := formatCell(cell.Text, t.widths[i], t.aligns[i])
			var style = ctx.Text()
			if rowFocused && cell.receivesSelectionStyle() {
				style = ctx.Selection()
			}
			buf.SetStringClipped(x, y, formatted, style, area.Right()-x)

			// Bridge the gap when this cell and the next are both
			// selection-styled, so the highlight reads as one run.
			if rowFocused && cell.receivesSelectionStyle() &&
				i+1 < len(cells) && cells[i+1].receivesSelectionStyle() {
				buf.SetStringClipped(x+t.widths[i], y, "  ", style, area.Right()-(x+t.widths[i]))
			}

			x += t.widths[i] + columnGap
		}
		y++
	}
}
