// Package grid provides the cell-grid drawing surface the TUI renders into.
// A Buffer is a fixed-size 2D grid of styled cells; widgets draw into a Rect
// of the buffer and the final frame is serialized once per render pass.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is a single character cell with its display style.
// A zero rune marks the continuation cell of a preceding wide glyph.
type Cell struct {
	Rune  rune
	Style lipgloss.Style
}

// Buffer is a 2D grid of cells representing one terminal frame.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given size filled with blank cells.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Rune = ' '
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Area returns the rectangle covering the whole buffer.
func (b *Buffer) Area() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// InBounds reports whether the given coordinates are inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) index(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at the given coordinates, or a blank cell when out
// of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return b.cells[b.index(x, y)]
}

// Set places a cell at the given coordinates. Out-of-bounds writes are
// silently dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// SetRune places a rune at the given coordinates with the given style.
func (b *Buffer) SetRune(x, y int, r rune, style lipgloss.Style) {
	b.Set(x, y, Cell{Rune: r, Style: style})
}

// SetString writes a string starting at the given coordinates, clipped to
// the buffer edge. Wide glyphs occupy two cells; the continuation cell is
// marked with a zero rune. Returns the number of columns written.
func (b *Buffer) SetString(x, y int, s string, style lipgloss.Style) int {
	return b.SetStringClipped(x, y, s, style, b.width-x)
}

// SetStringClipped writes a string, stopping after maxWidth columns. A wide
// glyph that would straddle the limit is not written.
func (b *Buffer) SetStringClipped(x, y int, s string, style lipgloss.Style, maxWidth int) int {
	if y < 0 || y >= b.height || maxWidth <= 0 {
		return 0
	}
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if written+w > maxWidth || x+w > b.width {
			break
		}
		b.Set(x, y, Cell{Rune: r, Style: style})
		if w == 2 {
			b.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		written += w
	}
	return written
}

// FillRect fills a rectangular region with the given rune and style,
// clipped to the buffer.
func (b *Buffer) FillRect(area Rect, r rune, style lipgloss.Style) {
	clipped := area.Intersect(b.Area())
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			b.Set(x, y, Cell{Rune: r, Style: style})
		}
	}
}

// SetStyle applies a style to every cell in the region, keeping runes.
func (b *Buffer) SetStyle(area Rect, style lipgloss.Style) {
	clipped := area.Intersect(b.Area())
	for y := clipped.Y; y < clipped.Bottom(); y++ {
		for x := clipped.X; x < clipped.Right(); x++ {
			c := b.cells[b.index(x, y)]
			c.Style = style
			b.cells[b.index(x, y)] = c
		}
	}
}

// HLine draws a horizontal run of the given rune.
func (b *Buffer) HLine(x, y, length int, r rune, style lipgloss.Style) {
	for i := 0; i < length; i++ {
		b.SetRune(x+i, y, r, style)
	}
}

// VLine draws a vertical run of the given rune.
func (b *Buffer) VLine(x, y, length int, r rune, style lipgloss.Style) {
	for i := 0; i < length; i++ {
		b.SetRune(x, y+i, r, style)
	}
}

// CopyRows copies srcRows rows from src starting at srcY into this buffer
// starting at dstY. Rows are clipped to both buffers. Used by the document
// view to blit the visible slice of a pre-rendered element.
func (b *Buffer) CopyRows(src *Buffer, srcY, dstX, dstY, rows int) {
	for row := 0; row < rows; row++ {
		sy := srcY + row
		dy := dstY + row
		if sy < 0 || sy >= src.height || dy < 0 || dy >= b.height {
			continue
		}
		for x := 0; x < src.width; x++ {
			if dstX+x >= b.width {
				break
			}
			b.Set(dstX+x, dy, src.Get(x, sy))
		}
	}
}

// Line returns the plain text of one row, without styling. Continuation
// cells of wide glyphs are skipped.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[b.index(x, y)]
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Lines returns the plain text of every row. Intended for tests.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		lines[y] = b.Line(y)
	}
	return lines
}

// Render serializes the buffer to a styled string, one terminal line per
// row. Consecutive cells are rendered individually through their lipgloss
// styles; frames are small enough that run merging is not worth the
// bookkeeping.
func (b *Buffer) Render() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < b.width {
			c := b.cells[b.index(x, y)]
			if c.Rune == 0 {
				x++
				continue
			}
			// Batch a run of cells sharing the same style value so the
			// escape-sequence overhead stays proportional to style changes.
			var run strings.Builder
			run.WriteRune(c.Rune)
			style := c.Style
			x++
			for x < b.width {
				next := b.cells[b.index(x, y)]
				if next.Rune == 0 {
					x++
					continue
				}
				if !sameStyle(style, next.Style) {
					break
				}
				run.WriteRune(next.Rune)
				x++
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// sameStyle compares two styles by their rendered form. lipgloss styles are
// not comparable values, so probe both with a sentinel.
func sameStyle(a, c lipgloss.Style) bool {
	return a.Render("\x00") == c.Render("\x00")
}
