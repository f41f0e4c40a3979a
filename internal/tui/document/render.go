package document

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// Render draws one element into the given area of the buffer. Content that
// does not fit the area is clipped at its edges.
func Render(e Element, area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	if area.Empty() {
		return
	}

	switch el := e.(type) {
	case Text:
		style := ctx.Text()
		if el.Style != nil {
			style = *el.Style
		}
		y := area.Y
		for _, line := range strings.Split(el.Content, "\n") {
			if y >= area.Bottom() {
				break
			}
			buf.SetStringClipped(area.X, y, line, style, area.Width)
			y++
		}

	case Heading:
		buf.SetStringClipped(area.X, area.Y, el.Content, ctx.Heading(el.Level), area.Width)
		if el.Level == 1 && area.Height > 1 {
			rule := runewidth.StringWidth(el.Content)
			if rule > area.Width {
				rule = area.Width
			}
			buf.HLine(area.X, area.Y+1, rule, ctx.Boxes.DoubleHorizontal, ctx.Muted())
		}

	case SectionTitle:
		buf.SetStringClipped(area.X, area.Y, el.Content, ctx.SectionTitle(), area.Width)
		if el.Underline && area.Height > 1 {
			rule := runewidth.StringWidth(el.Content)
			if rule > area.Width {
				rule = area.Width
			}
			buf.HLine(area.X, area.Y+1, rule, ctx.Boxes.Horizontal, ctx.Muted())
		}

	case Link:
		if el.Focused {
			buf.SetRune(area.X, area.Y, ctx.Boxes.Selector, ctx.Emphasis())
			buf.SetStringClipped(area.X+selectorWidth, area.Y, el.Display, ctx.FocusedLink(), area.Width-selectorWidth)
		} else {
			buf.SetStringClipped(area.X+selectorWidth, area.Y, el.Display, ctx.Text(), area.Width-selectorWidth)
		}

	case Separator:
		buf.HLine(area.X, area.Y, area.Width, ctx.Boxes.Horizontal, ctx.Muted())

	case Spacer:
		// Whitespace only.

	case Group:
		renderStack(el.Children, area, buf, ctx)
		if el.Style != nil {
			buf.SetStyle(area, *el.Style)
		}

	case Row:
		renderRow(el, area, buf, ctx)

	case *Table:
		el.render(area, buf, ctx)

	case *TeamBoxscore:
		el.render(area, buf, ctx)

	case Widget:
		el.RenderWidget(area, buf, ctx)
	}
}

// renderStack lays elements out vertically inside the area, clipping the
// overflow. Elements entirely below the bottom edge are skipped.
func renderStack(elements []Element, area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	y := area.Y
	for _, e := range elements {
		if y >= area.Bottom() {
			break
		}
		h := e.Height()
		Render(e, grid.NewRect(area.X, y, area.Width, min(h, area.Bottom()-y)), buf, ctx)
		y += h
	}
}

// renderRow lays children out horizontally. When every child has a
// preferred width those widths are honored, with RowSpread widening the
// gap to fill the area; otherwise the width is split equally.
func renderRow(r Row, area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	n := len(r.Children)
	if n == 0 {
		return
	}

	widths := make([]int, n)
	allHinted := true
	total := 0
	for i, c := range r.Children {
		w, ok := preferredWidth(c)
		if !ok || w <= 0 {
			allHinted = false
			break
		}
		widths[i] = w
		total += w
	}

	gap := r.Gap
	if !allHinted {
		// Equal split of the available width.
		avail := area.Width - gap*(n-1)
		if avail < n {
			avail = n
		}
		each := avail / n
		for i := range widths {
			widths[i] = each
		}
	} else if r.Align == RowSpread && n > 1 {
		spread := (area.Width - total) / (n - 1)
		if spread > gap {
			gap = spread
		}
	}

	x := area.X
	for i, c := range r.Children {
		if x >= area.Right() {
			break
		}
		w := min(widths[i], area.Right()-x)
		Render(c, grid.NewRect(x, area.Y, w, area.Height), buf, ctx)
		x += widths[i] + gap
	}
}
