package document

import (
	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// View windows a document onto a target area: it owns the linear focus
// index and the scroll offset, rebuilds the element list each frame, and
// blits the visible slice into the frame buffer.
//
// The stored scroll offset is kept verbatim and only clamped against the
// content height at render time, so a value saved against a taller layout
// stays valid when the document is shown again at another size.
type View struct {
	doc          Document
	focusIndex   int
	scrollOffset int
}

// NewView creates a view over the document with no focus and no scroll.
func NewView(doc Document) *View {
	return &View{doc: doc, focusIndex: -1}
}

// Document returns the underlying document.
func (v *View) Document() Document { return v.doc }

// SetDocument swaps in a rebuilt document, keeping focus and scroll. Used
// when fresh data replaces the data a persistent view was created over.
func (v *View) SetDocument(doc Document) { v.doc = doc }

// FocusIndex returns the stored focus index (-1 when nothing is focused).
func (v *View) FocusIndex() int { return v.focusIndex }

// SetFocusIndex restores a saved focus index verbatim.
func (v *View) SetFocusIndex(i int) { v.focusIndex = i }

// ScrollOffset returns the stored scroll offset.
func (v *View) ScrollOffset() int { return v.scrollOffset }

// SetScrollOffset restores a saved scroll offset verbatim.
func (v *View) SetScrollOffset(offset int) { v.scrollOffset = offset }

// FocusableCount returns the number of focusable units the document
// currently exposes.
func (v *View) FocusableCount() int {
	return len(v.doc.FocusablePositions())
}

// MoveFocus shifts the focus by delta, clamping to the focusable range.
// Moving with no current focus lands on the first unit.
func (v *View) MoveFocus(delta int) {
	count := v.FocusableCount()
	if count == 0 {
		v.focusIndex = -1
		return
	}
	i := v.focusIndex
	if i < 0 {
		i = 0
	} else {
		i += delta
	}
	if i < 0 {
		i = 0
	}
	if i >= count {
		i = count - 1
	}
	v.focusIndex = i
}

// FocusedTarget returns the activation target of the focused unit.
func (v *View) FocusedTarget() (LinkTarget, bool) {
	positions := v.doc.FocusablePositions()
	if len(positions) == 0 || v.focusIndex < 0 {
		return LinkTarget{}, false
	}
	i := v.focusIndex
	if i >= len(positions) {
		i = len(positions) - 1
	}
	return positions[i].Target, true
}

// ScrollBy shifts the scroll offset. Negative offsets are clamped here;
// the upper bound is applied at render against the content height.
func (v *View) ScrollBy(delta int) {
	v.scrollOffset += delta
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
}

// ScrollToFocus adjusts the scroll offset so the focused unit is inside a
// viewport of the given width and height. The unicode flag must match the
// one the document renders with; element heights depend on it.
func (v *View) ScrollToFocus(width, height int, unicode bool) {
	if v.focusIndex < 0 || height <= 0 {
		return
	}
	fc := NewFocusContext(width, unicode)
	fc.SetPositions(v.doc.FocusablePositions())
	elements := v.doc.Build(fc)

	i := v.focusIndex
	if count := v.FocusableCount(); count > 0 && i >= count {
		i = count - 1
	}
	top, ok := focusableRow(elements, i)
	if !ok {
		return
	}
	if top < v.scrollOffset {
		v.scrollOffset = top
	}
	if top >= v.scrollOffset+height {
		v.scrollOffset = top - height + 1
	}
}

// Render draws the visible slice of the document into the area. Elements
// fully above the viewport are skipped, fully visible ones draw straight
// into the frame, and partially visible ones render into a scratch buffer
// whose visible rows are blitted across.
func (v *View) Render(area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	if area.Empty() {
		return
	}

	fc := NewFocusContext(area.Width, ctx.Unicode)
	fc.SetPositions(v.doc.FocusablePositions())
	fc.SetFocusIndex(v.focusIndex)
	elements := v.doc.Build(fc)

	total := ContentHeight(elements)
	offset := v.scrollOffset
	if limit := total - area.Height; offset > limit {
		offset = limit
	}
	if offset < 0 {
		offset = 0
	}

	y := area.Y - offset
	for _, e := range elements {
		h := e.Height()
		top, bottom := y, y+h
		y += h
		if h == 0 || bottom <= area.Y {
			continue
		}
		if top >= area.Bottom() {
			break
		}

		if top >= area.Y && bottom <= area.Bottom() {
			Render(e, grid.NewRect(area.X, top, area.Width, h), buf, ctx)
			continue
		}

		scratch := grid.NewBuffer(area.Width, h)
		Render(e, scratch.Area(), scratch, ctx)
		srcY, dstY := 0, top
		if top < area.Y {
			srcY = area.Y - top
			dstY = area.Y
		}
		rows := min(bottom, area.Bottom()) - dstY
		buf.CopyRows(scratch, srcY, area.X, dstY, rows)
	}
}

// focusableRow locates the content row of the focusable unit with the
// given linear index by walking the elements the way the renderer lays
// them out.
func focusableRow(elements []Element, index int) (int, bool) {
	counter := 0
	y := 0
	for _, e := range elements {
		if row, ok := focusableRowIn(e, y, &counter, index); ok {
			return row, true
		}
		y += e.Height()
	}
	return 0, false
}

func focusableRowIn(e Element, y int, counter *int, index int) (int, bool) {
	switch el := e.(type) {
	case Link:
		if *counter == index {
			return y, true
		}
		*counter++

	case *Table:
		rc := el.RowCount()
		if index >= *counter && index < *counter+rc {
			return y + 2 + (index - *counter), true
		}
		*counter += rc

	case *TeamBoxscore:
		sy := y
		for _, s := range el.sections() {
			// Title border and leading blank, then the table.
			if row, ok := focusableRowIn(s.table, sy+2, counter, index); ok {
				return row, true
			}
			sy += 3 + s.table.Height()
		}

	case Group:
		cy := y
		for _, c := range el.Children {
			if row, ok := focusableRowIn(c, cy, counter, index); ok {
				return row, true
			}
			cy += c.Height()
		}

	case Row:
		for _, c := range el.Children {
			if row, ok := focusableRowIn(c, y, counter, index); ok {
				return row, true
			}
		}
	}
	return 0, false
}
