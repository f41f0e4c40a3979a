// Package document implements the content model and rendering engine for
// drill-down pages: a small closed set of element variants built fresh each
// frame, a focus context resolving the linear focus index onto links and
// table rows, and a windowing view that renders the visible slice of a
// document into a grid buffer.
package document

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// Element is one node of a built document. Elements are immutable once
// built and report their preferred height; the renderer clips anything
// that does not fit the target area.
type Element interface {
	// Height returns the preferred height in rows.
	Height() int
}

// widthHinted is implemented by elements with a fixed preferred width,
// used by Row to lay children out side by side.
type widthHinted interface {
	PreferredWidth() int
}

// preferredWidth reports an element's fixed width, if it has one.
func preferredWidth(e Element) (int, bool) {
	if w, ok := e.(widthHinted); ok {
		return w.PreferredWidth(), true
	}
	return 0, false
}

// Text is a run of plain (optionally styled) lines.
type Text struct {
	Content string
	Style   *lipgloss.Style
}

func (t Text) Height() int {
	if t.Content == "" {
		return 1
	}
	return strings.Count(t.Content, "\n") + 1
}

// Heading is a document heading. Level 1 headings draw an underline rule
// sized to the text; deeper levels use emphasis only.
type Heading struct {
	Level   int
	Content string
}

func (h Heading) Height() int {
	if h.Level == 1 {
		return 2
	}
	return 1
}

// SectionTitle is a bold title line with an optional underline rule.
type SectionTitle struct {
	Content   string
	Underline bool
}

func (s SectionTitle) Height() int {
	if s.Underline {
		return 2
	}
	return 1
}

// Link is a focusable line that navigates or performs an action when
// activated. An unfocused link renders leading padding of the same width
// as the selector glyph so columns stay aligned.
type Link struct {
	Key     string
	Display string
	Target  LinkTarget
	Focused bool
}

func (Link) Height() int { return 1 }

// Separator is a full-width horizontal rule.
type Separator struct{}

func (Separator) Height() int { return 1 }

// Spacer is vertical whitespace.
type Spacer struct {
	Lines int
}

func (s Spacer) Height() int {
	if s.Lines < 0 {
		return 0
	}
	return s.Lines
}

// Group stacks children vertically. Children past the bottom edge of the
// target area are not rendered; that is clipping, not an error.
type Group struct {
	Children []Element
	Style    *lipgloss.Style
}

func (g Group) Height() int {
	total := 0
	for _, c := range g.Children {
		total += c.Height()
	}
	return total
}

// RowAlign selects how Row distributes horizontal space.
type RowAlign int

const (
	// RowLeft packs children left with the configured gap.
	RowLeft RowAlign = iota
	// RowSpread widens the gap to fill the row, never below the
	// configured minimum.
	RowSpread
)

// Row lays children out horizontally. When every child reports a preferred
// width those widths are honored; otherwise the available width is divided
// equally.
type Row struct {
	Children []Element
	Gap      int
	Align    RowAlign
}

func (r Row) Height() int {
	tallest := 0
	for _, c := range r.Children {
		if h := c.Height(); h > tallest {
			tallest = h
		}
	}
	return tallest
}

// PreferredWidth reports the combined width of the children plus gaps.
// Only meaningful when every child has a preferred width.
func (r Row) PreferredWidth() int {
	total := 0
	for i, c := range r.Children {
		w, ok := preferredWidth(c)
		if !ok {
			return 0
		}
		if i > 0 {
			total += r.Gap
		}
		total += w
	}
	return total
}

// Widget is an opaque drawable leaf with fixed preferred dimensions,
// implemented by the score and loading widgets.
type Widget interface {
	Element
	PreferredWidth() int
	RenderWidget(area grid.Rect, buf *grid.Buffer, ctx *styles.Context)
}

// ContentHeight sums the preferred heights of a built element list.
func ContentHeight(elements []Element) int {
	total := 0
	for _, e := range elements {
		total += e.Height()
	}
	return total
}
