package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pucktrack/nhl-tui/internal/tui/grid"
	"github.com/pucktrack/nhl-tui/internal/tui/styles"
)

// breadcrumbHeight returns the rows the breadcrumb bar occupies: nothing
// at the tab root, a trail line plus divider once the stack has entries.
func breadcrumbHeight(stack *DocumentStack) int {
	if stack.Len() == 0 {
		return 0
	}
	return 2
}

// breadcrumbTrail builds the plain trail text, e.g.
// "Scores ▶ TOR:3-BOS:2 ▶ #87 Crosby".
func breadcrumbTrail(tab string, stack *DocumentStack, sep string) string {
	parts := []string{tab}
	for _, entry := range stack.Entries() {
		parts = append(parts, entry.Doc.Label())
	}
	return strings.Join(parts, " "+sep+" ")
}

// renderBreadcrumb draws the navigation trail and a full-width rule under
// it. The tab name and entry labels are bold; the separators and rule use
// the muted chrome style.
func renderBreadcrumb(tab string, stack *DocumentStack, area grid.Rect, buf *grid.Buffer, ctx *styles.Context) {
	if stack.Len() == 0 || area.Empty() {
		return
	}

	sep := " " + string(ctx.Boxes.BreadcrumbSep) + " "
	bold := ctx.Text().Bold(true)
	x := area.X + 1
	limit := area.Right()

	write := func(s string, style lipgloss.Style) {
		x += buf.SetStringClipped(x, area.Y, s, style, limit-x)
	}

	write(tab, bold)
	for _, entry := range stack.Entries() {
		write(sep, ctx.Muted())
		write(entry.Doc.Label(), bold)
	}

	if area.Height > 1 {
		buf.HLine(area.X, area.Y+1, area.Width, ctx.Boxes.Horizontal, ctx.Muted())
	}
}
