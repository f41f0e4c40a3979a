// Package styles provides the Lip Gloss palette, box-drawing glyph sets and
// the per-frame render context handed down through every draw call.
package styles

import "github.com/charmbracelet/lipgloss"

// Context carries the immutable styling environment for one render pass:
// the resolved theme, the glyph set, and whether the surface being drawn
// currently has input focus (unfocused surfaces render dimmed).
type Context struct {
	Theme   *Theme
	Boxes   BoxChars
	Unicode bool
	Focused bool
}

// NewContext builds a render context for the given display settings.
func NewContext(theme *Theme, unicode, focused bool) *Context {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Context{
		Theme:   theme,
		Boxes:   BoxCharsFor(unicode),
		Unicode: unicode,
		Focused: focused,
	}
}

// WithFocused returns a copy of the context with a different focus state.
func (c *Context) WithFocused(focused bool) *Context {
	out := *c
	out.Focused = focused
	return &out
}

func (c *Context) dim(s lipgloss.Style) lipgloss.Style {
	if c.Focused {
		return s
	}
	return s.Faint(true)
}

// Base is the style for otherwise-unstyled cells.
func (c *Context) Base() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Text is the default style for content text.
func (c *Context) Text() lipgloss.Style {
	return c.dim(lipgloss.NewStyle().Foreground(c.Theme.FG))
}

// Muted styles borders, rules and other secondary chrome.
func (c *Context) Muted() lipgloss.Style {
	return c.dim(lipgloss.NewStyle().Foreground(c.Theme.BoxcharFG))
}

// Heading styles a heading of the given level. Level 1 is bold in the
// brightest text tier; deeper levels keep the emphasis modifier only.
func (c *Context) Heading(level int) lipgloss.Style {
	if level == 1 {
		return c.dim(lipgloss.NewStyle().Foreground(c.Theme.FG1).Bold(true))
	}
	return c.dim(lipgloss.NewStyle().Foreground(c.Theme.FG).Bold(true))
}

// SectionTitle styles a section title line.
func (c *Context) SectionTitle() lipgloss.Style {
	return c.dim(lipgloss.NewStyle().Foreground(c.Theme.FG1).Bold(true))
}

// Secondary is a softer text tier for labels and annotations.
func (c *Context) Secondary() lipgloss.Style {
	return c.dim(lipgloss.NewStyle().Foreground(c.Theme.FG2))
}

// Emphasis highlights values that should stand out without being selected.
func (c *Context) Emphasis() lipgloss.Style {
	return c.dim(lipgloss.NewStyle().Foreground(c.Theme.EmphasisFG).Bold(true))
}

// Selection is the style for the focused link or the link-like cells of a
// focused table row.
func (c *Context) Selection() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(c.Theme.SelectionFG).
		Background(c.Theme.SelectionBG).
		Bold(true)
}

// FocusedLink styles the text of the focused link outside tables.
func (c *Context) FocusedLink() lipgloss.Style {
	return c.dim(lipgloss.NewStyle().Foreground(c.Theme.FG).Bold(true))
}

// Error styles error text.
func (c *Context) Error() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Theme.ErrorFG)
}
