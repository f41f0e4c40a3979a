package document

import "github.com/charmbracelet/lipgloss"

// Document is a drill-down page. Build is called every frame with the
// current focus context and returns the element list to render; the
// document owns its data and derives everything else from it.
type Document interface {
	// ID is a stable identity for the page, used to key saved state.
	ID() string
	// Title is the heading shown at the top of the page.
	Title() string
	// Build assembles the element list for one frame.
	Build(ctx *FocusContext) []Element
	// FocusablePositions lists the document's focusable units in
	// document order. The linear focus index indexes this slice.
	FocusablePositions() []FocusKey
}

// Builder accumulates elements for a document's Build method.
type Builder struct {
	elements []Element
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Text appends a plain text element.
func (b *Builder) Text(content string) *Builder {
	b.elements = append(b.elements, Text{Content: content})
	return b
}

// StyledText appends a text element with an explicit style.
func (b *Builder) StyledText(content string, style lipgloss.Style) *Builder {
	b.elements = append(b.elements, Text{Content: content, Style: &style})
	return b
}

// Heading appends a heading of the given level.
func (b *Builder) Heading(level int, content string) *Builder {
	b.elements = append(b.elements, Heading{Level: level, Content: content})
	return b
}

// SectionTitle appends a bold section title.
func (b *Builder) SectionTitle(content string, underline bool) *Builder {
	b.elements = append(b.elements, SectionTitle{Content: content, Underline: underline})
	return b
}

// Link appends a focusable link, resolving its focus state against ctx.
func (b *Builder) Link(ctx *FocusContext, key, display string, target LinkTarget) *Builder {
	b.elements = append(b.elements, Link{
		Key:     key,
		Display: display,
		Target:  target,
		Focused: ctx.IsLinkFocused(key),
	})
	return b
}

// Separator appends a full-width rule.
func (b *Builder) Separator() *Builder {
	b.elements = append(b.elements, Separator{})
	return b
}

// Spacer appends n blank lines.
func (b *Builder) Spacer(lines int) *Builder {
	b.elements = append(b.elements, Spacer{Lines: lines})
	return b
}

// Row appends a horizontal layout of the given children.
func (b *Builder) Row(gap int, align RowAlign, children ...Element) *Builder {
	b.elements = append(b.elements, Row{Children: children, Gap: gap, Align: align})
	return b
}

// Element appends an arbitrary element.
func (b *Builder) Element(e Element) *Builder {
	b.elements = append(b.elements, e)
	return b
}

// Build returns the accumulated elements.
func (b *Builder) Build() []Element {
	return b.elements
}
