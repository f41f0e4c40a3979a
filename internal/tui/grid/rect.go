package grid

// Rect is a rectangular region of a buffer, addressed in cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle at the given position and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the given cell lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersect returns the overlap of two rectangles. The result is empty
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Inner returns the rectangle shrunk by the given margin on every side.
func (r Rect) Inner(margin int) Rect {
	return Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  max(0, r.Width-2*margin),
		Height: max(0, r.Height-2*margin),
	}
}
