package layout

// Size is a width/height pair in terminal cells.
type Size struct {
	Width, Height int
}

// main returns the extent along a.
func (s Size) main(a Axis) int {
	if a == Row {
		return s.Width
	}
	return s.Height
}

// cross returns the extent perpendicular to a.
func (s Size) cross(a Axis) int {
	if a == Row {
		return s.Height
	}
	return s.Width
}

// sizeOn builds a Size from main/cross extents along a.
func sizeOn(a Axis, main, cross int) Size {
	if a == Row {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner and may be negative; Width and Height
// are never negative in a computed Geometry.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns a new Rect shrunk by the given Edges. The result never has
// a negative width or height.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  max(0, r.Width-edges.Left-edges.Right),
		Height: max(0, r.Height-edges.Top-edges.Bottom),
	}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// mainPos returns the start coordinate along a.
func (r Rect) mainPos(a Axis) int {
	if a == Row {
		return r.X
	}
	return r.Y
}

// crossPos returns the start coordinate perpendicular to a.
func (r Rect) crossPos(a Axis) int {
	if a == Row {
		return r.Y
	}
	return r.X
}

// rectOn builds a Rect from main/cross coordinates along a.
func rectOn(a Axis, mainPos, crossPos, main, cross int) Rect {
	if a == Row {
		return Rect{X: mainPos, Y: crossPos, Width: main, Height: cross}
	}
	return Rect{X: crossPos, Y: mainPos, Width: cross, Height: main}
}
