package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// Add returns the side-by-side sum of e and o.
func (e Edges) Add(o Edges) Edges {
	return Edges{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

// main returns the total along a.
func (e Edges) main(a Axis) int {
	if a == Row {
		return e.Horizontal()
	}
	return e.Vertical()
}

// cross returns the total perpendicular to a.
func (e Edges) cross(a Axis) int {
	if a == Row {
		return e.Vertical()
	}
	return e.Horizontal()
}

// mainLead returns the leading edge along a (left or top).
func (e Edges) mainLead(a Axis) int {
	if a == Row {
		return e.Left
	}
	return e.Top
}

// crossLead returns the leading edge perpendicular to a.
func (e Edges) crossLead(a Axis) int {
	if a == Row {
		return e.Top
	}
	return e.Left
}
