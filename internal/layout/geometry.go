package layout

// Geometry is the computed layout of one node. A Geometry tree has exactly
// the shape of the Node tree it was computed from, with no references back
// to the nodes. Geometry values may be shared between frames through the
// cache and must be treated as read-only.
type Geometry struct {
	// Rect is the border box, placed by the parent after applying this
	// node's margin.
	Rect Rect

	// Content is Rect minus padding and border, the area children and
	// text are placed in.
	Content Rect

	Children []*Geometry
}

// Count returns the number of geometry nodes in the tree rooted at g.
func (g *Geometry) Count() int {
	if g == nil {
		return 0
	}
	n := 0
	stack := []*Geometry{g}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		stack = append(stack, top.Children...)
	}
	return n
}
