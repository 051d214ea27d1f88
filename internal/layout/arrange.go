package layout

import (
	"fmt"
	"slices"
)

// task places one node: rect is its border box and c the constraints its
// size was measured under.
type task struct {
	node *Node
	rect Rect
	c    Constraints
	slot **Geometry
}

// Layout computes the geometry of the tree rooted at n inside maxW x maxH
// cells whose top-left corner is (x, y). An auto-sized root fills the space
// minus its margins; the root's border box starts at (x+margin.Left,
// y+margin.Top). axis is the main axis the root is laid out along. cache
// may be nil.
//
// Results are committed to the cache only when the whole pass succeeds.
func Layout(n *Node, x, y, maxW, maxH int, axis Axis, cache *Cache) (*Geometry, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	cache.Sweep()

	p := &n.Props
	rect := Rect{
		X:      x + p.Margin.Left,
		Y:      y + p.Margin.Top,
		Width:  fitInCell(p, Row, maxW),
		Height: fitInCell(p, Column, maxH),
	}
	c := Constraints{MaxWidth: rect.Width, MaxHeight: rect.Height, Axis: axis, Exact: ExactWidth | ExactHeight}

	a := arranger{m: measurer{cache: cache}}
	var root *Geometry
	if err := a.run(task{node: n, rect: rect, c: c, slot: &root}); err != nil {
		return nil, err
	}
	return root, nil
}

type arranged struct {
	node *Node
	rect Rect
	c    Constraints
	geo  *Geometry
}

type arranger struct {
	m       measurer
	stack   []task
	pending []arranged
}

func (a *arranger) run(root task) error {
	a.stack = append(a.stack[:0], root)
	for len(a.stack) > 0 {
		t := a.stack[len(a.stack)-1]
		a.stack = a.stack[:len(a.stack)-1]

		if g := a.m.cache.arranged(t.node, t.rect, t.c); g != nil {
			*t.slot = g
			continue
		}

		geo := &Geometry{Rect: t.rect, Content: t.rect.Inset(t.node.insets())}
		*t.slot = geo
		if len(t.node.Children) > 0 {
			geo.Children = make([]*Geometry, len(t.node.Children))
			first := len(a.stack)
			if err := a.children(t, geo); err != nil {
				return fmt.Errorf("arrange %s: %w", t.node.Kind, err)
			}
			slices.Reverse(a.stack[first:])
		}
		a.pending = append(a.pending, arranged{node: t.node, rect: t.rect, c: t.c, geo: geo})
	}

	for _, p := range a.pending {
		a.m.cache.storeArrange(p.node, p.rect, p.c, p.geo)
	}
	return nil
}

func (a *arranger) children(t task, geo *Geometry) error {
	for i, child := range t.node.Children {
		if child == nil {
			return fmt.Errorf("child %d: %w", i, ErrNilNode)
		}
	}
	if axis, ok := t.node.mainAxis(); ok {
		return a.flexChildren(t, geo, axis)
	}
	if t.node.Kind == KindGrid {
		return a.gridChildren(t, geo)
	}
	a.layerChildren(t, geo)
	return nil
}

func (a *arranger) push(child *Node, r Rect, c Constraints, slot **Geometry) {
	a.stack = append(a.stack, task{node: child, rect: r, c: c, slot: slot})
}

// flexChildren places the children of a row or column container: main
// sizes come from the shared flex plan, cross sizes stretch or keep the
// child's measured size at its resolved main size.
func (a *arranger) flexChildren(t task, geo *Geometry, axis Axis) error {
	n := t.node
	b := newBox(n, t.c)
	ic := b.childConstraints(axis)

	intrinsic := make([]Size, len(n.Children))
	for i, child := range n.Children {
		sz, err := a.m.measure(child, ic)
		if err != nil {
			return err
		}
		intrinsic[i] = sz
	}

	inner := geo.Content
	innerMain, innerCross := inner.Size().main(axis), inner.Size().cross(axis)
	var fp flexPlan
	fp.build(n, axis, innerMain, intrinsic)

	cons := make([]Constraints, len(n.Children))
	cross := make([]int, len(n.Children))
	for i, child := range n.Children {
		cons[i] = ic
		cross[i] = intrinsic[i].cross(axis)
		if main := fp.items[i].main; main != intrinsic[i].main(axis) {
			cons[i] = ic.withExactMain(axis, main)
			sz, err := a.m.measure(child, cons[i])
			if err != nil {
				return err
			}
			cross[i] = sz.cross(axis)
		}
	}

	lineStart := inner.crossPos(axis)
	var pos []int
	for _, l := range fp.lines {
		lineSize := innerCross
		if n.Props.Wrap {
			lineSize = fp.lineCross(n, l, cross)
		}
		pos = fp.offsets(n.Props.Justify, l, innerMain, pos[:0])

		for k, off := range pos {
			i := l[0] + k
			child := n.Children[i]
			cp := &child.Props
			room := lineSize - cp.Margin.cross(axis)
			size := cross[i]
			align := childAlign(n, child)
			if align == AlignStretch && cp.size(axis.Cross()).IsAuto() {
				lo, hi := cp.bounds(axis.Cross(), innerCross)
				size = max(0, clampBounds(room, lo, hi))
			}

			r := rectOn(axis,
				inner.mainPos(axis)+off+cp.Margin.mainLead(axis),
				lineStart+cp.Margin.crossLead(axis)+alignOffset(align, room-size),
				fp.items[i].main, size)
			a.push(child, r, cons[i], &geo.Children[i])
		}
		lineStart += lineSize + fp.gap
	}
	return nil
}

// gridChildren places cells row-major into equal column tracks.
func (a *arranger) gridChildren(t task, geo *Geometry) error {
	n := t.node
	b := newBox(n, t.c)
	inner := geo.Content
	tracks := gridTracks(n, inner.Width)
	gap := max(0, n.Props.Gap)

	cons := make([]Constraints, len(n.Children))
	sizes := make([]Size, len(n.Children))
	for i, child := range n.Children {
		cons[i] = gridConstraints(child, tracks[i%len(tracks)], b.inner(Column))
		sz, err := a.m.measure(child, cons[i])
		if err != nil {
			return err
		}
		sizes[i] = sz
	}

	y := inner.Y
	for r, rowHeight := range gridRows(n, sizes) {
		x := inner.X
		for col, track := range tracks {
			i := r*len(tracks) + col
			if i >= len(n.Children) {
				break
			}
			child := n.Children[i]
			cp := &child.Props
			room := rowHeight - cp.Margin.Vertical()
			h := sizes[i].Height
			align := childAlign(n, child)
			if align == AlignStretch && cp.Height.IsAuto() {
				lo, hi := cp.bounds(Column, inner.Height)
				h = max(0, clampBounds(room, lo, hi))
			}
			rect := Rect{
				X:      x + cp.Margin.Left,
				Y:      y + cp.Margin.Top + alignOffset(align, room-h),
				Width:  cons[i].MaxWidth,
				Height: h,
			}
			a.push(child, rect, cons[i], &geo.Children[i])
			x += track + gap
		}
		y += rowHeight + gap
	}
	return nil
}

// layerChildren places every child over the whole content rect. Layers,
// leaves and custom nodes lay out their children this way.
func (a *arranger) layerChildren(t task, geo *Geometry) {
	b := newBox(t.node, t.c)
	ic := b.childConstraints(t.c.Axis)
	inner := geo.Content
	for i, child := range t.node.Children {
		p := &child.Props
		r := Rect{
			X:      inner.X + p.Margin.Left,
			Y:      inner.Y + p.Margin.Top,
			Width:  fitInCell(p, Row, inner.Width),
			Height: fitInCell(p, Column, inner.Height),
		}
		a.push(child, r, ic, &geo.Children[i])
	}
}

// fitInCell sizes a node along a inside a cell: auto fills the cell minus
// margins, fixed and percentage sizes resolve against the cell.
func fitInCell(p *Props, a Axis, cell int) int {
	lo, hi := p.bounds(a, cell)
	return max(0, clampBounds(p.size(a).Resolve(cell, cell-p.Margin.main(a)), lo, hi))
}
