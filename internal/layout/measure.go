package layout

import (
	"fmt"

	"github.com/grindlemire/tuicore/internal/text"
)

// progressWidth is the intrinsic width of a KindProgress bar.
const progressWidth = 10

// Exact marks the dimensions of Constraints the parent has already decided.
type Exact uint8

const (
	ExactWidth Exact = 1 << iota
	ExactHeight
)

// Constraints bound one measurement. MaxWidth and MaxHeight are the space
// the parent offers, which is also the base for percentages, unless the
// matching Exact bit is set; then they are the node's final border-box
// size. Axis is the main axis of the parent.
type Constraints struct {
	MaxWidth, MaxHeight int
	Axis                Axis
	Exact               Exact
}

func exactBit(a Axis) Exact {
	if a == Row {
		return ExactWidth
	}
	return ExactHeight
}

// withExactMain returns c with its main-axis extent decided as size.
func (c Constraints) withExactMain(a Axis, size int) Constraints {
	if a == Row {
		c.MaxWidth = size
	} else {
		c.MaxHeight = size
	}
	c.Exact |= exactBit(a)
	return c
}

// Measure returns the border-box size of n when offered maxW x maxH cells
// by a parent whose main axis is axis. Margins are left to the parent.
// cache may be nil.
func Measure(n *Node, maxW, maxH int, axis Axis, cache *Cache) (Size, error) {
	cache.Sweep()
	m := measurer{cache: cache}
	return m.measure(n, Constraints{MaxWidth: maxW, MaxHeight: maxH, Axis: axis})
}

// box is a node's sizing state under one set of constraints.
type box struct {
	ins   Edges
	avail Size // border-box space offered, margins removed
	fixed Size // decided border-box size, -1 when content sized
	lo    Size // min clamps
	hi    Size // max clamps, -1 when unbounded
}

func newBox(n *Node, c Constraints) box {
	p := &n.Props
	b := box{ins: n.insets()}
	b.avail.Width, b.fixed.Width, b.lo.Width, b.hi.Width = boxDim(p, Row, c.MaxWidth, c.Exact&ExactWidth != 0)
	b.avail.Height, b.fixed.Height, b.lo.Height, b.hi.Height = boxDim(p, Column, c.MaxHeight, c.Exact&ExactHeight != 0)
	return b
}

func boxDim(p *Props, a Axis, offered int, exact bool) (avail, fixed, lo, hi int) {
	if exact {
		offered = max(0, offered)
		return offered, offered, 0, -1
	}
	lo, hi = p.bounds(a, offered)
	avail = max(0, offered-p.Margin.main(a))
	fixed = -1
	if v := p.size(a); !v.IsAuto() {
		fixed = max(0, clampBounds(v.Resolve(offered, 0), lo, hi))
	}
	return avail, fixed, lo, hi
}

// inner returns the space inside padding and border along a: the decided
// size when there is one, the offered space otherwise.
func (b *box) inner(a Axis) int {
	outer := b.fixed.main(a)
	if outer < 0 {
		outer = b.avail.main(a)
	}
	return max(0, outer-b.ins.main(a))
}

// fit returns the border-box extent along a for the given content size.
// Containers pass capped to keep an auto size within the offered space.
func (b *box) fit(a Axis, content int, capped bool) int {
	if f := b.fixed.main(a); f >= 0 {
		return f
	}
	size := content + b.ins.main(a)
	if capped {
		size = min(size, b.avail.main(a))
	}
	return max(0, clampBounds(size, b.lo.main(a), b.hi.main(a)))
}

func (b *box) fitSize(content Size, capped bool) Size {
	return Size{Width: b.fit(Row, content.Width, capped), Height: b.fit(Column, content.Height, capped)}
}

// childConstraints offers the inner space to children laid out along axis.
func (b *box) childConstraints(axis Axis) Constraints {
	return Constraints{MaxWidth: b.inner(Row), MaxHeight: b.inner(Column), Axis: axis}
}

// request asks for one child measurement.
type request struct {
	node *Node
	c    Constraints
}

// frame is one node's measurement in progress. A frame advances in phases;
// each phase may queue child requests, and the next phase runs once all of
// them have been answered.
type frame struct {
	node  *Node
	c     Constraints
	phase int
	box   box
	reqs  []request
	got   []Size

	intrinsic  []Size
	plan       flexPlan
	remeasured []int
	own        int
}

// measurer drives frames from an explicit stack so tree depth never grows
// the goroutine stack. Without a cache it memoizes for the duration of one
// call, which keeps arrangement linear in the tree size.
type measurer struct {
	cache *Cache
	local map[request]Size
	stack []frame
}

func (m *measurer) lookup(n *Node, c Constraints) (Size, bool) {
	if m.cache != nil {
		return m.cache.measured(n, c)
	}
	sz, ok := m.local[request{node: n, c: c}]
	return sz, ok
}

func (m *measurer) store(n *Node, c Constraints, sz Size) {
	if m.cache != nil {
		m.cache.storeMeasure(n, c, sz)
		return
	}
	if m.local == nil {
		m.local = make(map[request]Size)
	}
	m.local[request{node: n, c: c}] = sz
}

func (m *measurer) measure(root *Node, c Constraints) (Size, error) {
	if root == nil {
		return Size{}, ErrNilNode
	}
	if sz, ok := m.lookup(root, c); ok {
		return sz, nil
	}

	m.stack = append(m.stack[:0], frame{node: root, c: c})
	for {
		f := &m.stack[len(m.stack)-1]
		if len(f.got) < len(f.reqs) {
			r := f.reqs[len(f.got)]
			if r.node == nil {
				return Size{}, fmt.Errorf("%s child %d: %w", f.node.Kind, len(f.got), ErrNilNode)
			}
			if sz, ok := m.lookup(r.node, r.c); ok {
				f.got = append(f.got, sz)
				continue
			}
			m.stack = append(m.stack, frame{node: r.node, c: r.c})
			continue
		}

		sz, done, err := m.step(f)
		if err != nil {
			return Size{}, err
		}
		if !done {
			continue
		}

		m.store(f.node, f.c, sz)
		m.stack[len(m.stack)-1] = frame{}
		m.stack = m.stack[:len(m.stack)-1]
		if len(m.stack) == 0 {
			return sz, nil
		}
		parent := &m.stack[len(m.stack)-1]
		parent.got = append(parent.got, sz)
	}
}

func (m *measurer) step(f *frame) (Size, bool, error) {
	n := f.node
	if f.phase == 0 {
		f.box = newBox(n, f.c)
	}
	if axis, ok := n.mainAxis(); ok {
		sz := f.stepFlex(axis)
		return sz, f.phase > 2, nil
	}

	switch n.Kind {
	case KindGrid:
		sz := f.stepGrid()
		return sz, f.phase > 1, nil
	case KindLayers:
		sz := f.stepLayers()
		return sz, f.phase > 1, nil
	case KindText, KindRichText, KindSpacer, KindDivider, KindProgress:
		return f.box.fitSize(leafContent(n, &f.box, f.c.Axis), false), true, nil
	default:
		if n.Props.Measure == nil {
			return Size{}, false, fmt.Errorf("node %q: %w", n.Props.ID, ErrNoMeasureFunc)
		}
		content := n.Props.Measure(f.box.inner(Row), f.box.inner(Column))
		return f.box.fitSize(Size{Width: max(0, content.Width), Height: max(0, content.Height)}, false), true, nil
	}
}

// stepFlex measures a row or column container.
//
// Phase 0 measures every child in the inner space. Phase 1 settles the
// container's own main size, resolves the children's main sizes exactly as
// arrangement will, and remeasures each child whose resolved main size
// differs from its intrinsic one, since its cross size may depend on it.
// Phase 2 takes the cross size from the result.
func (f *frame) stepFlex(axis Axis) Size {
	n, b := f.node, &f.box
	switch f.phase {
	case 0:
		ic := b.childConstraints(axis)
		f.reqs = f.reqs[:0]
		for _, child := range n.Children {
			f.reqs = append(f.reqs, request{node: child, c: ic})
		}
		f.phase = 1
		return Size{}

	case 1:
		f.intrinsic, f.got = f.got, nil
		f.own = flexOwnMain(n, b, axis, f.intrinsic, &f.plan)
		f.plan.build(n, axis, max(0, f.own-b.ins.main(axis)), f.intrinsic)

		ic := b.childConstraints(axis)
		f.reqs = f.reqs[:0]
		f.remeasured = f.remeasured[:0]
		for i := range f.plan.items {
			if main := f.plan.items[i].main; main != f.intrinsic[i].main(axis) {
				f.reqs = append(f.reqs, request{node: n.Children[i], c: ic.withExactMain(axis, main)})
				f.remeasured = append(f.remeasured, i)
			}
		}
		f.phase = 2
		return Size{}

	default:
		cross := make([]int, len(f.intrinsic))
		for i, sz := range f.intrinsic {
			cross[i] = sz.cross(axis)
		}
		for k, i := range f.remeasured {
			cross[i] = f.got[k].cross(axis)
		}
		f.phase = 3
		ownCross := b.fit(axis.Cross(), f.plan.crossContent(n, cross), true)
		return sizeOn(axis, f.own, ownCross)
	}
}

// flexOwnMain settles a flex container's main size. An auto container with
// a growing or percentage child takes all the space offered; otherwise it
// wraps its children, within the space offered.
func flexOwnMain(n *Node, b *box, axis Axis, intrinsic []Size, fp *flexPlan) int {
	if f := b.fixed.main(axis); f >= 0 {
		return f
	}
	if fillsMain(n, axis) {
		return b.fit(axis, b.avail.main(axis)-b.ins.main(axis), true)
	}
	fp.build(n, axis, b.inner(axis), intrinsic)
	return b.fit(axis, fp.contentMain(), true)
}

// stepGrid measures a grid. An auto grid takes the full width offered and
// splits it into equal tracks; rows are as tall as their tallest cell.
func (f *frame) stepGrid() Size {
	n, b := f.node, &f.box
	if f.phase == 0 {
		f.own = b.fit(Row, b.avail.Width-b.ins.Horizontal(), true)
		tracks := gridTracks(n, max(0, f.own-b.ins.Horizontal()))
		f.reqs = f.reqs[:0]
		for i, child := range n.Children {
			f.reqs = append(f.reqs, request{node: child, c: gridConstraints(child, tracks[i%len(tracks)], b.inner(Column))})
		}
		f.phase = 1
		return Size{}
	}

	f.phase = 2
	rows := gridRows(n, f.got)
	height := max(0, n.Props.Gap) * max(0, len(rows)-1)
	for _, h := range rows {
		height += h
	}
	return Size{Width: f.own, Height: b.fit(Column, height, true)}
}

func gridTracks(n *Node, innerWidth int) []int {
	cols := max(1, n.Props.Columns)
	gaps := max(0, n.Props.Gap) * (cols - 1)
	return splitEven(max(0, innerWidth-gaps), cols)
}

func gridConstraints(child *Node, track, innerHeight int) Constraints {
	if child == nil {
		return Constraints{}
	}
	return Constraints{
		MaxWidth:  max(0, track-child.Props.Margin.Horizontal()),
		MaxHeight: innerHeight,
		Axis:      Row,
		Exact:     ExactWidth,
	}
}

// gridRows returns the height of every grid row including cell margins.
func gridRows(n *Node, sizes []Size) []int {
	cols := max(1, n.Props.Columns)
	rows := make([]int, (len(n.Children)+cols-1)/cols)
	for i, sz := range sizes {
		rows[i/cols] = max(rows[i/cols], sz.Height+n.Children[i].Props.Margin.Vertical())
	}
	return rows
}

// stepLayers measures a stack of layers as the largest child.
func (f *frame) stepLayers() Size {
	n, b := f.node, &f.box
	if f.phase == 0 {
		ic := b.childConstraints(f.c.Axis)
		f.reqs = f.reqs[:0]
		for _, child := range n.Children {
			f.reqs = append(f.reqs, request{node: child, c: ic})
		}
		f.phase = 1
		return Size{}
	}

	f.phase = 2
	var content Size
	for i, sz := range f.got {
		m := n.Children[i].Props.Margin
		content.Width = max(content.Width, sz.Width+m.Horizontal())
		content.Height = max(content.Height, sz.Height+m.Vertical())
	}
	return b.fitSize(content, true)
}

// leafContent returns the content size of a leaf. Unwrapped text keeps its
// full width whatever the space offered.
func leafContent(n *Node, b *box, parent Axis) Size {
	p := &n.Props
	switch n.Kind {
	case KindText:
		if !p.Wrap {
			return Size{Width: capWidth(text.Width(p.Text), p.MaxTextWidth), Height: 1}
		}
		width := capWidth(b.inner(Row), p.MaxTextWidth)
		lines, widest := text.LineCount(p.Text, width)
		return Size{Width: widest, Height: lines}
	case KindRichText:
		w := 0
		for _, s := range p.Spans {
			w += text.Width(s.Text)
		}
		return Size{Width: capWidth(w, p.MaxTextWidth), Height: 1}
	case KindDivider:
		if parent == Row {
			return Size{Width: 1}
		}
		return Size{Height: 1}
	case KindProgress:
		return Size{Width: progressWidth, Height: 1}
	default: // KindSpacer
		return Size{}
	}
}

func capWidth(w, limit int) int {
	if limit > 0 {
		return min(w, limit)
	}
	return w
}
