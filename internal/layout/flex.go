package layout

import "math"

// flexItem holds intermediate calculation state for one child along the
// container's main axis. It lives only for the duration of one call.
type flexItem struct {
	basis      int // definite or intrinsic main size
	natural    int // intrinsic main size, used for line breaking
	flex       float64
	grows      bool // auto main size with a positive flex factor
	min, max   int  // main-axis clamps, max < 0 when unbounded
	marginMain int
	main       int // resolved main size
}

func (it *flexItem) outer() int {
	return it.main + it.marginMain
}

// hypothetical is the size the item claims when lines are broken.
func (it *flexItem) hypothetical() int {
	if it.grows {
		return clampBounds(it.natural, it.min, it.max) + it.marginMain
	}
	return clampBounds(it.basis, it.min, it.max) + it.marginMain
}

func newFlexItem(child *Node, axis Axis, innerMain int, intrinsic Size) flexItem {
	p := &child.Props
	it := flexItem{
		natural:    intrinsic.main(axis),
		flex:       p.flexFactor(),
		marginMain: p.Margin.main(axis),
	}
	it.min, it.max = p.bounds(axis, innerMain)

	switch v := p.size(axis); {
	case !v.IsAuto():
		it.basis = max(0, v.Resolve(innerMain, 0))
	case it.flex > 0:
		it.grows = true
	default:
		it.basis = it.natural
	}
	return it
}

// fillsMain reports whether an auto-sized container must take all the
// main-axis space it is offered: a flexible or percentage-sized child has
// no size of its own to sum.
func fillsMain(n *Node, axis Axis) bool {
	for _, c := range n.Children {
		v := c.Props.size(axis)
		if v.Unit == UnitPercent || (v.IsAuto() && c.Props.flexFactor() > 0) {
			return true
		}
	}
	return false
}

// flexPlan is the main-axis resolution of one row/column container. The
// measurement and arrangement passes build it the same way so a measured
// auto size matches the arranged one.
type flexPlan struct {
	axis  Axis
	gap   int
	items []flexItem
	lines [][2]int // [start, end) item ranges
}

func (fp *flexPlan) build(n *Node, axis Axis, innerMain int, intrinsic []Size) {
	fp.axis = axis
	fp.gap = max(0, n.Props.Gap)
	fp.items = fp.items[:0]
	for i, child := range n.Children {
		fp.items = append(fp.items, newFlexItem(child, axis, innerMain, intrinsic[i]))
	}

	fp.lines = fp.lines[:0]
	switch {
	case len(fp.items) == 0:
	case n.Props.Wrap:
		fp.breakLines(innerMain)
	default:
		fp.lines = append(fp.lines, [2]int{0, len(fp.items)})
	}
	for _, l := range fp.lines {
		resolveMain(fp.items[l[0]:l[1]], innerMain, fp.gap)
	}
}

// contentMain is the main size the items want before any distribution:
// their clamped bases, margins and gaps on a single line.
func (fp *flexPlan) contentMain() int {
	total := fp.gap * max(0, len(fp.items)-1)
	for i := range fp.items {
		total += fp.items[i].hypothetical()
	}
	return total
}

// breakLines starts a new line whenever the next item would overflow
// innerMain. Every line holds at least one item.
func (fp *flexPlan) breakLines(innerMain int) {
	start, used := 0, 0
	for i := range fp.items {
		size := fp.items[i].hypothetical()
		if i > start && used+fp.gap+size > innerMain {
			fp.lines = append(fp.lines, [2]int{start, i})
			start, used = i, size
			continue
		}
		if i > start {
			used += fp.gap
		}
		used += size
	}
	fp.lines = append(fp.lines, [2]int{start, len(fp.items)})
}

// lineCross returns the cross size of line l given every item's border-box
// cross size.
func (fp *flexPlan) lineCross(n *Node, l [2]int, cross []int) int {
	size := 0
	for i := l[0]; i < l[1]; i++ {
		size = max(size, cross[i]+n.Children[i].Props.Margin.cross(fp.axis))
	}
	return size
}

// crossContent returns the summed line cross sizes plus line gaps.
func (fp *flexPlan) crossContent(n *Node, cross []int) int {
	total := fp.gap * max(0, len(fp.lines)-1)
	for _, l := range fp.lines {
		total += fp.lineCross(n, l, cross)
	}
	return total
}

// offsets appends the offset of each item's margin box in line l from the
// start of the line, after justification.
func (fp *flexPlan) offsets(j Justify, l [2]int, innerMain int, pos []int) []int {
	count := l[1] - l[0]
	used := fp.gap * max(0, count-1)
	for i := l[0]; i < l[1]; i++ {
		used += fp.items[i].outer()
	}
	before := justifySpacing(j, max(0, innerMain-used), count)

	cursor := 0
	for k := range count {
		cursor += before[k]
		pos = append(pos, cursor)
		cursor += fp.items[l[0]+k].outer() + fp.gap
	}
	return pos
}

// resolveMain assigns every item its final main size. Definite items take
// their clamped basis; the space left after gaps, margins and definite
// items is shared between growing items by distribute. Min clamps of
// growing items are then raised only from slack nobody claimed.
func resolveMain(items []flexItem, innerMain, gap int) {
	used := gap * max(0, len(items)-1)
	for i := range items {
		it := &items[i]
		used += it.marginMain
		if it.grows {
			it.main = 0
			continue
		}
		it.main = clampBounds(it.basis, it.min, it.max)
		used += it.main
	}

	remaining := max(0, innerMain-used)
	distribute(items, remaining)

	slack := remaining
	for i := range items {
		if items[i].grows {
			slack -= items[i].main
		}
	}
	for i := range items {
		it := &items[i]
		if !it.grows || it.main >= it.min || slack <= 0 {
			continue
		}
		raise := min(it.min-it.main, slack)
		it.main += raise
		slack -= raise
	}
}

// distribute shares space between growing items in proportion to their
// flex factors. Every share is floored and the leftover cells go one at a
// time to items in ascending index order. An item whose share exceeds its
// max is pinned there, its excess goes back to the pool, and the pool is
// shared again among the items still unpinned.
func distribute(items []flexItem, space int) {
	active := make([]int, 0, len(items))
	for i := range items {
		if items[i].grows {
			active = append(active, i)
		}
	}

	for len(active) > 0 {
		var total float64
		for _, i := range active {
			total += items[i].flex
		}

		given := 0
		for _, i := range active {
			share := int(math.Floor(float64(space)*(items[i].flex/total) + 1e-9))
			share = min(max(share, 0), space-given)
			items[i].main = share
			given += share
		}
		for k := 0; given < space; k = (k + 1) % len(active) {
			items[active[k]].main++
			given++
		}

		kept := active[:0]
		pinned := false
		for _, i := range active {
			it := &items[i]
			if it.max >= 0 && it.main > it.max {
				it.main = it.max
				space -= it.max
				pinned = true
				continue
			}
			kept = append(kept, i)
		}
		if !pinned {
			return
		}
		active = kept
	}
}

// splitEven splits total into n parts that differ by at most one, the
// larger parts first.
func splitEven(total, n int) []int {
	parts := make([]int, n)
	if n == 0 {
		return parts
	}
	q, r := total/n, total%n
	for i := range parts {
		parts[i] = q
		if i < r {
			parts[i]++
		}
	}
	return parts
}

// justifySpacing returns the free space placed before each of n items.
func justifySpacing(j Justify, free, n int) []int {
	before := make([]int, n)
	if n == 0 || free <= 0 {
		return before
	}

	switch j {
	case JustifyEnd:
		before[0] = free
	case JustifyCenter:
		before[0] = free / 2
	case JustifySpaceBetween:
		if n > 1 {
			parts := splitEven(free, n-1)
			for i := 1; i < n; i++ {
				before[i] = parts[i-1]
			}
		}
	case JustifySpaceAround:
		parts := splitEven(free, n)
		for i := range before {
			before[i] = parts[i] / 2
			if i > 0 {
				before[i] += parts[i-1] - parts[i-1]/2
			}
		}
	case JustifySpaceEvenly:
		parts := splitEven(free, n+1)
		copy(before, parts[:n])
	}
	return before
}

// alignOffset returns the offset for positioning a child on the cross axis
// given the space left beside it.
func alignOffset(a Align, space int) int {
	switch a {
	case AlignEnd:
		return space
	case AlignCenter:
		return space / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// childAlign returns the effective cross alignment of a child.
func childAlign(parent, child *Node) Align {
	if child.Props.AlignSelf != nil {
		return *child.Props.AlignSelf
	}
	return parent.Props.Align
}
