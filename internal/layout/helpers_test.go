package layout

import "testing"

func spacer(p Props) *Node {
	return &Node{Kind: KindSpacer, Props: p}
}

func flexSpacer(f float64) *Node {
	return spacer(Props{Flex: f})
}

func wrapped(s string) *Node {
	return &Node{Kind: KindText, Props: Props{Text: s, Wrap: true}}
}

func mustLayout(t *testing.T, n *Node, w, h int, axis Axis, cache *Cache) *Geometry {
	t.Helper()
	g, err := Layout(n, 0, 0, w, h, axis, cache)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if !sameShape(n, g) {
		t.Fatalf("geometry does not mirror the node tree")
	}
	return g
}

func childRects(g *Geometry) []Rect {
	rects := make([]Rect, len(g.Children))
	for i, c := range g.Children {
		rects[i] = c.Rect
	}
	return rects
}

func childMains(g *Geometry, axis Axis) []int {
	sizes := make([]int, len(g.Children))
	for i, c := range g.Children {
		sizes[i] = c.Rect.Size().main(axis)
	}
	return sizes
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameShape reports whether g mirrors the node tree rooted at n: the same
// child count at every node, in the same order.
func sameShape(n *Node, g *Geometry) bool {
	type pair struct {
		n *Node
		g *Geometry
	}
	stack := []pair{{n, g}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if (p.n == nil) != (p.g == nil) {
			return false
		}
		if p.n == nil {
			continue
		}
		if len(p.n.Children) != len(p.g.Children) {
			return false
		}
		for i := range p.n.Children {
			stack = append(stack, pair{p.n.Children[i], p.g.Children[i]})
		}
	}
	return true
}
