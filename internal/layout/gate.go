package layout

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"slices"
)

// Gate decides per frame whether a tree needs a layout pass. It keeps one
// signature per node in pre-order, hashed from the node's kind, child count
// and layout-relevant props. Styles, IDs, handlers, progress values and
// the clip flag are left out, so changing them never forces a relayout.
//
// Kinds whose layout inputs the gate cannot see (KindCustom, whose measure
// func is opaque, and anything outside the known set) always force a
// relayout and drop the stored signatures, so the frame after also lays
// out. A Gate is not safe for concurrent use; the zero value is ready.
type Gate struct {
	prev, next    []uint64
	width, height int
	valid         bool

	h     hash.Hash64
	buf   []byte
	stack []*Node
}

// Check reports whether root, laid out in a width x height viewport, may
// differ from the tree passed to the previous Check.
func (g *Gate) Check(root *Node, width, height int) bool {
	if g.h == nil {
		g.h = fnv.New64a()
	}

	g.next = g.next[:0]
	g.stack = append(g.stack[:0], root)
	for len(g.stack) > 0 {
		n := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		if n == nil {
			g.next = append(g.next, 0)
			continue
		}
		if !gated(n.Kind) {
			clear(g.stack)
			g.Reset()
			return true
		}
		g.next = append(g.next, g.signature(n))
		for i := len(n.Children) - 1; i >= 0; i-- {
			g.stack = append(g.stack, n.Children[i])
		}
	}

	changed := !g.valid || width != g.width || height != g.height || !slices.Equal(g.prev, g.next)
	g.prev, g.next = g.next, g.prev
	g.width, g.height = width, height
	g.valid = true
	return changed
}

// Reset forgets the stored signatures; the next Check reports a change.
func (g *Gate) Reset() {
	g.valid = false
	g.prev = g.prev[:0]
}

func gated(k Kind) bool {
	switch k {
	case KindText, KindRichText, KindSpacer, KindDivider, KindProgress,
		KindRow, KindColumn, KindBox, KindGrid, KindLayers:
		return true
	default: // KindCustom and unknown kinds
		return false
	}
}

func (g *Gate) signature(n *Node) uint64 {
	p := &n.Props
	b := append(g.buf[:0], byte(n.Kind))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(n.Children)))

	for _, v := range [...]Value{p.Width, p.Height, p.MinWidth, p.MinHeight, p.MaxWidth, p.MaxHeight} {
		b = append(b, byte(v.Unit))
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v.Amount))
	}
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(p.Flex))

	self := byte(0xff)
	if p.AlignSelf != nil {
		self = byte(*p.AlignSelf)
	}
	wrap := byte(0)
	if p.Wrap {
		wrap = 1
	}
	b = append(b, self, byte(p.Direction), byte(p.Justify), byte(p.Align), wrap, byte(p.Border.Inset()))

	for _, v := range [...]int{
		p.Gap, p.Columns, p.MaxTextWidth,
		p.Padding.Top, p.Padding.Right, p.Padding.Bottom, p.Padding.Left,
		p.Margin.Top, p.Margin.Right, p.Margin.Bottom, p.Margin.Left,
	} {
		b = binary.LittleEndian.AppendUint64(b, uint64(v))
	}

	switch n.Kind {
	case KindText:
		b = appendString(b, p.Text)
	case KindRichText:
		b = binary.LittleEndian.AppendUint32(b, uint32(len(p.Spans)))
		for _, s := range p.Spans {
			b = appendString(b, s.Text)
		}
	}

	g.buf = b
	g.h.Reset()
	g.h.Write(b)
	return g.h.Sum64()
}

func appendString(b []byte, s string) []byte {
	b = binary.LittleEndian.AppendUint32(b, uint32(len(s)))
	return append(b, s...)
}
