// Package render turns a laid-out widget tree into drawlist commands.
package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/style"
	"github.com/grindlemire/tuicore/internal/text"
)

// ErrShapeMismatch is returned when a Geometry tree does not mirror the
// node tree it is rendered with.
var ErrShapeMismatch = errors.New("render: geometry does not match node tree")

// Options configures a render pass.
type Options struct {
	// Axis is the main axis the root was laid out along. Dividers at the
	// root are drawn across it.
	Axis layout.Axis

	// Viewport culls drawing: a node whose rect misses it draws nothing of
	// its own, and a clipping container whose content misses it is skipped
	// with its subtree. An empty Viewport disables culling.
	Viewport layout.Rect
}

// item is one pending step of the pre-order walk.
type item struct {
	node *layout.Node
	geo  *layout.Geometry
	axis layout.Axis // axis the node was laid out along
	bg   style.Color // background inherited from the nearest filled ancestor
	pop  bool        // close a clip instead of drawing
}

// Render appends the commands for the tree rooted at root to b, starting
// with a Clear. geo must be the geometry computed for root.
func Render(b *drawlist.Builder, root *layout.Node, geo *layout.Geometry, opts Options) error {
	b.Clear()

	stack := []item{{node: root, geo: geo, axis: opts.Axis}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.pop {
			b.PopClip()
			continue
		}

		n, g := it.node, it.geo
		if n == nil || g == nil || len(n.Children) != len(g.Children) {
			return fmt.Errorf("%w at %s node %q", ErrShapeMismatch, kindOf(n), idOf(n))
		}

		bg := it.bg
		if !n.Props.Style.Bg.IsDefault() {
			bg = n.Props.Style.Bg
		}
		if visible(g.Rect, opts.Viewport) {
			drawNode(b, n, g, it.axis, bg)
		}
		if len(n.Children) == 0 {
			continue
		}

		if n.Props.Clip {
			if !visible(g.Content, opts.Viewport) {
				continue
			}
			b.PushClip(g.Content.X, g.Content.Y, g.Content.Width, g.Content.Height)
			stack = append(stack, item{pop: true})
		}
		axis := childAxis(n, it.axis)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: n.Children[i], geo: g.Children[i], axis: axis, bg: bg})
		}
	}
	return nil
}

func visible(r, viewport layout.Rect) bool {
	if viewport.IsEmpty() {
		return true
	}
	return !r.Intersect(viewport).IsEmpty()
}

func kindOf(n *layout.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind.String()
}

func idOf(n *layout.Node) string {
	if n == nil {
		return ""
	}
	return n.Props.ID
}

// childAxis returns the axis children of n are laid out along.
func childAxis(n *layout.Node, own layout.Axis) layout.Axis {
	switch n.Kind {
	case layout.KindRow:
		return layout.Row
	case layout.KindColumn:
		return layout.Column
	case layout.KindBox:
		return n.Props.Direction
	case layout.KindGrid:
		return layout.Row
	default:
		return own
	}
}

// withBg returns st on the inherited background unless it sets its own.
func withBg(st style.Style, bg style.Color) style.Style {
	if st.Bg.IsDefault() {
		st.Bg = bg
	}
	return st
}

func drawNode(b *drawlist.Builder, n *layout.Node, g *layout.Geometry, axis layout.Axis, bg style.Color) {
	p := &n.Props
	r, c := g.Rect, g.Content

	// 1. Fill background
	if !p.Style.Bg.IsDefault() && !r.IsEmpty() {
		b.FillRect(r.X, r.Y, r.Width, r.Height, style.Style{Bg: p.Style.Bg})
	}

	// 2. Draw border (border style takes only the background from the node)
	if p.Border != style.BorderNone {
		drawBorder(b, r, p.Border, withBg(p.BorderStyle, bg))
	}

	// 3. Draw content
	if c.IsEmpty() {
		return
	}
	st := withBg(p.Style, bg)
	switch n.Kind {
	case layout.KindText:
		drawText(b, p, c, st)
	case layout.KindRichText:
		drawRichText(b, p, c, bg)
	case layout.KindDivider:
		drawDivider(b, c, axis, st)
	case layout.KindProgress:
		drawProgress(b, p.Value, c, st)
	}
}

// drawText draws wrapped text one line per row, every line a byte range of
// the same string, or unwrapped text truncated to the content width.
func drawText(b *drawlist.Builder, p *layout.Props, c layout.Rect, st style.Style) {
	width := c.Width
	if p.MaxTextWidth > 0 {
		width = min(width, p.MaxTextWidth)
	}
	if !p.Wrap {
		end, _ := text.Truncate(p.Text, width)
		b.DrawTextRange(c.X, c.Y, p.Text, 0, end, st)
		return
	}
	for i, line := range text.Wrap(p.Text, width) {
		if i >= c.Height {
			break
		}
		b.DrawTextRange(c.X, c.Y+i, p.Text, line.Start, line.End, st)
	}
}

// drawRichText draws the spans as one text run, clipped when it is wider
// than the content rect.
func drawRichText(b *drawlist.Builder, p *layout.Props, c layout.Rect, bg style.Color) {
	segs := make([]drawlist.Segment, len(p.Spans))
	width := 0
	for i, s := range p.Spans {
		segs[i] = drawlist.Segment{Text: s.Text, Style: withBg(s.Style, bg)}
		width += text.Width(s.Text)
	}
	if width <= c.Width {
		b.DrawTextRun(c.X, c.Y, segs)
		return
	}
	b.PushClip(c.X, c.Y, c.Width, 1)
	b.DrawTextRun(c.X, c.Y, segs)
	b.PopClip()
}

// drawDivider rules across the parent's cross axis: a vertical line in a
// row, a horizontal one otherwise.
func drawDivider(b *drawlist.Builder, c layout.Rect, axis layout.Axis, st style.Style) {
	if axis == layout.Row {
		for y := c.Y; y < c.Bottom(); y++ {
			b.DrawText(c.X, y, "│", st)
		}
		return
	}
	b.DrawText(c.X, c.Y, strings.Repeat("─", c.Width), st)
}

// drawProgress draws a bar of filled and empty blocks on every row.
func drawProgress(b *drawlist.Builder, value float64, c layout.Rect, st style.Style) {
	value = min(max(value, 0), 1)
	if math.IsNaN(value) {
		value = 0
	}
	filled := int(math.Round(value * float64(c.Width)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", c.Width-filled)
	for y := c.Y; y < c.Bottom(); y++ {
		b.DrawText(c.X, y, bar, st)
	}
}
