package render

import (
	"strings"

	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/style"
)

// drawBorder draws a box frame along the edges of r: the top and bottom
// edges as one string each and the sides one cell per row. Rects smaller
// than 2x2 get no border.
func drawBorder(b *drawlist.Builder, r layout.Rect, border style.Border, st style.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	chars := border.Chars()
	inner := r.Width - 2

	b.DrawText(r.X, r.Y, chars.TopLeft+strings.Repeat(chars.Top, inner)+chars.TopRight, st)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		b.DrawText(r.X, y, chars.Left, st)
		b.DrawText(r.Right()-1, y, chars.Right, st)
	}
	b.DrawText(r.X, r.Bottom()-1, chars.BottomLeft+strings.Repeat(chars.Bottom, inner)+chars.BottomRight, st)
}
