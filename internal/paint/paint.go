// Package paint presents grids on a tcell screen, writing only the cells
// that changed since the previous frame.
package paint

import (
	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tuicore/internal/grid"
	"github.com/grindlemire/tuicore/internal/style"
)

// Screen is the part of tcell.Screen a Presenter draws through.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Presenter paints successive frames onto one screen.
type Presenter struct {
	screen Screen
	front  *grid.Grid // what the screen shows
}

// New creates a presenter for s. The first frame is painted in full.
func New(s Screen) *Presenter {
	return &Presenter{screen: s}
}

// Present writes the cells of g that differ from the last presented frame
// and shows the screen. It returns the number of cells written. A frame of
// a different size than the last one is painted in full.
func (p *Presenter) Present(g *grid.Grid) int {
	full := p.front == nil || p.front.Width() != g.Width() || p.front.Height() != g.Height()
	if full {
		p.screen.Clear()
	}

	written := 0
	for _, c := range g.Diff(p.front) {
		// The wide cluster before a continuation cell already covers it.
		if c.Cell.IsContinuation() {
			continue
		}
		primary, combining := runes(c.Cell.Text)
		p.screen.SetContent(c.X, c.Y, primary, combining, Style(c.Cell.Style))
		written++
	}
	p.screen.Show()
	p.front = g.Clone()
	return written
}

// Invalidate forgets the last frame so the next Present repaints
// everything, as after a resize or when the terminal was disturbed.
func (p *Presenter) Invalidate() {
	p.front = nil
}

func runes(cluster string) (rune, []rune) {
	rs := []rune(cluster)
	if len(rs) == 0 {
		return ' ', nil
	}
	return rs[0], rs[1:]
}

// Style converts a style to its tcell equivalent.
func Style(st style.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(st.Fg)).
		Background(Color(st.Bg)).
		Bold(st.HasAttr(style.AttrBold)).
		Dim(st.HasAttr(style.AttrDim)).
		Italic(st.HasAttr(style.AttrItalic)).
		Underline(st.HasAttr(style.AttrUnderline)).
		Blink(st.HasAttr(style.AttrBlink)).
		Reverse(st.HasAttr(style.AttrReverse)).
		StrikeThrough(st.HasAttr(style.AttrStrikethrough))
}

// Color converts a color to its tcell equivalent.
func Color(c style.Color) tcell.Color {
	switch c.Type() {
	case style.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case style.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}
