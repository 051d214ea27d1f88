package grid

import (
	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/layout"
)

// Apply executes one drawlist command. Unknown opcodes are ignored.
func (g *Grid) Apply(c drawlist.Command) {
	switch c.Op {
	case drawlist.OpClear:
		g.Clear()
	case drawlist.OpFillRect:
		g.Fill(layout.NewRect(c.X, c.Y, c.Width, c.Height), c.Style)
	case drawlist.OpDrawText:
		g.DrawText(c.X, c.Y, c.Text, c.Style)
	case drawlist.OpPushClip:
		g.PushClip(layout.NewRect(c.X, c.Y, c.Width, c.Height))
	case drawlist.OpPopClip:
		g.PopClip()
	case drawlist.OpDrawTextRun:
		x := c.X
		for _, s := range c.Run {
			x += g.DrawText(x, c.Y, s.Text, s.Style)
		}
	}
}

// Run executes every command of d in order. The clip stack starts empty
// and is discarded afterwards.
func (g *Grid) Run(d *drawlist.Drawlist) {
	g.clips = g.clips[:0]
	for _, c := range d.Commands() {
		g.Apply(c)
	}
	g.clips = g.clips[:0]
}

// Execute parses buf and runs it against g. g is untouched when buf is
// malformed.
func (g *Grid) Execute(buf []byte) error {
	d, err := drawlist.Parse(buf)
	if err != nil {
		return err
	}
	g.Run(d)
	return nil
}
