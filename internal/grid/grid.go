// Package grid is an in-memory character grid and the reference executor
// for drawlist commands. Painting a frame onto a Grid defines what a
// drawlist means; terminal backends present a Grid rather than
// interpreting commands themselves.
package grid

import (
	"slices"
	"strings"

	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/style"
	"github.com/grindlemire/tuicore/internal/text"
)

// Grid is a 2D array of cells plus the clip stack commands draw through.
type Grid struct {
	cells  []Cell
	width  int
	height int
	clips  []layout.Rect
}

// Change is a single cell that differs between two grids.
type Change struct {
	X, Y int
	Cell Cell
}

// New creates a grid of the given size filled with blank cells. Negative
// sizes are treated as zero.
func New(width, height int) *Grid {
	width, height = max(0, width), max(0, height)
	g := &Grid{cells: make([]Cell, width*height), width: width, height: height}
	for i := range g.cells {
		g.cells[i] = Blank
	}
	return g
}

// Clone returns a copy of g with an empty clip stack.
func (g *Grid) Clone() *Grid {
	return &Grid{cells: slices.Clone(g.cells), width: g.width, height: g.height}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return g.height
}

// Size returns the grid dimensions (width, height).
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// Bounds returns the grid as a rect at (0, 0).
func (g *Grid) Bounds() layout.Rect {
	return layout.NewRect(0, 0, g.width, g.height)
}

// clip returns the rect drawing is currently limited to.
func (g *Grid) clip() layout.Rect {
	if len(g.clips) == 0 {
		return g.Bounds()
	}
	return g.clips[len(g.clips)-1]
}

// PushClip limits drawing to r intersected with the current clip.
func (g *Grid) PushClip(r layout.Rect) {
	g.clips = append(g.clips, g.clip().Intersect(r))
}

// PopClip restores the previous clip. Popping an empty stack does nothing.
func (g *Grid) PopClip() {
	if len(g.clips) > 0 {
		g.clips = g.clips[:len(g.clips)-1]
	}
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (g *Grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.width + x
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (g *Grid) Cell(x, y int) Cell {
	i := g.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return g.cells[i]
}

// SetCell stores c at (x, y) without any wide-cluster bookkeeping.
// Does nothing if the position is out of bounds.
func (g *Grid) SetCell(x, y int, c Cell) {
	if i := g.idx(x, y); i >= 0 {
		g.cells[i] = c
	}
}

// put writes one cluster of width 1 or 2 at (x, y), clearing any wide
// cluster it partly overwrites. The caller guarantees a wide cluster fits.
func (g *Grid) put(x, y int, cluster string, width int, st style.Style) {
	cur := g.Cell(x, y)
	// Landing on a continuation orphans the lead to the left.
	if cur.IsContinuation() {
		g.clearWideAt(x, y)
	}
	// Overwriting a wide lead orphans its continuation.
	if cur.Width == 2 {
		g.SetCell(x+1, y, Blank)
	}
	if width == 2 {
		next := g.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			g.clearWideAt(x+1, y)
		}
	}

	g.SetCell(x, y, Cell{Text: cluster, Style: st, Width: uint8(width)})
	if width == 2 {
		g.SetCell(x+1, y, Cell{Style: st})
	}
}

// clearWideAt blanks the wide cluster covering (x, y).
func (g *Grid) clearWideAt(x, y int) {
	cell := g.Cell(x, y)
	if cell.IsContinuation() {
		g.SetCell(x-1, y, Blank)
		g.SetCell(x, y, Blank)
	} else if cell.Width == 2 {
		g.SetCell(x, y, Blank)
		g.SetCell(x+1, y, Blank)
	}
}

// DrawText writes s on row y starting at column x through the current
// clip and returns the display width s advances by. Clusters that do not
// fit entirely inside the clip are skipped, zero-width clusters are
// dropped and invalid UTF-8 is drawn as U+FFFD.
func (g *Grid) DrawText(x, y int, s string, st style.Style) int {
	s = text.Valid(s)
	clip := g.clip()
	visible := y >= clip.Y && y < clip.Bottom()

	cur := x
	for c := range text.Graphemes(s) {
		if c.Width == 0 {
			continue
		}
		if visible && cur >= clip.X && cur+c.Width <= clip.Right() {
			g.put(cur, y, c.Text, c.Width, st)
		}
		cur += c.Width
	}
	return cur - x
}

// Fill paints r intersected with the current clip with spaces in st.
func (g *Grid) Fill(r layout.Rect, st style.Style) {
	r = r.Intersect(g.clip())
	if r.IsEmpty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			g.put(x, y, " ", 1, st)
		}
	}
}

// Clear blanks every cell, ignoring the clip.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Blank
	}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Diff returns the cells of g that differ from prev in row-major order.
// A nil or differently sized prev yields every cell.
func (g *Grid) Diff(prev *Grid) []Change {
	full := prev == nil || prev.width != g.width || prev.height != g.height
	changes := make([]Change, 0, g.width)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := y*g.width + x
			if full || g.cells[i] != prev.cells[i] {
				changes = append(changes, Change{X: x, Y: y, Cell: g.cells[i]})
			}
		}
	}
	return changes
}

// String renders the grid as text, one line per row. Continuation cells
// are skipped.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		g.writeRow(&sb, y)
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the grid content with trailing spaces removed from
// each line.
func (g *Grid) StringTrimmed() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		var line strings.Builder
		g.writeRow(&line, y)
		sb.WriteString(strings.TrimRight(line.String(), " "))
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (g *Grid) writeRow(sb *strings.Builder, y int) {
	for x := 0; x < g.width; x++ {
		c := g.cells[y*g.width+x]
		if c.IsContinuation() {
			continue
		}
		if c.Text == "" {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(c.Text)
		}
	}
}
