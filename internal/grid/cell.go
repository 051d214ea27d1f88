package grid

import "github.com/grindlemire/tuicore/internal/style"

// Cell is one character cell. Wide clusters (CJK, most emoji) occupy two
// cells; the first holds the cluster, the second is a continuation.
type Cell struct {
	Text  string      // One grapheme cluster ("" for continuation cells)
	Style style.Style // Visual styling
	Width uint8       // Display width (1 or 2; 0 for continuation)
}

// Blank is a space in the default style.
var Blank = Cell{Text: " ", Width: 1}

// IsContinuation returns true if this cell is the second half of a wide
// cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty reports whether the cell is a space in the default style.
func (c Cell) IsEmpty() bool {
	return c == Blank
}
