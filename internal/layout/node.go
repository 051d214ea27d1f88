package layout

import (
	"math"

	"github.com/grindlemire/tuicore/internal/style"
)

// Kind tags a Node. The set is closed; every switch over Kind in this
// module handles each value, and values outside the set are laid out like
// KindCustom.
type Kind uint8

const (
	KindText     Kind = iota // Single string, optionally wrapped
	KindRichText             // One row of independently styled spans
	KindSpacer               // Empty leaf that only takes space
	KindDivider              // One-cell rule across the parent's main axis
	KindProgress             // Horizontal progress bar
	KindRow                  // Flex container, main axis horizontal
	KindColumn               // Flex container, main axis vertical
	KindBox                  // Flex container, main axis from Props.Direction
	KindGrid                 // Equal-width column tracks, rows sized by content
	KindLayers               // Children stacked on top of each other
	KindCustom               // Leaf measured by Props.Measure
)

var kindNames = [...]string{
	KindText:     "text",
	KindRichText: "richtext",
	KindSpacer:   "spacer",
	KindDivider:  "divider",
	KindProgress: "progress",
	KindRow:      "row",
	KindColumn:   "column",
	KindBox:      "box",
	KindGrid:     "grid",
	KindLayers:   "layers",
	KindCustom:   "custom",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind looks up a kind by name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// MeasureFunc reports the content size of a KindCustom node given the
// space inside its padding and border.
type MeasureFunc func(maxWidth, maxHeight int) Size

// Span is one styled piece of a KindRichText row.
type Span struct {
	Text  string
	Style style.Style
}

// Props holds everything a widget carries. Only the layout-relevant fields
// take part in measurement and in Gate signatures; ID, Style, BorderStyle,
// Value and OnPress never affect geometry.
type Props struct {
	// Sizing. Min/Max on the container's main axis form the child's flex
	// clamps; auto Min means 0 and auto Max means unbounded.
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex item
	Flex      float64 // Share of the parent's remaining main-axis space
	AlignSelf *Align  // Override parent's Align (nil = inherit)

	// Container
	Direction Axis // Main axis of KindBox
	Justify   Justify
	Align     Align
	Gap       int  // Cells between children (and between wrapped lines)
	Wrap      bool // Wrap children onto new lines; for text, wrap the text
	Columns   int  // Track count of KindGrid
	Clip      bool // Clip children to the content rect when painting

	// Spacing
	Padding Edges
	Margin  Edges
	Border  style.Border

	// Content
	Text         string
	Spans        []Span
	MaxTextWidth int         // Upper bound on text width, 0 = none
	Measure      MeasureFunc // KindCustom sizing

	// Presentation only
	ID          string
	Style       style.Style
	BorderStyle style.Style
	Value       float64 // Progress fraction in [0, 1]
	OnPress     func()
}

// Node is one widget in a committed tree. Its pointer identity keys the
// layout cache, so a Node must not change after it has been laid out.
type Node struct {
	Kind     Kind
	Props    Props
	Children []*Node
}

// insets returns the padding plus the border width on each side.
func (n *Node) insets() Edges {
	b := n.Props.Border.Inset()
	return n.Props.Padding.Add(EdgeAll(b))
}

// mainAxis reports the main axis of flex containers.
func (n *Node) mainAxis() (Axis, bool) {
	switch n.Kind {
	case KindRow:
		return Row, true
	case KindColumn:
		return Column, true
	case KindBox:
		return n.Props.Direction, true
	default:
		return Row, false
	}
}

// flexFactor is the usable grow factor: non-positive and non-finite values
// count as zero.
func (p *Props) flexFactor() float64 {
	if p.Flex > 0 && !math.IsInf(p.Flex, 1) {
		return p.Flex
	}
	return 0
}

func (p *Props) size(a Axis) Value {
	if a == Row {
		return p.Width
	}
	return p.Height
}

func (p *Props) minSize(a Axis) Value {
	if a == Row {
		return p.MinWidth
	}
	return p.MinHeight
}

func (p *Props) maxSize(a Axis) Value {
	if a == Row {
		return p.MaxWidth
	}
	return p.MaxHeight
}

// bounds resolves the min/max clamps along a against base. max is -1
// when unbounded.
func (p *Props) bounds(a Axis, base int) (lo, hi int) {
	lo = max(0, p.minSize(a).Resolve(base, 0))
	hi = -1
	if v := p.maxSize(a); !v.IsAuto() {
		hi = max(0, v.Resolve(base, 0))
	}
	return lo, hi
}

// clampBounds restricts v to [lo, hi]; hi < 0 means no upper bound and lo
// wins when the two conflict.
func clampBounds(v, lo, hi int) int {
	if hi >= 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// NewText returns a text leaf.
func NewText(s string) *Node {
	return &Node{Kind: KindText, Props: Props{Text: s}}
}

// NewRow returns a row container holding children.
func NewRow(children ...*Node) *Node {
	return &Node{Kind: KindRow, Children: children}
}

// NewColumn returns a column container holding children.
func NewColumn(children ...*Node) *Node {
	return &Node{Kind: KindColumn, Children: children}
}
