package layout

// Axis specifies the main direction of a container.
type Axis uint8

const (
	Row    Axis = iota // Children laid out left-to-right
	Column             // Children laid out top-to-bottom
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Row {
		return Column
	}
	return Row
}

func (a Axis) String() string {
	if a == Column {
		return "column"
	}
	return "row"
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
// The zero value stretches.
type Align uint8

const (
	AlignStretch Align = iota // Stretch auto-sized children to fill cross axis
	AlignStart                // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
)

var (
	justifyNames = map[string]Justify{
		"start":         JustifyStart,
		"end":           JustifyEnd,
		"center":        JustifyCenter,
		"space-between": JustifySpaceBetween,
		"space-around":  JustifySpaceAround,
		"space-evenly":  JustifySpaceEvenly,
	}
	alignNames = map[string]Align{
		"stretch": AlignStretch,
		"start":   AlignStart,
		"end":     AlignEnd,
		"center":  AlignCenter,
	}
)

// ParseJustify looks up a justify mode by its CSS-style name.
func ParseJustify(name string) (Justify, bool) {
	j, ok := justifyNames[name]
	return j, ok
}

// ParseAlign looks up an align mode by its CSS-style name.
func ParseAlign(name string) (Align, bool) {
	a, ok := alignNames[name]
	return a, ok
}

// ParseAxis accepts "row" or "column".
func ParseAxis(name string) (Axis, bool) {
	switch name {
	case "row":
		return Row, true
	case "column", "col":
		return Column, true
	}
	return Row, false
}
