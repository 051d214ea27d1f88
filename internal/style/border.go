package style

// Border selects the box-drawing set used for a widget's frame. Any border
// other than BorderNone occupies one cell on every side.
type Border uint8

const (
	// BorderNone draws no frame.
	BorderNone Border = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

var borderNames = map[string]Border{
	"none":    BorderNone,
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"thick":   BorderThick,
}

// ParseBorder looks up a border by name.
func ParseBorder(name string) (Border, bool) {
	b, ok := borderNames[name]
	return b, ok
}

// BorderChars holds the glyphs of one border set.
type BorderChars struct {
	TopLeft     string
	Top         string
	TopRight    string
	Left        string
	Right       string
	BottomLeft  string
	Bottom      string
	BottomRight string
}

// Chars returns the glyphs for b. BorderNone and unknown values yield
// spaces.
func (b Border) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{"┌", "─", "┐", "│", "│", "└", "─", "┘"}
	case BorderDouble:
		return BorderChars{"╔", "═", "╗", "║", "║", "╚", "═", "╝"}
	case BorderRounded:
		return BorderChars{"╭", "─", "╮", "│", "│", "╰", "─", "╯"}
	case BorderThick:
		return BorderChars{"┏", "━", "┓", "┃", "┃", "┗", "━", "┛"}
	default:
		return BorderChars{" ", " ", " ", " ", " ", " ", " ", " "}
	}
}

// Inset returns the number of cells the border takes on each side.
func (b Border) Inset() int {
	if b == BorderNone {
		return 0
	}
	return 1
}
