package style

// Attr represents text attributes as a bitfield.
type Attr uint8

const (
	// AttrNone represents no text attributes.
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << (iota - 1)
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

var attrNames = map[string]Attr{
	"bold":          AttrBold,
	"dim":           AttrDim,
	"italic":        AttrItalic,
	"underline":     AttrUnderline,
	"blink":         AttrBlink,
	"reverse":       AttrReverse,
	"strikethrough": AttrStrikethrough,
}

// ParseAttr looks up an attribute by its lowercase name.
func ParseAttr(name string) (Attr, bool) {
	a, ok := attrNames[name]
	return a, ok
}

// Style combines text attributes with foreground and background colors.
// Zero value represents default styling.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Foreground returns a copy of s with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns a copy of s with the attribute(s) added.
func (s Style) With(a Attr) Style {
	s.Attrs |= a
	return s
}

// HasAttr returns true if the style has the given attribute(s) set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// Pack returns the three wire words (fg, bg, attrs) for s.
func (s Style) Pack() (fg, bg, attrs uint32) {
	return s.Fg.Pack(), s.Bg.Pack(), uint32(s.Attrs)
}

// Unpack is the inverse of Style.Pack.
func Unpack(fg, bg, attrs uint32) Style {
	return Style{Fg: UnpackColor(fg), Bg: UnpackColor(bg), Attrs: Attr(attrs)}
}
