package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/tuicore/internal/style"
)

// colorNames are the eight basic ANSI colors.
var colorNames = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

func (s styleDef) style() (style.Style, error) {
	var st style.Style
	var err error
	if st.Fg, err = parseColor(s.Fg); err != nil {
		return st, fmt.Errorf("fg: %w", err)
	}
	if st.Bg, err = parseColor(s.Bg); err != nil {
		return st, fmt.Errorf("bg: %w", err)
	}
	for _, name := range s.Attrs {
		a, ok := style.ParseAttr(name)
		if !ok {
			return st, fmt.Errorf("unknown attribute %q", name)
		}
		st = st.With(a)
	}
	return st, nil
}

// parseColor accepts "" or "default", a basic color name, a palette index
// from 0 to 255, or "#RGB" / "#RRGGBB".
func parseColor(s string) (style.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "default" {
		return style.DefaultColor(), nil
	}
	if idx, ok := colorNames[s]; ok {
		return style.ANSIColor(idx), nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := style.HexColor(s)
		if err != nil {
			return style.Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		return c, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return style.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return style.ANSIColor(uint8(n)), nil
}
