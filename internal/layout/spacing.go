package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// spacingScale maps named spacing tokens to cells.
var spacingScale = map[string]int{
	"none": 0,
	"xs":   1,
	"sm":   1,
	"md":   2,
	"lg":   3,
	"xl":   4,
	"2xl":  6,
}

// ParseSpacing resolves CSS-like margin/padding shorthand into Edges.
//
// One to four space-separated parts are accepted, each either a cell count
// or a scale token (none, xs, sm, md, lg, xl, 2xl); tokens and numbers may
// be mixed. The parts expand the way CSS does: "1" sets all sides, "1 2"
// sets vertical then horizontal, "1 2 3" sets top, horizontal and bottom,
// and "1 2 3 4" sets top, right, bottom and left.
func ParseSpacing(s string) (Edges, error) {
	parts := strings.Fields(s)
	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := spacingUnit(p)
		if err != nil {
			return Edges{}, fmt.Errorf("spacing %q: %w", s, err)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		return EdgeAll(vals[0]), nil
	case 2:
		return EdgeSymmetric(vals[0], vals[1]), nil
	case 3:
		return EdgeTRBL(vals[0], vals[1], vals[2], vals[1]), nil
	case 4:
		return EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return Edges{}, fmt.Errorf("spacing %q: want 1 to 4 values, got %d", s, len(vals))
	}
}

func spacingUnit(p string) (int, error) {
	if v, ok := spacingScale[p]; ok {
		return v, nil
	}
	v, err := strconv.Atoi(p)
	if err != nil {
		return 0, fmt.Errorf("unknown spacing token %q", p)
	}
	return v, nil
}
