package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of parent's inner size
)

// Value represents a dimension that can be fixed, percentage, or auto.
// The zero value is auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual integer value given available space.
// Percentages round down. For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// String formats v the way ParseValue accepts it.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.Itoa(int(v.Amount))
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	default:
		return "auto"
	}
}

// ParseValue parses "auto" (or ""), a cell count such as "12", or a
// percentage such as "50%".
func ParseValue(s string) (Value, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "auto":
		return Auto(), nil
	case strings.HasSuffix(s, "%"):
		p, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-1]), 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Percent(p), nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Value{}, fmt.Errorf("invalid size %q: %w", s, err)
		}
		return Fixed(n), nil
	}
}
