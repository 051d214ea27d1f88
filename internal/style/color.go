// Package style holds the resolved visual attributes carried by widget nodes.
//
// The rendering core never interprets styles; it only packs them into the
// three 32-bit words the drawlist wire format carries per style.
package style

import (
	"errors"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color is a terminal color. The zero value is the terminal default.
type Color struct {
	typ     ColorType
	r, g, b uint8 // For ANSI, r holds the palette index
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		var v [3]uint8
		for i := range v {
			hi, err := parseHexNibble(hex[2*i])
			if err != nil {
				return Color{}, err
			}
			lo, err := parseHexNibble(hex[2*i+1])
			if err != nil {
				return Color{}, err
			}
			v[i] = hi<<4 | lo
		}
		return RGBColor(v[0], v[1], v[2]), nil
	case 3:
		var v [3]uint8
		for i := range v {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return Color{}, err
			}
			v[i] = n<<4 | n
		}
		return RGBColor(v[0], v[1], v[2]), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB or #RRGGBB")
	}
}

func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Type returns the color representation.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the palette index. Only meaningful for ColorANSI.
func (c Color) ANSI() uint8 {
	return c.r
}

// RGB returns the color components. Only meaningful for ColorRGB.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Pack encodes the color in one wire word: the high byte holds the
// ColorType and the low 24 bits the palette index or 0xRRGGBB.
func (c Color) Pack() uint32 {
	switch c.typ {
	case ColorANSI:
		return uint32(ColorANSI)<<24 | uint32(c.r)
	case ColorRGB:
		return uint32(ColorRGB)<<24 | uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
	default:
		return 0
	}
}

// UnpackColor is the inverse of Color.Pack. Unknown tags decode to the
// default color.
func UnpackColor(v uint32) Color {
	switch ColorType(v >> 24) {
	case ColorANSI:
		return ANSIColor(uint8(v))
	case ColorRGB:
		return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v))
	default:
		return DefaultColor()
	}
}
