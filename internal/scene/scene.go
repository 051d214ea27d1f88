// Package scene loads widget trees from TOML files.
//
// A scene names its viewport and a root node; every node table carries a
// kind and the properties that apply to it, with children nested as arrays
// of tables:
//
//	width = 40
//	height = 10
//
//	[root]
//	kind = "column"
//	border = "rounded"
//	padding = "0 1"
//
//	[[root.children]]
//	kind = "text"
//	text = "hello"
//	fg = "#ff8800"
//
// Sizes accept integers or strings such as "50%" and "auto"; spacing
// accepts integers or CSS-style shorthand with scale tokens ("sm lg").
// Unknown keys are rejected.
package scene

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/tuicore/internal/layout"
)

// Default viewport of scenes that do not set one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrNoRoot is returned for a scene without a [root] table.
var ErrNoRoot = errors.New("scene has no root node")

// Scene is a widget tree and the viewport it was written for.
type Scene struct {
	Root   *layout.Node
	Axis   layout.Axis // axis the root is laid out along
	Width  int
	Height int
}

type file struct {
	Width  int      `toml:"width"`
	Height int      `toml:"height"`
	Axis   string   `toml:"axis"`
	Root   *nodeDef `toml:"root"`
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from TOML source.
func Parse(data []byte) (*Scene, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if f.Root == nil {
		return nil, ErrNoRoot
	}

	s := &Scene{Width: f.Width, Height: f.Height, Axis: layout.Column}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if f.Axis != "" {
		axis, ok := layout.ParseAxis(f.Axis)
		if !ok {
			return nil, fmt.Errorf("unknown axis %q", f.Axis)
		}
		s.Axis = axis
	}

	s.Root, err = f.Root.build("root")
	if err != nil {
		return nil, err
	}
	return s, nil
}

// scalar is a TOML value written either as a string or as an integer.
type scalar string

// UnmarshalTOML implements toml.Unmarshaler.
func (s *scalar) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*s = scalar(v)
	case int64:
		*s = scalar(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("want a string or an integer, got %T", v)
	}
	return nil
}
