package scene

import (
	"fmt"
	"math"

	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/style"
)

type nodeDef struct {
	Kind string `toml:"kind"`
	ID   string `toml:"id"`

	Width     scalar  `toml:"width"`
	Height    scalar  `toml:"height"`
	MinWidth  scalar  `toml:"min_width"`
	MinHeight scalar  `toml:"min_height"`
	MaxWidth  scalar  `toml:"max_width"`
	MaxHeight scalar  `toml:"max_height"`
	Flex      float64 `toml:"flex"`
	AlignSelf string  `toml:"align_self"`

	Direction string `toml:"direction"`
	Justify   string `toml:"justify"`
	Align     string `toml:"align"`
	Gap       int    `toml:"gap"`
	Wrap      bool   `toml:"wrap"`
	Columns   int    `toml:"columns"`
	Clip      bool   `toml:"clip"`

	Padding scalar `toml:"padding"`
	Margin  scalar `toml:"margin"`
	Border  string `toml:"border"`

	Text         string    `toml:"text"`
	Spans        []spanDef `toml:"spans"`
	MaxTextWidth int       `toml:"max_text_width"`
	Value        float64   `toml:"value"`

	styleDef
	BorderFg string `toml:"border_fg"`
	BorderBg string `toml:"border_bg"`

	Children []*nodeDef `toml:"children"`
}

type styleDef struct {
	Fg    string   `toml:"fg"`
	Bg    string   `toml:"bg"`
	Attrs []string `toml:"attrs"`
}

type spanDef struct {
	Text string `toml:"text"`
	styleDef
}

// build converts the definition and its children. path names the node in error
// messages.
func (s *nodeDef) build(path string) (*layout.Node, error) {
	n, err := s.node()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, c := range s.Children {
		child, err := c.build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func (s *nodeDef) node() (*layout.Node, error) {
	kind, ok := layout.ParseKind(s.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", s.Kind)
	}
	if kind == layout.KindCustom {
		return nil, fmt.Errorf("kind %q needs a measure function and cannot be declared in a scene", s.Kind)
	}
	if s.Flex < 0 || math.IsNaN(s.Flex) || math.IsInf(s.Flex, 0) {
		return nil, fmt.Errorf("flex must be a finite number >= 0, got %v", s.Flex)
	}

	n := &layout.Node{Kind: kind}
	p := &n.Props
	p.ID = s.ID
	p.Flex = s.Flex
	p.Gap = s.Gap
	p.Wrap = s.Wrap
	p.Columns = s.Columns
	p.Clip = s.Clip
	p.Text = s.Text
	p.MaxTextWidth = s.MaxTextWidth
	p.Value = s.Value

	var err error
	sizes := []struct {
		dst *layout.Value
		src scalar
	}{
		{&p.Width, s.Width}, {&p.Height, s.Height},
		{&p.MinWidth, s.MinWidth}, {&p.MinHeight, s.MinHeight},
		{&p.MaxWidth, s.MaxWidth}, {&p.MaxHeight, s.MaxHeight},
	}
	for _, sz := range sizes {
		if *sz.dst, err = layout.ParseValue(string(sz.src)); err != nil {
			return nil, err
		}
	}

	if s.AlignSelf != "" {
		a, ok := layout.ParseAlign(s.AlignSelf)
		if !ok {
			return nil, fmt.Errorf("unknown align_self %q", s.AlignSelf)
		}
		p.AlignSelf = &a
	}
	if s.Direction != "" {
		if p.Direction, ok = layout.ParseAxis(s.Direction); !ok {
			return nil, fmt.Errorf("unknown direction %q", s.Direction)
		}
	}
	if s.Justify != "" {
		if p.Justify, ok = layout.ParseJustify(s.Justify); !ok {
			return nil, fmt.Errorf("unknown justify %q", s.Justify)
		}
	}
	if s.Align != "" {
		if p.Align, ok = layout.ParseAlign(s.Align); !ok {
			return nil, fmt.Errorf("unknown align %q", s.Align)
		}
	}
	if s.Border != "" {
		if p.Border, ok = style.ParseBorder(s.Border); !ok {
			return nil, fmt.Errorf("unknown border %q", s.Border)
		}
	}

	if s.Padding != "" {
		if p.Padding, err = layout.ParseSpacing(string(s.Padding)); err != nil {
			return nil, err
		}
	}
	if s.Margin != "" {
		if p.Margin, err = layout.ParseSpacing(string(s.Margin)); err != nil {
			return nil, err
		}
	}

	if p.Style, err = s.styleDef.style(); err != nil {
		return nil, err
	}
	border := styleDef{Fg: s.BorderFg, Bg: s.BorderBg}
	if p.BorderStyle, err = border.style(); err != nil {
		return nil, err
	}
	for i, sp := range s.Spans {
		st, err := sp.style()
		if err != nil {
			return nil, fmt.Errorf("spans[%d]: %w", i, err)
		}
		p.Spans = append(p.Spans, layout.Span{Text: sp.Text, Style: st})
	}
	return n, nil
}
