package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/style"
)

const dashboard = `
width = 40
height = 12
axis = "row"

[root]
kind = "column"
border = "rounded"
border_fg = "cyan"
padding = "0 sm"
gap = 1
bg = "#102030"

[[root.children]]
kind = "text"
id = "title"
text = "Dashboard"
fg = "yellow"
attrs = ["bold", "underline"]

[[root.children]]
kind = "row"
height = 3
justify = "space-between"
align = "center"

[[root.children.children]]
kind = "progress"
value = 0.25
width = "50%"
flex = 1

[[root.children.children]]
kind = "divider"

[[root.children.children]]
kind = "richtext"
align_self = "end"
spans = [
	{ text = "ok ", fg = "2" },
	{ text = "warn", fg = "#fa0", attrs = ["reverse"] },
]
`

func TestParse_Dashboard(t *testing.T) {
	s, err := Parse([]byte(dashboard))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Width != 40 || s.Height != 12 || s.Axis != layout.Row {
		t.Errorf("viewport = %dx%d %v, want 40x12 row", s.Width, s.Height, s.Axis)
	}

	root := s.Root
	if root.Kind != layout.KindColumn || root.Props.Border != style.BorderRounded || root.Props.Gap != 1 {
		t.Errorf("root = %v %+v", root.Kind, root.Props)
	}
	if root.Props.Padding != layout.EdgeSymmetric(0, 1) {
		t.Errorf("root padding = %+v, want 0/1", root.Props.Padding)
	}
	if root.Props.BorderStyle.Fg != style.ANSIColor(6) {
		t.Errorf("border fg = %v, want cyan", root.Props.BorderStyle.Fg)
	}
	if root.Props.Style.Bg != style.RGBColor(0x10, 0x20, 0x30) {
		t.Errorf("root bg = %v", root.Props.Style.Bg)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	title := root.Children[0]
	if title.Props.ID != "title" || title.Props.Text != "Dashboard" {
		t.Errorf("title = %+v", title.Props)
	}
	if !title.Props.Style.HasAttr(style.AttrBold) || !title.Props.Style.HasAttr(style.AttrUnderline) {
		t.Errorf("title attrs missing: %+v", title.Props.Style)
	}

	row := root.Children[1]
	if row.Props.Height != layout.Fixed(3) || row.Props.Justify != layout.JustifySpaceBetween || row.Props.Align != layout.AlignCenter {
		t.Errorf("row = %+v", row.Props)
	}
	if len(row.Children) != 3 {
		t.Fatalf("row has %d children, want 3", len(row.Children))
	}

	bar := row.Children[0]
	if bar.Kind != layout.KindProgress || bar.Props.Value != 0.25 || bar.Props.Width != layout.Percent(50) || bar.Props.Flex != 1 {
		t.Errorf("progress = %+v", bar.Props)
	}
	if row.Children[1].Kind != layout.KindDivider {
		t.Errorf("second child = %v, want divider", row.Children[1].Kind)
	}

	rich := row.Children[2]
	if rich.Props.AlignSelf == nil || *rich.Props.AlignSelf != layout.AlignEnd {
		t.Errorf("align_self = %v, want end", rich.Props.AlignSelf)
	}
	want := []layout.Span{
		{Text: "ok ", Style: style.Style{Fg: style.ANSIColor(2)}},
		{Text: "warn", Style: style.Style{Fg: style.RGBColor(0xff, 0xaa, 0)}.With(style.AttrReverse)},
	}
	if len(rich.Props.Spans) != len(want) {
		t.Fatalf("spans = %+v", rich.Props.Spans)
	}
	for i := range want {
		if rich.Props.Spans[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, rich.Props.Spans[i], want[i])
		}
	}

	if _, err := layout.Layout(s.Root, 0, 0, s.Width, s.Height, s.Axis, nil); err != nil {
		t.Errorf("Layout() of parsed scene error: %v", err)
	}
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("[root]\nkind = \"text\"\ntext = \"hi\"\npadding = 1\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight || s.Axis != layout.Column {
		t.Errorf("defaults = %dx%d %v", s.Width, s.Height, s.Axis)
	}
	if s.Root.Props.Padding != layout.EdgeAll(1) {
		t.Errorf("padding = %+v, want 1 on every side", s.Root.Props.Padding)
	}
	if !s.Root.Props.Width.IsAuto() {
		t.Errorf("width = %v, want auto", s.Root.Props.Width)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		src  string
		want string
	}{
		"no root":         {src: "width = 3\n", want: "no root"},
		"syntax":          {src: "[root\n", want: "decode scene"},
		"unknown key":     {src: "[root]\nkind = \"text\"\ncolour = \"red\"\n", want: `unknown key "root.colour"`},
		"unknown kind":    {src: "[root]\nkind = \"button\"\n", want: `root: unknown kind "button"`},
		"custom kind":     {src: "[root]\nkind = \"custom\"\n", want: "measure function"},
		"bad axis":        {src: "axis = \"diagonal\"\n[root]\nkind = \"row\"\n", want: "unknown axis"},
		"bad size":        {src: "[root]\nkind = \"row\"\nwidth = \"wide\"\n", want: "invalid size"},
		"bad size type":   {src: "[root]\nkind = \"row\"\nwidth = 1.5\n", want: "string or an integer"},
		"bad spacing":     {src: "[root]\nkind = \"row\"\npadding = \"huge\"\n", want: "unknown spacing token"},
		"bad border":      {src: "[root]\nkind = \"row\"\nborder = \"dotted\"\n", want: "unknown border"},
		"bad justify":     {src: "[root]\nkind = \"row\"\njustify = \"left\"\n", want: "unknown justify"},
		"bad color":       {src: "[root]\nkind = \"row\"\nfg = \"chartreuse\"\n", want: `fg: unknown color "chartreuse"`},
		"bad hex":         {src: "[root]\nkind = \"row\"\nbg = \"#12\"\n", want: "bg: color"},
		"bad attr":        {src: "[root]\nkind = \"row\"\nattrs = [\"loud\"]\n", want: `unknown attribute "loud"`},
		"infinite flex":   {src: "[root]\nkind = \"row\"\n[[root.children]]\nkind = \"spacer\"\nflex = inf\n", want: "root.children[0]: flex must be a finite number"},
		"nan flex":        {src: "[root]\nkind = \"row\"\nflex = nan\n", want: "root: flex must be a finite number"},
		"negative flex":   {src: "[root]\nkind = \"row\"\nflex = -2.0\n", want: "flex must be a finite number"},
		"palette too big": {src: "[root]\nkind = \"row\"\nfg = \"256\"\n", want: "unknown color"},
		"nested path": {
			src:  "[root]\nkind = \"row\"\n[[root.children]]\nkind = \"text\"\n[[root.children]]\nkind = \"box\"\ndirection = \"up\"\n",
			want: `root.children[1]: unknown direction "up"`,
		},
		"span style": {
			src:  "[root]\nkind = \"richtext\"\nspans = [{ text = \"a\", bg = \"nope\" }]\n",
			want: "spans[0]: bg",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatalf("Parse() succeeded, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(dashboard), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load() error: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("width = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrNoRoot) || !strings.Contains(err.Error(), bad) {
		t.Errorf("Load(bad) error = %v, want ErrNoRoot naming the file", err)
	}
}
