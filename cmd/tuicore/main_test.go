package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/scene"
	"github.com/grindlemire/tuicore/internal/style"
)

const samplePath = "../../scenes/dashboard.toml"

func TestRenderScene_Dashboard(t *testing.T) {
	s, err := scene.Load(samplePath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	g, err := renderScene(s)
	if err != nil {
		t.Fatalf("renderScene() error: %v", err)
	}
	out := g.StringTrimmed()
	lines := strings.Split(out, "\n")
	if len(lines) != s.Height {
		t.Fatalf("got %d lines, want %d", len(lines), s.Height)
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasPrefix(lines[len(lines)-1], "╰") {
		t.Errorf("frame not enclosed in a rounded border:\n%s", out)
	}
	for _, want := range []string{"tuicore dashboard", "billing  slow", "rollout", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDescribe(t *testing.T) {
	red := style.Style{Fg: style.ANSIColor(1), Bg: style.RGBColor(1, 2, 3)}
	tests := map[string]struct {
		cmd  drawlist.Command
		want string
	}{
		"clear": {
			cmd:  drawlist.Command{Op: drawlist.OpClear},
			want: drawlist.OpClear.String(),
		},
		"text": {
			cmd:  drawlist.Command{Op: drawlist.OpDrawText, X: 1, Y: 2, Text: "hi", Style: red},
			want: drawlist.OpDrawText.String() + ` (1,2) "hi" fg=1 bg=#010203`,
		},
		"clip": {
			cmd:  drawlist.Command{Op: drawlist.OpPushClip, X: -1, Y: 0, Width: 3, Height: 4},
			want: drawlist.OpPushClip.String() + " (-1,0) 3x4",
		},
		"run": {
			cmd: drawlist.Command{Op: drawlist.OpDrawTextRun, Run: []drawlist.Segment{
				{Text: "a"}, {Text: "b", Style: style.Style{}.With(style.AttrBold)},
			}},
			want: drawlist.OpDrawTextRun.String() + ` (0,0) ["a"] ["b" attrs=0x1]`,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := describe(tt.cmd); got != tt.want {
				t.Errorf("describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteStrings(t *testing.T) {
	b := drawlist.NewBuilder(drawlist.Limits{})
	b.DrawText(0, 0, "api", style.Style{})
	b.DrawText(0, 1, "api", style.Style{})
	b.DrawText(0, 2, "日本", style.Style{})
	buf, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	d, err := drawlist.Parse(buf)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(d.Bytes()) != len(buf) {
		t.Errorf("Bytes() = %d bytes, want %d", len(d.Bytes()), len(buf))
	}

	var sb strings.Builder
	writeStrings(&sb, d)
	want := "strings: 2\n   0  \"api\"\n   1  \"日本\"\n"
	if sb.String() != want {
		t.Errorf("writeStrings() =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestWriteGeometry(t *testing.T) {
	s, err := scene.Load(samplePath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	eng, err := tuicore.New(tuicore.WithAxis(s.Axis))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	f, err := eng.Frame(s.Root, s.Width, s.Height)
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}

	var sb strings.Builder
	writeGeometry(&sb, s.Root, f.Geometry)
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if want := fmt.Sprintf("geometry: %d nodes", f.Geometry.Count()); lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}
	if got := len(lines) - 1; got != f.Geometry.Count() {
		t.Errorf("printed %d nodes, want %d", got, f.Geometry.Count())
	}
}
