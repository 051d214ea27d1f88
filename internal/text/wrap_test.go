package text

import (
	"strings"
	"testing"
)

func lineStrings(s string, lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = s[l.Start:l.End]
	}
	return out
}

func TestWrap(t *testing.T) {
	type tc struct {
		input string
		width int
		want  []string
	}

	tests := map[string]tc{
		"fits on one line": {
			input: "hello",
			width: 10,
			want:  []string{"hello"},
		},
		"hello world at 6": {
			input: "hello world",
			width: 6,
			want:  []string{"hello ", "world"},
		},
		"unbreakable token hard breaks": {
			input: "abcdefghij",
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		"cjk hard breaks on cluster boundaries": {
			input: "日本語日本語",
			width: 4,
			want:  []string{"日本", "語日", "本語"},
		},
		"explicit newlines kept": {
			input: "a\nb\n\nc",
			width: 10,
			want:  []string{"a", "b", "", "c"},
		},
		"trailing newline adds empty line": {
			input: "a\n",
			width: 10,
			want:  []string{"a", ""},
		},
		"crlf dropped": {
			input: "ab\r\ncd",
			width: 10,
			want:  []string{"ab", "cd"},
		},
		"space runs are literal": {
			input: "a   b",
			width: 10,
			want:  []string{"a   b"},
		},
		"space run split at edge": {
			input: "ab   cd",
			width: 4,
			want:  []string{"ab  ", "cd"},
		},
		"break consumes the overflowing space": {
			input: "hello world",
			width: 5,
			want:  []string{"hello", "world"},
		},
		"break consumes the whole overflowing run": {
			input: "hello   world",
			width: 5,
			want:  []string{"hello", "world"},
		},
		"trailing spaces past the edge": {
			input: "abcd   ",
			width: 4,
			want:  []string{"abcd"},
		},
		"leading spaces wider than the line": {
			input: "      x",
			width: 4,
			want:  []string{"    ", "x"},
		},
		"long word after short word": {
			input: "a bcdefgh",
			width: 4,
			want:  []string{"a ", "bcde", "fgh"},
		},
		"wide glyph wider than line": {
			input: "日",
			width: 1,
			want:  []string{"日"},
		},
		"zero width treated as one": {
			input: "abc",
			width: 0,
			want:  []string{"a", "b", "c"},
		},
		"empty string": {
			input: "",
			width: 5,
			want:  []string{""},
		},
		"combining marks stay attached": {
			input: "ééé",
			width: 2,
			want:  []string{"éé", "é"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := lineStrings(tt.input, Wrap(tt.input, tt.width))
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrap_LineCounts(t *testing.T) {
	type tc struct {
		input     string
		width     int
		wantLines int
	}

	tests := map[string]tc{
		"hello world at 6":     {input: "hello world", width: 6, wantLines: 2},
		"hello world at 5":     {input: "hello world", width: 5, wantLines: 2},
		"10 char token at 4":   {input: "0123456789", width: 4, wantLines: 3},
		"6 cjk glyphs at 4":    {input: "漢字漢字漢字", width: 4, wantLines: 3},
		"single line at exact": {input: "abcd", width: 4, wantLines: 1},
		"emoji clusters at 3":  {input: "😀😀😀", width: 3, wantLines: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n, _ := LineCount(tt.input, tt.width)
			if n != tt.wantLines {
				t.Errorf("LineCount(%q, %d) = %d, want %d", tt.input, tt.width, n, tt.wantLines)
			}
		})
	}
}

func TestWrap_WidthsNeverExceedLimit(t *testing.T) {
	input := strings.Repeat("lorem ipsum 日本 dolor   sit amet\u0301 ", 20)
	for width := 2; width < 40; width++ {
		for _, l := range Wrap(input, width) {
			if l.Width > width {
				t.Fatalf("width %d: line %q has width %d", width, input[l.Start:l.End], l.Width)
			}
			if got := Width(input[l.Start:l.End]); got != l.Width {
				t.Fatalf("width %d: line %q reports %d, measures %d", width, input[l.Start:l.End], l.Width, got)
			}
		}
	}
}

func TestWrap_CoversInput(t *testing.T) {
	input := "one two  three\nfour 日本語日本語 five"
	lines := Wrap(input, 5)
	var b strings.Builder
	prev := 0
	for _, l := range lines {
		if l.Start < prev {
			t.Fatalf("line starts at %d before previous end %d", l.Start, prev)
		}
		// Only newlines and spaces consumed by a break may sit between
		// consecutive lines.
		gap := input[prev:l.Start]
		if strings.Trim(gap, "\n ") != "" {
			t.Fatalf("unexpected bytes %q between lines", gap)
		}
		b.WriteString(input[l.Start:l.End])
		prev = l.End
	}
	strip := strings.NewReplacer("\n", "", " ", "")
	if got, want := strip.Replace(b.String()), strip.Replace(input); got != want {
		t.Errorf("lines join to %q, want %q", got, want)
	}
}
