package drawlist

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/grindlemire/tuicore/internal/style"
)

var testStyle = style.Style{}.Foreground(style.RGBColor(0xc0, 0xff, 0xee)).Background(style.ANSIColor(4)).With(style.AttrBold)

// sampleBuilder records one of each command. The commands land at fixed
// offsets: clear 64, draw-text 72, fill-rect 120, push-clip 160,
// draw-text-run 184, pop-clip 208.
func sampleBuilder() *Builder {
	b := NewBuilder(DefaultLimits())
	b.Clear()
	b.DrawText(1, 2, "hello", testStyle)
	b.FillRect(0, 0, 10, 3, testStyle)
	b.PushClip(-1, -2, 5, 5)
	b.DrawTextRun(3, 4, []Segment{{Text: "12:00", Style: testStyle}, {Text: " INFO "}, {Text: "héllo"}})
	b.PopClip()
	return b
}

func sample(t *testing.T) []byte {
	t.Helper()
	buf, err := sampleBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return buf
}

func TestBuilder_HeaderAndRegions(t *testing.T) {
	buf := sample(t)
	h := readHeader(buf)

	if h.Magic != Magic || h.Version != Version || h.HeaderSize != HeaderSize {
		t.Fatalf("bad preamble %+v", h)
	}
	if int(h.TotalSize) != len(buf) {
		t.Errorf("TotalSize = %d, len = %d", h.TotalSize, len(buf))
	}
	if h.CmdCount != 6 || h.CmdBytes != 8+48+40+24+24+8 {
		t.Errorf("commands = %d in %d bytes", h.CmdCount, h.CmdBytes)
	}
	if h.StringCount != 4 {
		t.Errorf("StringCount = %d, want 4 (hello, 12:00, INFO, héllo)", h.StringCount)
	}
	if h.BlobCount != 1 || h.BlobBytes != 4+3*segmentSize {
		t.Errorf("blobs = %d in %d bytes", h.BlobCount, h.BlobBytes)
	}
	for _, off := range []uint32{h.CmdOffset, h.StringSpanOffset, h.StringBytesOffset, h.BlobSpanOffset, h.BlobBytesOffset, h.StringBytes} {
		if off%4 != 0 {
			t.Errorf("region value %d not 4-byte aligned", off)
		}
	}
	if h.Reserved != 0 {
		t.Errorf("Reserved = %d", h.Reserved)
	}
}

func TestBuilder_CommandSizesWalkToRegionEnd(t *testing.T) {
	buf := sample(t)
	h := readHeader(buf)

	pos, end := int(h.CmdOffset), int(h.CmdOffset+h.CmdBytes)
	var ops []Opcode
	for pos < end {
		op := Opcode(le.Uint16(buf[pos:]))
		size := int(le.Uint32(buf[pos+4:]))
		if size < cmdHeaderSize {
			t.Fatalf("command at %d has size %d", pos, size)
		}
		if size != op.Size() {
			t.Errorf("%s at %d has size %d, want %d", op, pos, size, op.Size())
		}
		ops = append(ops, op)
		pos += size
	}
	if pos != end {
		t.Fatalf("walk ended at %d, region ends at %d", pos, end)
	}

	want := []Opcode{OpClear, OpDrawText, OpFillRect, OpPushClip, OpDrawTextRun, OpPopClip}
	if fmt.Sprint(ops) != fmt.Sprint(want) {
		t.Errorf("opcodes = %v, want %v", ops, want)
	}
}

func TestBuilder_RoundTrip(t *testing.T) {
	cmds, err := Decode(sample(t))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(cmds) != 6 {
		t.Fatalf("decoded %d commands, want 6", len(cmds))
	}

	if c := cmds[1]; c.X != 1 || c.Y != 2 || c.Text != "hello" || c.Style != testStyle {
		t.Errorf("draw-text = %+v", c)
	}
	if c := cmds[2]; c.Width != 10 || c.Height != 3 || c.Style != testStyle {
		t.Errorf("fill-rect = %+v", c)
	}
	if c := cmds[3]; c.X != -1 || c.Y != -2 || c.Width != 5 || c.Height != 5 {
		t.Errorf("push-clip = %+v", c)
	}
	run := cmds[4].Run
	if len(run) != 3 || run[0].Text != "12:00" || run[0].Style != testStyle || run[1].Text != " INFO " || run[2].Text != "héllo" {
		t.Errorf("draw-text-run = %+v", run)
	}
}

func TestBuilder_Interning(t *testing.T) {
	b := NewBuilder(Limits{})
	b.DrawText(0, 0, "status", style.Style{})
	b.DrawText(0, 1, "status", testStyle)
	b.DrawTextRun(0, 2, []Segment{{Text: "status"}, {Text: "日本"}})
	b.DrawText(0, 3, "日本", style.Style{})
	if got := b.Strings(); got != 2 {
		t.Errorf("Strings() = %d, want 2", got)
	}

	line := "first line second line"
	b.DrawTextRange(0, 4, line, 0, 10, style.Style{})
	b.DrawTextRange(0, 5, line, 11, len(line), style.Style{})
	if got := b.Strings(); got != 3 {
		t.Errorf("Strings() after ranges = %d, want 3", got)
	}

	cmds, err := func() ([]Command, error) {
		buf, err := b.Build()
		if err != nil {
			return nil, err
		}
		return Decode(buf)
	}()
	if err != nil {
		t.Fatalf("round trip error: %v", err)
	}
	if cmds[4].Text != "first line" || cmds[5].Text != "second line" {
		t.Errorf("ranges decoded as %q, %q", cmds[4].Text, cmds[5].Text)
	}
}

func TestBuilder_InvalidUTF8(t *testing.T) {
	b := NewBuilder(Limits{})
	bad := "ok\xff\xfeend"
	b.DrawText(0, 0, bad, style.Style{})
	b.DrawTextRange(0, 1, bad, 0, 2, style.Style{})
	b.DrawTextRange(0, 2, bad, 2, len(bad), style.Style{})
	buf, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	cmds, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	want := []string{"ok�end", "ok", "�end"}
	for i, w := range want {
		if cmds[i].Text != w {
			t.Errorf("command %d text = %q, want %q", i, cmds[i].Text, w)
		}
	}

	b.Reset()
	b.DrawTextRange(0, 0, bad, 0, 2, style.Style{})
	b.DrawTextRange(0, 1, bad, 0, 2, style.Style{})
	if got := b.Strings(); got != 1 {
		t.Errorf("Strings() for a repaired range = %d, want 1", got)
	}
}

func TestBuilder_Budgets(t *testing.T) {
	type tc struct {
		limits Limits
		build  func(b *Builder)
		reason Reason
		want   error
	}

	fill := func(n int) func(b *Builder) {
		return func(b *Builder) {
			for i := range n {
				b.DrawText(0, i, fmt.Sprintf("line %d", i), style.Style{})
			}
		}
	}

	tests := map[string]tc{
		"drawlist bytes": {
			limits: Limits{MaxDrawlistBytes: 256},
			build:  fill(10),
			reason: ReasonDrawlistBytes,
			want:   ErrDrawlistBudget,
		},
		"blob bytes": {
			limits: Limits{MaxBlobBytes: 64},
			build: func(b *Builder) {
				b.DrawTextRun(0, 0, make([]Segment, 3))
			},
			reason: ReasonBlobBytes,
			want:   ErrBlobBudget,
		},
		"commands": {
			limits: Limits{MaxCommands: 3},
			build:  fill(4),
			reason: ReasonCommands,
			want:   ErrCommandBudget,
		},
		"strings": {
			limits: Limits{MaxStrings: 2},
			build:  fill(3),
			reason: ReasonStrings,
			want:   ErrStringBudget,
		},
		"blob count": {
			limits: Limits{MaxBlobs: 1},
			build: func(b *Builder) {
				b.DrawTextRun(0, 0, nil)
				b.DrawTextRun(0, 1, nil)
			},
			reason: ReasonBlobs,
			want:   ErrBlobCount,
		},
		"segments": {
			limits: Limits{MaxTextRunSegments: 2},
			build: func(b *Builder) {
				b.DrawTextRun(0, 0, make([]Segment, 3))
			},
			reason: ReasonSegments,
			want:   ErrSegmentBudget,
		},
		"clip depth": {
			limits: Limits{MaxClipDepth: 2},
			build: func(b *Builder) {
				for range 3 {
					b.PushClip(0, 0, 1, 1)
				}
			},
			reason: ReasonClipDepth,
			want:   ErrClipDepth,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuilder(tt.limits)
			tt.build(b)
			buf, err := b.Build()
			if buf != nil {
				t.Error("failed build must not return a buffer")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Build() error = %v, want %v", err, tt.want)
			}
			var be *BudgetError
			if !errors.As(err, &be) || be.Reason != tt.reason || be.Need <= be.Limit {
				t.Errorf("error = %#v", err)
			}

			// Later operations stay ignored until Reset.
			n := b.Len()
			b.Clear()
			if b.Len() != n {
				t.Error("failed builder accepted a command")
			}
			b.Reset()
			b.Clear()
			if _, err := b.Build(); err != nil {
				t.Errorf("Build() after Reset error: %v", err)
			}
		})
	}
}

func TestBuilder_UnbalancedPopClipIsDropped(t *testing.T) {
	b := NewBuilder(Limits{})
	b.PopClip()
	b.PushClip(0, 0, 2, 2)
	b.PopClip()
	b.PopClip()
	if got := b.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestBuilder_Deterministic(t *testing.T) {
	first := sample(t)
	if second := sample(t); !bytes.Equal(first, second) {
		t.Error("same commands produced different bytes")
	}

	b := NewBuilder(Limits{})
	b.DrawText(0, 0, "keep", style.Style{})
	kept, _ := b.Build()
	snapshot := bytes.Clone(kept)
	b.Reset()
	b.DrawText(5, 5, "overwrite", testStyle)
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !bytes.Equal(kept, snapshot) {
		t.Error("a built buffer changed after the builder was reused")
	}
}

func TestBuilder_FiftyThousandSegments(t *testing.T) {
	const n = 50_000
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{Text: fmt.Sprintf("seg-%d|", i%1000), Style: style.Style{Attrs: style.Attr(i % 4)}}
	}

	b := NewBuilder(DefaultLimits())
	b.DrawTextRun(0, 0, segs)
	buf, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(buf) > DefaultLimits().MaxDrawlistBytes {
		t.Fatalf("buffer is %d bytes", len(buf))
	}

	h := readHeader(buf)
	blob := h.BlobBytesOffset
	if got := le.Uint32(buf[blob:]); got != n {
		t.Fatalf("blob segment count = %d, want %d", got, n)
	}
	for k := range uint32(n) {
		seg := blob + 4 + k*segmentSize
		index, off, size := le.Uint32(buf[seg+16:]), le.Uint32(buf[seg+20:]), le.Uint32(buf[seg+24:])
		if index >= h.StringCount {
			t.Fatalf("segment %d references string %d of %d", k, index, h.StringCount)
		}
		sp := h.StringSpanOffset + index*spanSize
		spOff, spLen := le.Uint32(buf[sp:]), le.Uint32(buf[sp+4:])
		if off+size > spLen || spOff+spLen > h.StringBytes {
			t.Fatalf("segment %d range escapes the string arena", k)
		}
	}

	cmds, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	run := cmds[0].Run
	if len(run) != n || run[n-1].Text != segs[n-1].Text || run[n-1].Style != segs[n-1].Style {
		t.Errorf("decoded run mismatch: %d segments", len(run))
	}
}

func BenchmarkBuilder_Frame(b *testing.B) {
	bl := NewBuilder(DefaultLimits())
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = fmt.Sprintf("%04d INFO request served in %dms", i, i*3)
	}
	b.ReportAllocs()
	for b.Loop() {
		bl.Reset()
		bl.Clear()
		for y, s := range lines {
			bl.DrawText(0, y, s, testStyle)
		}
		if _, err := bl.Build(); err != nil {
			b.Fatal(err)
		}
	}
}
