package drawlist

import (
	"iter"

	"github.com/grindlemire/tuicore/internal/style"
)

// Drawlist is a parsed and fully validated drawlist. It keeps a reference
// to the buffer passed to Parse, which must not change afterwards.
type Drawlist struct {
	buf []byte
	hdr Header
}

// region is one of the five byte ranges a header declares.
type region struct {
	name  string
	field int // header offset of the region's offset field
	off   uint64
	n     uint64
}

// Parse validates buf and returns a Drawlist over it. Every error is a
// *FormatError.
func Parse(buf []byte) (*Drawlist, error) {
	if len(buf) < HeaderSize {
		return nil, formatErr(KindTruncated, len(buf), "header needs %d bytes, have %d", HeaderSize, len(buf))
	}
	h := readHeader(buf)
	switch {
	case h.Magic != Magic:
		return nil, formatErr(KindBadMagic, hdrMagic, "got %#08x", h.Magic)
	case h.Version != Version:
		return nil, formatErr(KindBadVersion, hdrVersion, "got %d, want %d", h.Version, Version)
	case h.HeaderSize != HeaderSize:
		return nil, formatErr(KindSizeMismatch, hdrHeaderSize, "header size %d, want %d", h.HeaderSize, HeaderSize)
	case uint64(h.TotalSize) > uint64(len(buf)):
		return nil, formatErr(KindTruncated, len(buf), "declared %d bytes, have %d", h.TotalSize, len(buf))
	case uint64(h.TotalSize) != uint64(len(buf)):
		return nil, formatErr(KindSizeMismatch, hdrTotalSize, "declared %d bytes, have %d", h.TotalSize, len(buf))
	}

	d := &Drawlist{buf: buf, hdr: h}
	if err := d.checkRegions(); err != nil {
		return nil, err
	}
	if err := d.checkStrings(); err != nil {
		return nil, err
	}
	if err := d.checkBlobs(); err != nil {
		return nil, err
	}
	if err := d.checkCommands(); err != nil {
		return nil, err
	}
	return d, nil
}

// checkRegions requires the regions to be aligned, in order, and inside
// the buffer.
func (d *Drawlist) checkRegions() error {
	h := &d.hdr
	regions := [...]region{
		{"commands", hdrCmdOffset, uint64(h.CmdOffset), uint64(h.CmdBytes)},
		{"string spans", hdrStringSpans, uint64(h.StringSpanOffset), uint64(h.StringCount) * spanSize},
		{"string bytes", hdrStringBytes, uint64(h.StringBytesOffset), uint64(h.StringBytes)},
		{"blob spans", hdrBlobSpans, uint64(h.BlobSpanOffset), uint64(h.BlobCount) * spanSize},
		{"blob bytes", hdrBlobBytes, uint64(h.BlobBytesOffset), uint64(h.BlobBytes)},
	}

	prev := uint64(HeaderSize)
	for _, r := range regions {
		if r.off%4 != 0 || r.n%4 != 0 {
			return formatErr(KindMisaligned, r.field, "%s at %d, %d bytes", r.name, r.off, r.n)
		}
		if r.off < prev || r.off+r.n > uint64(h.TotalSize) {
			return formatErr(KindOutOfBounds, r.field, "%s [%d, %d) outside [%d, %d)", r.name, r.off, r.off+r.n, prev, h.TotalSize)
		}
		prev = r.off + r.n
	}
	return nil
}

func (d *Drawlist) u32(off uint64) uint32 {
	return le.Uint32(d.buf[off:])
}

func (d *Drawlist) stringSpan(i uint32) span {
	p := uint64(d.hdr.StringSpanOffset) + uint64(i)*spanSize
	return span{off: d.u32(p), len: d.u32(p + 4)}
}

func (d *Drawlist) blobSpan(i uint32) span {
	p := uint64(d.hdr.BlobSpanOffset) + uint64(i)*spanSize
	return span{off: d.u32(p), len: d.u32(p + 4)}
}

func (d *Drawlist) checkStrings() error {
	for i := range d.hdr.StringCount {
		sp := d.stringSpan(i)
		if uint64(sp.off)+uint64(sp.len) > uint64(d.hdr.StringBytes) {
			at := int(d.hdr.StringSpanOffset) + int(i)*spanSize
			return formatErr(KindOutOfBounds, at, "string %d [%d, +%d) beyond %d bytes", i, sp.off, sp.len, d.hdr.StringBytes)
		}
	}
	return nil
}

// checkRef validates a byte range of string index.
func (d *Drawlist) checkRef(at int, index, off, n uint32) error {
	if index >= d.hdr.StringCount {
		return formatErr(KindOutOfBounds, at, "string index %d of %d", index, d.hdr.StringCount)
	}
	if sp := d.stringSpan(index); uint64(off)+uint64(n) > uint64(sp.len) {
		return formatErr(KindOutOfBounds, at, "range [%d, +%d) beyond string %d of %d bytes", off, n, index, sp.len)
	}
	return nil
}

func (d *Drawlist) checkBlobs() error {
	for i := range d.hdr.BlobCount {
		sp := d.blobSpan(i)
		at := int(d.hdr.BlobSpanOffset) + int(i)*spanSize
		switch {
		case sp.off%4 != 0:
			return formatErr(KindMisaligned, at, "blob %d at %d", i, sp.off)
		case uint64(sp.off)+uint64(sp.len) > uint64(d.hdr.BlobBytes):
			return formatErr(KindOutOfBounds, at, "blob %d [%d, +%d) beyond %d bytes", i, sp.off, sp.len, d.hdr.BlobBytes)
		case sp.len < 4:
			return formatErr(KindSizeMismatch, at, "blob %d is %d bytes", i, sp.len)
		}

		base := uint64(d.hdr.BlobBytesOffset) + uint64(sp.off)
		count := d.u32(base)
		if want := 4 + uint64(count)*segmentSize; want != uint64(sp.len) {
			return formatErr(KindSizeMismatch, int(base), "blob %d holds %d segments in %d bytes", i, count, sp.len)
		}
		for k := range uint64(count) {
			seg := base + 4 + k*segmentSize
			if err := d.checkRef(int(seg), d.u32(seg+16), d.u32(seg+20), d.u32(seg+24)); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkCommands walks the command region. Each command must advance by
// its declared size and the walk must end exactly on the region end.
func (d *Drawlist) checkCommands() error {
	pos := uint64(d.hdr.CmdOffset)
	end := pos + uint64(d.hdr.CmdBytes)
	count := uint32(0)
	for pos < end {
		at := int(pos)
		if end-pos < cmdHeaderSize {
			return formatErr(KindTruncated, at, "%d bytes left for a command header", end-pos)
		}
		op := Opcode(le.Uint16(d.buf[pos:]))
		size := uint64(d.u32(pos + 4))
		switch {
		case size < cmdHeaderSize || size%4 != 0:
			return formatErr(KindSizeMismatch, at, "command size %d", size)
		case size > end-pos:
			return formatErr(KindSizeMismatch, at, "command size %d overruns region by %d", size, size-(end-pos))
		case !op.valid():
			return formatErr(KindUnknownOpcode, at, "opcode %d", uint16(op))
		case size != uint64(opSizes[op]):
			return formatErr(KindSizeMismatch, at, "%s is %d bytes, want %d", op, size, opSizes[op])
		}

		switch op {
		case OpDrawText:
			if err := d.checkRef(at+16, d.u32(pos+16), d.u32(pos+20), d.u32(pos+24)); err != nil {
				return err
			}
		case OpDrawTextRun:
			if blob := d.u32(pos + 16); blob >= d.hdr.BlobCount {
				return formatErr(KindOutOfBounds, at+16, "blob index %d of %d", blob, d.hdr.BlobCount)
			}
		}
		pos += size
		count++
	}
	if count != d.hdr.CmdCount {
		return formatErr(KindSizeMismatch, hdrCmdCount, "header declares %d commands, region holds %d", d.hdr.CmdCount, count)
	}
	return nil
}

// Header returns the decoded preamble.
func (d *Drawlist) Header() Header {
	return d.hdr
}

// Len returns the number of commands.
func (d *Drawlist) Len() int {
	return int(d.hdr.CmdCount)
}

// Bytes returns the underlying buffer.
func (d *Drawlist) Bytes() []byte {
	return d.buf
}

// String returns string-table entry i.
func (d *Drawlist) String(i int) string {
	sp := d.stringSpan(uint32(i))
	return d.slice(uint32(i), 0, sp.len)
}

func (d *Drawlist) slice(index, off, n uint32) string {
	sp := d.stringSpan(index)
	start := uint64(d.hdr.StringBytesOffset) + uint64(sp.off) + uint64(off)
	return string(d.buf[start : start+uint64(n)])
}

func (d *Drawlist) int32At(off uint64) int {
	return int(int32(d.u32(off)))
}

func (d *Drawlist) styleAt(off uint64) style.Style {
	return style.Unpack(d.u32(off), d.u32(off+4), d.u32(off+8))
}

func (d *Drawlist) run(index uint32) []Segment {
	base := uint64(d.hdr.BlobBytesOffset) + uint64(d.blobSpan(index).off)
	count := d.u32(base)
	segs := make([]Segment, count)
	for k := range segs {
		seg := base + 4 + uint64(k)*segmentSize
		segs[k] = Segment{
			Style: d.styleAt(seg),
			Text:  d.slice(d.u32(seg+16), d.u32(seg+20), d.u32(seg+24)),
		}
	}
	return segs
}

// Commands yields every command with its index, in order.
func (d *Drawlist) Commands() iter.Seq2[int, Command] {
	return func(yield func(int, Command) bool) {
		pos := uint64(d.hdr.CmdOffset)
		for i := range d.Len() {
			op := Opcode(le.Uint16(d.buf[pos:]))
			c := Command{Op: op}
			switch op {
			case OpFillRect, OpPushClip:
				c.X, c.Y = d.int32At(pos+8), d.int32At(pos+12)
				c.Width, c.Height = d.int32At(pos+16), d.int32At(pos+20)
				if op == OpFillRect {
					c.Style = d.styleAt(pos + 24)
				}
			case OpDrawText:
				c.X, c.Y = d.int32At(pos+8), d.int32At(pos+12)
				c.Text = d.slice(d.u32(pos+16), d.u32(pos+20), d.u32(pos+24))
				c.Style = d.styleAt(pos + 28)
			case OpDrawTextRun:
				c.X, c.Y = d.int32At(pos+8), d.int32At(pos+12)
				c.Run = d.run(d.u32(pos + 16))
			}
			if !yield(i, c) {
				return
			}
			pos += uint64(d.u32(pos + 4))
		}
	}
}

// Decode parses buf and returns its commands.
func Decode(buf []byte) ([]Command, error) {
	d, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	cmds := make([]Command, 0, d.Len())
	for _, c := range d.Commands() {
		cmds = append(cmds, c)
	}
	return cmds, nil
}
