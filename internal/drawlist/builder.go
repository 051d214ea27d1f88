package drawlist

import (
	"encoding/binary"

	"github.com/grindlemire/tuicore/internal/style"
	"github.com/grindlemire/tuicore/internal/text"
)

var le = binary.LittleEndian

// interned records where a string landed in the string table. exact is
// false when the string had to be re-encoded, so byte ranges into the
// original no longer line up with the stored bytes.
type interned struct {
	index uint32
	exact bool
}

// Builder accumulates the commands of one frame and serializes them with
// Build. The first operation that would exceed a limit puts the builder in
// a failed state: later operations are ignored and Build returns the
// *BudgetError. Reset clears the failure and keeps allocated capacity for
// the next frame. A Builder is not safe for concurrent use.
type Builder struct {
	limits Limits

	cmd      []byte
	cmdCount int

	spans    []span
	strBytes []byte
	strings  map[string]interned

	blobSpans []span
	blobBytes []byte

	clipDepth int
	err       error
}

// NewBuilder returns an empty builder enforcing l.
func NewBuilder(l Limits) *Builder {
	return &Builder{limits: l, strings: make(map[string]interned)}
}

// Reset discards everything built so far.
func (b *Builder) Reset() {
	b.cmd = b.cmd[:0]
	b.cmdCount = 0
	b.spans = b.spans[:0]
	b.strBytes = b.strBytes[:0]
	clear(b.strings)
	b.blobSpans = b.blobSpans[:0]
	b.blobBytes = b.blobBytes[:0]
	b.clipDepth = 0
	b.err = nil
}

// Err returns the budget failure, if any.
func (b *Builder) Err() error {
	return b.err
}

// Len returns the number of commands recorded.
func (b *Builder) Len() int {
	return b.cmdCount
}

// Strings returns the number of distinct interned strings.
func (b *Builder) Strings() int {
	return len(b.spans)
}

// Size returns the size Build would produce for the commands so far.
func (b *Builder) Size() int {
	return HeaderSize + len(b.cmd) +
		spanSize*len(b.spans) + align4(len(b.strBytes)) +
		spanSize*len(b.blobSpans) + align4(len(b.blobBytes))
}

func (b *Builder) fail(r Reason, limit, need int) {
	if b.err == nil {
		b.err = &BudgetError{Reason: r, Limit: limit, Need: need}
	}
}

// check records the first limit the builder now exceeds.
func (b *Builder) check() {
	l := &b.limits
	switch {
	case exceeds(b.cmdCount, l.MaxCommands):
		b.fail(ReasonCommands, l.MaxCommands, b.cmdCount)
	case exceeds(len(b.spans), l.MaxStrings):
		b.fail(ReasonStrings, l.MaxStrings, len(b.spans))
	case exceeds(len(b.blobSpans), l.MaxBlobs):
		b.fail(ReasonBlobs, l.MaxBlobs, len(b.blobSpans))
	case exceeds(align4(len(b.blobBytes)), l.MaxBlobBytes):
		b.fail(ReasonBlobBytes, l.MaxBlobBytes, align4(len(b.blobBytes)))
	case exceeds(b.Size(), l.MaxDrawlistBytes):
		b.fail(ReasonDrawlistBytes, l.MaxDrawlistBytes, b.Size())
	}
}

// intern returns the string-table entry for s, adding it on first use.
// ASCII is stored as-is; anything else is stored as valid UTF-8.
func (b *Builder) intern(s string) interned {
	if in, ok := b.strings[s]; ok {
		return in
	}
	if b.strings == nil {
		b.strings = make(map[string]interned)
	}
	enc := text.Valid(s)
	in := interned{index: uint32(len(b.spans)), exact: enc == s}
	b.spans = append(b.spans, span{off: uint32(len(b.strBytes)), len: uint32(len(enc))})
	b.strBytes = append(b.strBytes, enc...)
	b.strings[s] = in
	return in
}

// ref returns the reference to the byte range [start, end) of s. Valid
// strings are interned whole and shared by all their ranges; a string that
// needs repair is interned only as the repaired range.
func (b *Builder) ref(s string, start, end int) (index, off, n uint32) {
	start = min(max(start, 0), len(s))
	end = min(max(end, start), len(s))
	if in, ok := b.strings[s]; ok && in.exact {
		return in.index, uint32(start), uint32(end - start)
	}
	if text.Valid(s) == s {
		in := b.intern(s)
		return in.index, uint32(start), uint32(end - start)
	}
	in := b.intern(s[start:end])
	return in.index, 0, b.spans[in.index].len
}

func (b *Builder) header(op Opcode) []byte {
	c := le.AppendUint16(b.cmd, uint16(op))
	c = le.AppendUint16(c, 0)
	return le.AppendUint32(c, uint32(opSizes[op]))
}

func (b *Builder) finish(c []byte) {
	b.cmd = c
	b.cmdCount++
	b.check()
}

func appendInts(p []byte, vs ...int) []byte {
	for _, v := range vs {
		p = le.AppendUint32(p, uint32(int32(v)))
	}
	return p
}

func appendStyle(p []byte, st style.Style) []byte {
	fg, bg, attrs := st.Pack()
	p = le.AppendUint32(p, fg)
	p = le.AppendUint32(p, bg)
	p = le.AppendUint32(p, attrs)
	return le.AppendUint32(p, 0)
}

// Clear resets the whole target to the default style.
func (b *Builder) Clear() {
	if b.err != nil {
		return
	}
	b.finish(b.header(OpClear))
}

// FillRect paints a rectangle with spaces in st.
func (b *Builder) FillRect(x, y, w, h int, st style.Style) {
	if b.err != nil {
		return
	}
	c := appendInts(b.header(OpFillRect), x, y, w, h)
	b.finish(appendStyle(c, st))
}

// DrawText draws s starting at (x, y).
func (b *Builder) DrawText(x, y int, s string, st style.Style) {
	b.DrawTextRange(x, y, s, 0, len(s), st)
}

// DrawTextRange draws the bytes s[start:end]. Every range of the same s
// shares one string-table entry.
func (b *Builder) DrawTextRange(x, y int, s string, start, end int, st style.Style) {
	if b.err != nil {
		return
	}
	index, off, n := b.ref(s, start, end)
	c := appendInts(b.header(OpDrawText), x, y)
	c = le.AppendUint32(c, index)
	c = le.AppendUint32(c, off)
	c = le.AppendUint32(c, n)
	c = appendStyle(c, st)
	b.finish(le.AppendUint32(c, 0))
}

// PushClip intersects the clip rectangle with the given one until the
// matching PopClip.
func (b *Builder) PushClip(x, y, w, h int) {
	if b.err != nil {
		return
	}
	if exceeds(b.clipDepth+1, b.limits.MaxClipDepth) {
		b.fail(ReasonClipDepth, b.limits.MaxClipDepth, b.clipDepth+1)
		return
	}
	b.clipDepth++
	b.finish(appendInts(b.header(OpPushClip), x, y, w, h))
}

// PopClip restores the clip rectangle in effect before the last PushClip.
// A PopClip with nothing pushed is dropped.
func (b *Builder) PopClip() {
	if b.err != nil || b.clipDepth == 0 {
		return
	}
	b.clipDepth--
	b.finish(b.header(OpPopClip))
}

// DrawTextRun draws segs one after another starting at (x, y), each in its
// own style.
func (b *Builder) DrawTextRun(x, y int, segs []Segment) {
	if b.err != nil {
		return
	}
	if exceeds(len(segs), b.limits.MaxTextRunSegments) {
		b.fail(ReasonSegments, b.limits.MaxTextRunSegments, len(segs))
		return
	}
	blob := b.appendBlob(segs)
	c := appendInts(b.header(OpDrawTextRun), x, y)
	c = le.AppendUint32(c, blob)
	b.finish(le.AppendUint32(c, 0))
}

// appendBlob stores a text-run blob, 4-byte aligned, and returns its index.
func (b *Builder) appendBlob(segs []Segment) uint32 {
	for len(b.blobBytes)%4 != 0 {
		b.blobBytes = append(b.blobBytes, 0)
	}
	start := len(b.blobBytes)
	p := le.AppendUint32(b.blobBytes, uint32(len(segs)))
	for _, s := range segs {
		index, off, n := b.ref(s.Text, 0, len(s.Text))
		p = appendStyle(p, s.Style)
		p = le.AppendUint32(p, index)
		p = le.AppendUint32(p, off)
		p = le.AppendUint32(p, n)
	}
	b.blobBytes = p
	b.blobSpans = append(b.blobSpans, span{off: uint32(start), len: uint32(len(p) - start)})
	return uint32(len(b.blobSpans) - 1)
}

// Add records c. Unknown opcodes are ignored.
func (b *Builder) Add(c Command) {
	switch c.Op {
	case OpClear:
		b.Clear()
	case OpFillRect:
		b.FillRect(c.X, c.Y, c.Width, c.Height, c.Style)
	case OpDrawText:
		b.DrawText(c.X, c.Y, c.Text, c.Style)
	case OpPushClip:
		b.PushClip(c.X, c.Y, c.Width, c.Height)
	case OpPopClip:
		b.PopClip()
	case OpDrawTextRun:
		b.DrawTextRun(c.X, c.Y, c.Run)
	}
}

// Build serializes the frame. The returned buffer is newly allocated and
// never touched by the builder again.
func (b *Builder) Build() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}

	cmdOff := HeaderSize
	strSpanOff := cmdOff + len(b.cmd)
	strOff := strSpanOff + spanSize*len(b.spans)
	strLen := align4(len(b.strBytes))
	blobSpanOff := strOff + strLen
	blobOff := blobSpanOff + spanSize*len(b.blobSpans)
	blobLen := align4(len(b.blobBytes))
	total := blobOff + blobLen

	out := make([]byte, total)
	h := Header{
		Magic:             Magic,
		Version:           Version,
		HeaderSize:        HeaderSize,
		TotalSize:         uint32(total),
		CmdOffset:         uint32(cmdOff),
		CmdBytes:          uint32(len(b.cmd)),
		CmdCount:          uint32(b.cmdCount),
		StringSpanOffset:  uint32(strSpanOff),
		StringCount:       uint32(len(b.spans)),
		StringBytesOffset: uint32(strOff),
		StringBytes:       uint32(strLen),
		BlobSpanOffset:    uint32(blobSpanOff),
		BlobCount:         uint32(len(b.blobSpans)),
		BlobBytesOffset:   uint32(blobOff),
		BlobBytes:         uint32(blobLen),
	}
	h.put(out)

	copy(out[cmdOff:], b.cmd)
	putSpans(out[strSpanOff:], b.spans)
	copy(out[strOff:], b.strBytes)
	putSpans(out[blobSpanOff:], b.blobSpans)
	copy(out[blobOff:], b.blobBytes)
	return out, nil
}

func putSpans(p []byte, spans []span) {
	for i, sp := range spans {
		le.PutUint32(p[i*spanSize:], sp.off)
		le.PutUint32(p[i*spanSize+4:], sp.len)
	}
}
