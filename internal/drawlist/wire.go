package drawlist

import "encoding/binary"

const (
	// Magic is "ZRDL" read as a little-endian u32.
	Magic uint32 = 0x4C44525A
	// Version is the only wire version this package reads and writes.
	Version uint32 = 1
	// HeaderSize is the size of the fixed preamble.
	HeaderSize = 64

	cmdHeaderSize = 8
	spanSize      = 8
	styleSize     = 16
	segmentSize   = 28
)

// Header field offsets.
const (
	hdrMagic       = 0
	hdrVersion     = 4
	hdrHeaderSize  = 8
	hdrTotalSize   = 12
	hdrCmdOffset   = 16
	hdrCmdBytes    = 20
	hdrCmdCount    = 24
	hdrStringSpans = 28
	hdrStringCount = 32
	hdrStringBytes = 36
	hdrStringLen   = 40
	hdrBlobSpans   = 44
	hdrBlobCount   = 48
	hdrBlobBytes   = 52
	hdrBlobLen     = 56
	hdrReserved    = 60
)

// Header is the decoded preamble of a drawlist.
type Header struct {
	Magic, Version, HeaderSize, TotalSize uint32

	CmdOffset, CmdBytes, CmdCount uint32

	StringSpanOffset, StringCount  uint32
	StringBytesOffset, StringBytes uint32

	BlobSpanOffset, BlobCount  uint32
	BlobBytesOffset, BlobBytes uint32

	Reserved uint32
}

func (h *Header) put(p []byte) {
	le := binary.LittleEndian
	le.PutUint32(p[hdrMagic:], h.Magic)
	le.PutUint32(p[hdrVersion:], h.Version)
	le.PutUint32(p[hdrHeaderSize:], h.HeaderSize)
	le.PutUint32(p[hdrTotalSize:], h.TotalSize)
	le.PutUint32(p[hdrCmdOffset:], h.CmdOffset)
	le.PutUint32(p[hdrCmdBytes:], h.CmdBytes)
	le.PutUint32(p[hdrCmdCount:], h.CmdCount)
	le.PutUint32(p[hdrStringSpans:], h.StringSpanOffset)
	le.PutUint32(p[hdrStringCount:], h.StringCount)
	le.PutUint32(p[hdrStringBytes:], h.StringBytesOffset)
	le.PutUint32(p[hdrStringLen:], h.StringBytes)
	le.PutUint32(p[hdrBlobSpans:], h.BlobSpanOffset)
	le.PutUint32(p[hdrBlobCount:], h.BlobCount)
	le.PutUint32(p[hdrBlobBytes:], h.BlobBytesOffset)
	le.PutUint32(p[hdrBlobLen:], h.BlobBytes)
	le.PutUint32(p[hdrReserved:], h.Reserved)
}

func readHeader(p []byte) Header {
	le := binary.LittleEndian
	return Header{
		Magic:             le.Uint32(p[hdrMagic:]),
		Version:           le.Uint32(p[hdrVersion:]),
		HeaderSize:        le.Uint32(p[hdrHeaderSize:]),
		TotalSize:         le.Uint32(p[hdrTotalSize:]),
		CmdOffset:         le.Uint32(p[hdrCmdOffset:]),
		CmdBytes:          le.Uint32(p[hdrCmdBytes:]),
		CmdCount:          le.Uint32(p[hdrCmdCount:]),
		StringSpanOffset:  le.Uint32(p[hdrStringSpans:]),
		StringCount:       le.Uint32(p[hdrStringCount:]),
		StringBytesOffset: le.Uint32(p[hdrStringBytes:]),
		StringBytes:       le.Uint32(p[hdrStringLen:]),
		BlobSpanOffset:    le.Uint32(p[hdrBlobSpans:]),
		BlobCount:         le.Uint32(p[hdrBlobCount:]),
		BlobBytesOffset:   le.Uint32(p[hdrBlobBytes:]),
		BlobBytes:         le.Uint32(p[hdrBlobLen:]),
		Reserved:          le.Uint32(p[hdrReserved:]),
	}
}

func align4(v int) int { return (v + 3) &^ 3 }

// span is an (offset, length) pair into a byte region.
type span struct {
	off, len uint32
}
