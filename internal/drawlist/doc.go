// Package drawlist encodes one rendered frame as a self-describing binary
// command stream, and decodes and validates such streams.
//
// A drawlist is a 64-byte header followed by five 4-byte aligned regions:
//
//	[header][commands][string spans][string bytes][blob spans][blob bytes]
//
// All integers are little-endian. Every command starts with an 8-byte
// header {opcode u16, flags u16, size u32} where size counts the header
// itself and must match the fixed size of the opcode. Parse rejects
// unknown opcodes rather than skipping them. Text is
// never stored inline: commands reference an interned string by index
// plus a byte range, and text runs reference a blob whose segments each
// point into the string table.
//
// Builder produces drawlists and Parse consumes them. Parse assumes
// nothing about who produced the bytes and checks every offset before
// use.
package drawlist
