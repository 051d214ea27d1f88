package text

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster of a string.
type Cluster struct {
	Text  string // The cluster's bytes
	Start int    // Byte offset of the cluster in the source string
	Width int    // Display width in cells (0, 1 or 2)
}

// Graphemes returns an iterator over the grapheme clusters of s.
// Runs of printable ASCII are emitted one byte per cluster without
// consulting the segmenter.
func Graphemes(s string) iter.Seq[Cluster] {
	return func(yield func(Cluster) bool) {
		state := -1
		pos := 0
		for pos < len(s) {
			// A printable ASCII byte followed by ASCII (or the end) is always
			// a complete cluster. Anything else needs the segmenter since a
			// following combining mark or variation selector joins it.
			if c := s[pos]; isPrintableASCII(c) && (pos+1 == len(s) || s[pos+1] < utf8.RuneSelf) {
				if !yield(Cluster{Text: s[pos : pos+1], Start: pos, Width: 1}) {
					return
				}
				pos++
				state = -1
				continue
			}

			var cluster string
			var width int
			cluster, _, width, state = uniseg.FirstGraphemeClusterInString(s[pos:], state)
			if width > 2 {
				width = 2
			}
			if !yield(Cluster{Text: cluster, Start: pos, Width: width}) {
				return
			}
			pos += len(cluster)
		}
	}
}

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	if IsPrintableASCII(s) {
		return len(s)
	}
	w := 0
	for c := range Graphemes(s) {
		w += c.Width
	}
	return w
}

// Truncate returns the byte length of the longest grapheme prefix of s that
// fits in width cells, and the width of that prefix.
func Truncate(s string, width int) (end, w int) {
	if width <= 0 {
		return 0, 0
	}
	if IsPrintableASCII(s) {
		n := min(len(s), width)
		return n, n
	}
	for c := range Graphemes(s) {
		if w+c.Width > width {
			return c.Start, w
		}
		w += c.Width
		end = c.Start + len(c.Text)
	}
	return end, w
}

// Valid returns s with every run of invalid UTF-8 replaced by U+FFFD.
// ASCII input is returned as-is without scanning runes.
func Valid(s string) string {
	if isASCII(s) || utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}

// IsPrintableASCII reports whether every byte of s is in 0x20..0x7E.
func IsPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isPrintableASCII(s[i]) {
			return false
		}
	}
	return true
}

func isPrintableASCII(c byte) bool {
	return c >= 0x20 && c < 0x7f
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
