package text

import "strings"

// Line is one visual row produced by Wrap, as a byte range of the source.
type Line struct {
	Start, End int // Byte offsets into the wrapped string
	Width      int // Display width of s[Start:End]
}

// Wrap breaks s into visual lines no wider than width cells.
//
// Explicit '\n' always ends a line (a '\r' before it is dropped). Spaces are
// never collapsed within a line: a run of spaces that reaches the right edge
// keeps the spaces that fit, and the line break consumes the rest of the
// run, so a wrapped line never starts with a space. A word that does not fit on
// a non-empty line moves to the next line; a word wider than the whole line
// is broken at grapheme boundaries. A single grapheme wider than width
// occupies a line on its own. width < 1 is treated as 1.
func Wrap(s string, width int) []Line {
	if width < 1 {
		width = 1
	}

	lines := make([]Line, 0, 1+len(s)/(width+1))
	start := 0
	for {
		end := len(s)
		next := -1
		if nl := strings.IndexByte(s[start:], '\n'); nl >= 0 {
			end = start + nl
			next = end + 1
		}
		para := end
		if para > start && s[para-1] == '\r' {
			para--
		}
		lines = wrapParagraph(lines, s, start, para, width)
		if next < 0 {
			return lines
		}
		start = next
	}
}

// LineCount returns len(Wrap(s, width)) and the widest line.
func LineCount(s string, width int) (count, widest int) {
	for _, l := range Wrap(s, width) {
		count++
		widest = max(widest, l.Width)
	}
	return count, widest
}

func wrapParagraph(lines []Line, s string, start, end, width int) []Line {
	cur := Line{Start: start, End: start}
	flush := func() {
		lines = append(lines, cur)
		cur = Line{Start: cur.End, End: cur.End}
	}

	pos := start
	for pos < end {
		if s[pos] == ' ' {
			if cur.Width+1 > width {
				lines = append(lines, cur)
				for pos < end && s[pos] == ' ' {
					pos++
				}
				if pos == end {
					return lines
				}
				cur = Line{Start: pos, End: pos}
				continue
			}
			pos++
			cur.End = pos
			cur.Width++
			continue
		}

		wordEnd := pos
		for wordEnd < end && s[wordEnd] != ' ' {
			wordEnd++
		}
		word := s[pos:wordEnd]
		w := Width(word)

		if cur.Width+w > width && cur.End > cur.Start {
			flush()
		}
		if cur.Width+w <= width {
			cur.End = wordEnd
			cur.Width += w
			pos = wordEnd
			continue
		}

		// Hard break: the word alone is wider than the line.
		for c := range Graphemes(word) {
			if cur.Width+c.Width > width && cur.End > cur.Start {
				flush()
			}
			cur.End = pos + c.Start + len(c.Text)
			cur.Width += c.Width
		}
		pos = wordEnd
	}
	return append(lines, cur)
}
