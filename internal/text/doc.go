// Package text measures and wraps strings in terminal cells.
//
// Strings are segmented into grapheme clusters (extended grapheme clusters
// per UAX #29) and every cluster is assigned a display width: 0 for
// zero-width and combining sequences, 1 for narrow, 2 for wide (CJK,
// emoji presentation). Printable ASCII takes a fast path that never calls
// into the segmenter.
//
// [Wrap] performs greedy line filling that keeps explicit line breaks and
// the literal length of space runs, and hard-breaks words wider than the
// available width at grapheme boundaries.
package text
