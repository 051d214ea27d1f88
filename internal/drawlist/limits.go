package drawlist

// Limits bound the size of one drawlist. A zero field means no limit.
type Limits struct {
	MaxDrawlistBytes   int // whole encoded buffer, header included
	MaxBlobBytes       int // blob byte region
	MaxCommands        int
	MaxStrings         int // distinct interned strings
	MaxBlobs           int
	MaxTextRunSegments int // segments in one text run
	MaxClipDepth       int // nested PushClip
}

// DefaultLimits returns limits suited to full-screen frames on large
// terminals.
func DefaultLimits() Limits {
	return Limits{
		MaxDrawlistBytes:   16 << 20,
		MaxBlobBytes:       4 << 20,
		MaxCommands:        1 << 20,
		MaxStrings:         1 << 20,
		MaxBlobs:           1 << 16,
		MaxTextRunSegments: 1 << 16,
		MaxClipDepth:       64,
	}
}

func exceeds(n, limit int) bool {
	return limit > 0 && n > limit
}
