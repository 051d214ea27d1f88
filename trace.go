package tuicore

import "time"

// FrameStats describes one Engine.Frame call. Cache counters are deltas for
// this frame.
type FrameStats struct {
	Frame         uint64 // 1-based frame number
	Width, Height int
	LayoutSkipped bool // previous geometry reused

	MeasureHits   uint64
	MeasureMisses uint64
	ArrangeHits   uint64
	ArrangeMisses uint64

	Commands int
	Strings  int
	Bytes    int
	Elapsed  time.Duration

	// Err is the budget failure that kept the frame from producing a
	// drawlist.
	Err error
}

// TraceSink receives the stats of every frame.
type TraceSink interface {
	RecordFrame(FrameStats)
}

// Counters is a TraceSink keeping plain totals. It is not safe for
// concurrent use; give each engine its own.
type Counters struct {
	Frames         uint64
	LayoutsSkipped uint64
	MeasureHits    uint64
	MeasureMisses  uint64
	ArrangeHits    uint64
	ArrangeMisses  uint64
	Commands       uint64
	Bytes          uint64
	Rejected       uint64 // frames whose drawlist exceeded a budget
	Elapsed        time.Duration
	Last           FrameStats
}

// RecordFrame implements TraceSink.
func (c *Counters) RecordFrame(s FrameStats) {
	c.Frames++
	if s.LayoutSkipped {
		c.LayoutsSkipped++
	}
	c.MeasureHits += s.MeasureHits
	c.MeasureMisses += s.MeasureMisses
	c.ArrangeHits += s.ArrangeHits
	c.ArrangeMisses += s.ArrangeMisses
	if s.Err != nil {
		c.Rejected++
	}
	c.Commands += uint64(s.Commands)
	c.Bytes += uint64(s.Bytes)
	c.Elapsed += s.Elapsed
	c.Last = s
}

// HitRate returns the fraction of measurements answered from the cache.
func (c *Counters) HitRate() float64 {
	total := c.MeasureHits + c.MeasureMisses
	if total == 0 {
		return 0
	}
	return float64(c.MeasureHits) / float64(total)
}
