package tuicore

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/layout"
	"github.com/grindlemire/tuicore/internal/render"
)

// Engine runs the per-frame pipeline: stability gate, layout (or reuse of
// the previous geometry), render and drawlist serialization. An Engine is
// used from a single goroutine; separate engines share nothing unless they
// are given the same cache.
type Engine struct {
	limits drawlist.Limits
	cache  *layout.Cache
	sink   TraceSink
	logger *slog.Logger
	axis   Axis

	gate    layout.Gate
	builder *drawlist.Builder
	geo     *layout.Geometry // geometry of the last successful layout
	frames  uint64
}

// Frame is the output of one Engine.Frame call.
type Frame struct {
	Geometry *Geometry
	Drawlist []byte // owned by the caller
	Stats    FrameStats
}

// New creates an Engine with the given options applied.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		limits: drawlist.DefaultLimits(),
		cache:  layout.NewCache(),
		logger: debug.Logger(),
		axis:   Column,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	e.builder = drawlist.NewBuilder(e.limits)
	return e, nil
}

// Cache returns the engine's layout cache, nil when caching is disabled.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Invalidate drops the cache and the stored gate state so the next frame
// lays out from scratch.
func (e *Engine) Invalidate() {
	e.gate.Reset()
	e.cache.Reset()
	e.geo = nil
}

// Frame lays out and renders root in a width x height viewport. When the
// gate sees no layout-relevant change since the previous frame the previous
// geometry is reused. A layout error leaves the engine ready to lay out
// again on the next frame; a drawlist budget error still returns the frame
// geometry.
func (e *Engine) Frame(root *Node, width, height int) (*Frame, error) {
	start := time.Now()
	e.frames++
	stats := FrameStats{Frame: e.frames, Width: width, Height: height}
	before := e.cache.Stats()

	changed := e.gate.Check(root, width, height)
	geo := e.geo
	if changed || geo == nil {
		var err error
		geo, err = layout.Layout(root, 0, 0, width, height, e.axis, e.cache)
		if err != nil {
			e.gate.Reset()
			e.geo = nil
			return nil, fmt.Errorf("layout frame %d: %w", e.frames, err)
		}
		e.geo = geo
	} else {
		stats.LayoutSkipped = true
	}

	after := e.cache.Stats()
	stats.MeasureHits = after.Hits - before.Hits
	stats.MeasureMisses = after.Misses - before.Misses
	stats.ArrangeHits = after.ArrangeHits - before.ArrangeHits
	stats.ArrangeMisses = after.ArrangeMisses - before.ArrangeMisses

	frame := &Frame{Geometry: geo}
	e.builder.Reset()
	opts := render.Options{Axis: e.axis, Viewport: NewRect(0, 0, width, height)}
	if err := render.Render(e.builder, root, geo, opts); err != nil {
		return nil, fmt.Errorf("render frame %d: %w", e.frames, err)
	}
	stats.Commands = e.builder.Len()
	stats.Strings = e.builder.Strings()

	buf, err := e.builder.Build()
	frame.Drawlist = buf
	stats.Bytes = len(buf)
	stats.Err = err
	stats.Elapsed = time.Since(start)
	frame.Stats = stats

	if e.sink != nil {
		e.sink.RecordFrame(stats)
	}
	if err != nil {
		e.logger.Debug("drawlist rejected", "frame", stats.Frame, "elapsed", stats.Elapsed, "err", err)
		return frame, fmt.Errorf("build frame %d: %w", e.frames, err)
	}
	e.logger.Debug("frame",
		"frame", stats.Frame,
		"relayout", !stats.LayoutSkipped,
		"measure_misses", stats.MeasureMisses,
		"commands", stats.Commands,
		"bytes", stats.Bytes,
		"elapsed", stats.Elapsed,
	)
	return frame, nil
}
