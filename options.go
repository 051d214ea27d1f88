package tuicore

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/layout"
)

// Option is a functional option for configuring an Engine.
type Option func(*Engine) error

// WithLimits sets the drawlist budgets. Zero fields are unlimited; negative
// fields are rejected. The default is DefaultLimits().
func WithLimits(l drawlist.Limits) Option {
	return func(e *Engine) error {
		fields := []struct {
			name string
			v    int
		}{
			{"MaxDrawlistBytes", l.MaxDrawlistBytes},
			{"MaxBlobBytes", l.MaxBlobBytes},
			{"MaxCommands", l.MaxCommands},
			{"MaxStrings", l.MaxStrings},
			{"MaxBlobs", l.MaxBlobs},
			{"MaxTextRunSegments", l.MaxTextRunSegments},
			{"MaxClipDepth", l.MaxClipDepth},
		}
		for _, f := range fields {
			if f.v < 0 {
				return fmt.Errorf("limit %s cannot be negative (%d)", f.name, f.v)
			}
		}
		e.limits = l
		return nil
	}
}

// WithTraceSink reports the stats of every frame to sink.
func WithTraceSink(sink TraceSink) Option {
	return func(e *Engine) error {
		if sink == nil {
			return errors.New("trace sink cannot be nil")
		}
		e.sink = sink
		return nil
	}
}

// WithLogger sets the logger for frame-level debug records. By default the
// engine logs through the internal debug logger, which is silent unless
// TUI_DEBUG is set.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) error {
		if l == nil {
			return errors.New("logger cannot be nil")
		}
		e.logger = l
		return nil
	}
}

// WithCache makes the engine share c instead of creating its own. A nil
// cache disables layout caching.
func WithCache(c *layout.Cache) Option {
	return func(e *Engine) error {
		e.cache = c
		return nil
	}
}

// WithAxis sets the main axis the root is laid out along. Default is Column.
func WithAxis(a Axis) Option {
	return func(e *Engine) error {
		if a != Row && a != Column {
			return fmt.Errorf("unknown axis %d", a)
		}
		e.axis = a
		return nil
	}
}
