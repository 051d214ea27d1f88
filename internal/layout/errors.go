package layout

import "errors"

var (
	// ErrNilNode is returned when a nil node is passed to Measure or
	// Layout, or appears among a node's children.
	ErrNilNode = errors.New("layout: nil node")

	// ErrNoMeasureFunc is returned when a KindCustom node has no
	// Props.Measure.
	ErrNoMeasureFunc = errors.New("layout: custom node without measure func")
)
