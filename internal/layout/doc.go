// Package layout turns a tree of widget [Node] values into a [Geometry] tree
// of integer terminal-cell rectangles.
//
// Layout runs in two passes. [Measure] computes a node's border-box size
// under a set of [Constraints] bottom-up, and [Layout] resolves final
// rectangles top-down, distributing main-axis space between the children
// of row and column containers by flex factor. Both passes use explicit
// work lists, so tree depth is bounded only by memory.
//
// A [Cache] memoizes results per node identity and constraints across
// frames, and a [Gate] decides from per-node property signatures whether a
// frame needs a layout pass at all. Nodes must not be mutated once they have
// been laid out with a cache; build a new node instead.
//
// Types are re-exported through the root tuicore package for public
// consumption.
package layout
