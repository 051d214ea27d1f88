// Package tuicore is the rendering core of a terminal UI framework.
//
// An Engine turns a committed tree of widget nodes into a resolved geometry
// tree and a compact binary drawlist for a terminal painter. Each frame runs
// the stability gate, lays the tree out (or reuses the previous geometry
// when nothing layout-relevant changed), walks it into drawlist commands
// and serializes them. Identical input yields identical geometry and
// identical bytes.
//
//	eng, err := tuicore.New(tuicore.WithLimits(tuicore.DefaultLimits()))
//	if err != nil {
//		return err
//	}
//	frame, err := eng.Frame(root, 80, 24)
//	if err != nil {
//		return err
//	}
//	backend.Submit(frame.Drawlist)
package tuicore
