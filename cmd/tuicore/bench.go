package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/grindlemire/tuicore/internal/scene"
)

// benchModes select what changes between frames.
var benchModes = map[string]string{
	"steady": "same tree and viewport every frame (gate skips layout)",
	"resize": "viewport width alternates every frame (cached relayout)",
	"cold":   "cache dropped before every frame (full layout)",
}

// runBench implements the bench subcommand.
// It runs independent engines in parallel over the same scene and reports
// per-engine timings.
func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	var sf sceneFlags
	sf.register(fs)
	frames := fs.Int("n", 1000, "Frames per engine")
	workers := fs.Int("j", 1, "Number of parallel engines")
	mode := fs.String("mode", "resize", "Frame mode: steady, resize or cold")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if _, ok := benchModes[*mode]; !ok {
		return fmt.Errorf("unknown mode %q", *mode)
	}
	if *frames < 1 || *workers < 1 {
		return fmt.Errorf("-n and -j must be at least 1")
	}

	closer, err := sf.openLog()
	if err != nil {
		return err
	}
	defer closer.Close()

	s, err := sf.load(fs)
	if err != nil {
		return err
	}

	results := make([]tuicore.Counters, *workers)
	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for i := range results {
		g.Go(func() error {
			return benchEngine(ctx, s, *mode, *frames, &results[i])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	wall := time.Since(start)
	debug.Log("bench %s: %d engines x %d frames in %s", *mode, *workers, *frames, wall)

	fmt.Printf("mode %s: %s\n", *mode, benchModes[*mode])
	fmt.Printf("scene %dx%d, %d frames x %d engines in %s\n", s.Width, s.Height, *frames, *workers, wall.Round(time.Millisecond))
	for i, c := range results {
		fmt.Printf("engine %d: %s/frame, %d layouts skipped, hit rate %.1f%%, %d bytes/frame\n",
			i, (c.Elapsed / time.Duration(c.Frames)).Round(time.Microsecond),
			c.LayoutsSkipped, 100*c.HitRate(), c.Bytes/c.Frames)
	}
	return nil
}

// benchEngine runs frames on a fresh engine. The scene tree is shared
// read-only between engines.
func benchEngine(ctx context.Context, s *scene.Scene, mode string, frames int, c *tuicore.Counters) error {
	eng, err := tuicore.New(tuicore.WithAxis(s.Axis), tuicore.WithTraceSink(c))
	if err != nil {
		return err
	}
	for n := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		width := s.Width
		switch mode {
		case "resize":
			width -= n % 2
		case "cold":
			eng.Invalidate()
		}
		if _, err := eng.Frame(s.Root, width, s.Height); err != nil {
			return err
		}
	}
	return nil
}
