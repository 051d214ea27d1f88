package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/grid"
	"github.com/grindlemire/tuicore/internal/scene"
)

// runRender implements the render subcommand.
// It lays out a scene once and prints the resulting grid as plain text.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var sf sceneFlags
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
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
	g, err := renderScene(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, g.StringTrimmed())
	return nil
}

// renderScene runs one frame of s and paints it onto a grid.
func renderScene(s *scene.Scene) (*grid.Grid, error) {
	eng, err := tuicore.New(tuicore.WithAxis(s.Axis))
	if err != nil {
		return nil, err
	}
	f, err := eng.Frame(s.Root, s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	g := grid.New(s.Width, s.Height)
	if err := g.Execute(f.Drawlist); err != nil {
		return nil, fmt.Errorf("executing drawlist: %w", err)
	}
	return g, nil
}
