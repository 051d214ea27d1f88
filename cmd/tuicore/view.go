package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/grindlemire/tuicore/internal/grid"
	"github.com/grindlemire/tuicore/internal/paint"
	"github.com/grindlemire/tuicore/internal/scene"
)

// runView implements the view subcommand.
// It shows a scene full screen, re-rendering on resize. r reloads the
// scene file; q, Esc or Ctrl-C quits.
func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	var sf sceneFlags
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return errors.New("view needs a terminal on stdout")
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
	path := fs.Arg(0)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	v := &viewer{screen: screen, presenter: paint.New(screen), scene: s}
	if err := v.reset(); err != nil {
		return err
	}
	if err := v.draw(); err != nil {
		return err
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			v.presenter.Invalidate()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'r':
				reloaded, err := scene.Load(path)
				if err != nil {
					debug.Logger().Debug("reload failed", "path", path, "err", err)
					continue
				}
				v.scene = reloaded
				if err := v.reset(); err != nil {
					return err
				}
			}
		case nil:
			return nil
		}
		if err := v.draw(); err != nil {
			return err
		}
	}
}

type viewer struct {
	screen    tcell.Screen
	presenter *paint.Presenter
	engine    *tuicore.Engine
	scene     *scene.Scene
}

// reset starts a fresh engine for the current scene.
func (v *viewer) reset() error {
	eng, err := tuicore.New(tuicore.WithAxis(v.scene.Axis))
	if err != nil {
		return err
	}
	v.engine = eng
	v.presenter.Invalidate()
	return nil
}

// draw renders the scene at the current screen size and presents it.
func (v *viewer) draw() error {
	w, h := v.screen.Size()
	f, err := v.engine.Frame(v.scene.Root, w, h)
	if err != nil {
		return err
	}
	g := grid.New(w, h)
	if err := g.Execute(f.Drawlist); err != nil {
		return fmt.Errorf("executing drawlist: %w", err)
	}
	n := v.presenter.Present(g)
	debug.Logger().Debug("presented", "frame", f.Stats.Frame, "cells", n, "relayout", !f.Stats.LayoutSkipped)
	return nil
}
