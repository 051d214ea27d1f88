package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/grindlemire/tuicore/internal/scene"
)

// sceneFlags are the options shared by every scene command.
type sceneFlags struct {
	width, height int
	fit           bool
	logPath       string
}

func (f *sceneFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.width, "w", 0, "Viewport width (default from the scene)")
	fs.IntVar(&f.height, "h", 0, "Viewport height (default from the scene)")
	fs.BoolVar(&f.fit, "fit", false, "Use the terminal size as the viewport")
	fs.StringVar(&f.logPath, "log", "", "Path to debug log file")
}

// load parses the single scene path left in fs and applies the viewport
// overrides.
func (f *sceneFlags) load(fs *flag.FlagSet) (*scene.Scene, error) {
	if fs.NArg() != 1 {
		return nil, errors.New("expected exactly one scene file")
	}
	s, err := scene.Load(fs.Arg(0))
	if err != nil {
		return nil, err
	}
	if f.fit {
		if w, h, ok := terminalSize(); ok {
			s.Width, s.Height = w, h
		}
	}
	if f.width > 0 {
		s.Width = f.width
	}
	if f.height > 0 {
		s.Height = f.height
	}
	return s, nil
}

// openLog enables debug logging from -log or TUI_DEBUG.
func (f *sceneFlags) openLog() (io.Closer, error) {
	if f.logPath != "" {
		return debug.Open(f.logPath)
	}
	return debug.FromEnv()
}

func isTerminal(f *os.File) bool {
	return isTerminalFd(int(f.Fd()))
}
