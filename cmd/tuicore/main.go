// Package main provides the CLI tool for rendering tuicore scene files.
//
// Usage:
//
//	tuicore render scene.toml    Print the rendered frame as text
//	tuicore dump scene.toml      Describe the frame's drawlist
//	tuicore view scene.toml      Show the scene in the terminal
//	tuicore bench scene.toml     Measure frame throughput
//	tuicore help                 Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `tuicore - layout and drawlist renderer for terminal UI scenes

Usage:
  tuicore <command> [options] <scene.toml>

Commands:
  render      Lay out a scene and print the frame as text
  dump        Print the frame's drawlist header and commands
  view        Show a scene in the terminal, resizing with it
  bench       Run frames on parallel engines and report timings
  version     Print version information
  help        Show this help message

Options:
  -w, -h      Override the scene's viewport
  -fit        Use the current terminal size as the viewport
  -log path   Append debug records to path (also TUI_DEBUG)

Examples:
  tuicore render scenes/dashboard.toml
  tuicore render -w 60 -h 20 scenes/dashboard.toml
  tuicore dump -geometry scenes/dashboard.toml
  tuicore dump -o frame.zrdl scenes/dashboard.toml
  tuicore view scenes/dashboard.toml
  tuicore bench -n 5000 -j 4 scenes/dashboard.toml
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render":
		err = runRender(args)
	case "dump":
		err = runDump(args)
	case "view":
		err = runView(args)
	case "bench":
		err = runBench(args)
	case "version":
		fmt.Printf("tuicore version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
