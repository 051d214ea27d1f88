package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/drawlist"
	"github.com/grindlemire/tuicore/internal/style"
)

// runDump implements the dump subcommand.
// It prints the header and commands of a scene's drawlist, or validates
// and writes the raw bytes to a file with -o.
func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var sf sceneFlags
	sf.register(fs)
	outPath := fs.String("o", "", "Write the raw drawlist to this file")
	showGeometry := fs.Bool("geometry", false, "Also print the geometry tree")
	showStrings := fs.Bool("strings", false, "Also print the string table")
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
	eng, err := tuicore.New(tuicore.WithAxis(s.Axis))
	if err != nil {
		return err
	}
	f, err := eng.Frame(s.Root, s.Width, s.Height)
	if err != nil {
		return err
	}

	d, err := drawlist.Parse(f.Drawlist)
	if err != nil {
		return err
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, d.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing drawlist: %w", err)
		}
		fmt.Printf("wrote %d bytes to %s\n", len(d.Bytes()), *outPath)
		return nil
	}

	writeDrawlist(os.Stdout, d)
	if *showStrings {
		fmt.Println()
		writeStrings(os.Stdout, d)
	}
	if *showGeometry {
		fmt.Println()
		writeGeometry(os.Stdout, s.Root, f.Geometry)
	}
	return nil
}

func writeDrawlist(w io.Writer, d *drawlist.Drawlist) {
	h := d.Header()
	fmt.Fprintf(w, "drawlist v%d: %d bytes, %d commands (%d bytes), %d strings (%d bytes), %d blobs (%d bytes)\n",
		h.Version, h.TotalSize, h.CmdCount, h.CmdBytes, h.StringCount, h.StringBytes, h.BlobCount, h.BlobBytes)
	for i, c := range d.Commands() {
		fmt.Fprintf(w, "%4d  %s\n", i, describe(c))
	}
}

// writeStrings prints the interned string table.
func writeStrings(w io.Writer, d *drawlist.Drawlist) {
	n := int(d.Header().StringCount)
	fmt.Fprintf(w, "strings: %d\n", n)
	for i := range n {
		fmt.Fprintf(w, "%4d  %q\n", i, d.String(i))
	}
}

func describe(c drawlist.Command) string {
	switch c.Op {
	case drawlist.OpClear, drawlist.OpPopClip:
		return c.Op.String()
	case drawlist.OpFillRect:
		return fmt.Sprintf("%s (%d,%d) %dx%d%s", c.Op, c.X, c.Y, c.Width, c.Height, describeStyle(c.Style))
	case drawlist.OpPushClip:
		return fmt.Sprintf("%s (%d,%d) %dx%d", c.Op, c.X, c.Y, c.Width, c.Height)
	case drawlist.OpDrawText:
		return fmt.Sprintf("%s (%d,%d) %q%s", c.Op, c.X, c.Y, c.Text, describeStyle(c.Style))
	case drawlist.OpDrawTextRun:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s (%d,%d)", c.Op, c.X, c.Y)
		for _, seg := range c.Run {
			fmt.Fprintf(&sb, " [%q%s]", seg.Text, describeStyle(seg.Style))
		}
		return sb.String()
	default:
		return c.Op.String()
	}
}

func describeStyle(st style.Style) string {
	var parts []string
	if !st.Fg.IsDefault() {
		parts = append(parts, "fg="+describeColor(st.Fg))
	}
	if !st.Bg.IsDefault() {
		parts = append(parts, "bg="+describeColor(st.Bg))
	}
	if st.Attrs != 0 {
		parts = append(parts, fmt.Sprintf("attrs=%#x", uint8(st.Attrs)))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func describeColor(c style.Color) string {
	if c.Type() == style.ColorANSI {
		return fmt.Sprintf("%d", c.ANSI())
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// writeGeometry prints one indented line per node.
func writeGeometry(w io.Writer, root *tuicore.Node, geo *tuicore.Geometry) {
	type item struct {
		n     *tuicore.Node
		g     *tuicore.Geometry
		depth int
	}
	fmt.Fprintf(w, "geometry: %d nodes\n", geo.Count())
	stack := []item{{root, geo, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		label := it.n.Kind.String()
		if it.n.Props.ID != "" {
			label += "#" + it.n.Props.ID
		}
		r := it.g.Rect
		fmt.Fprintf(w, "%s%s (%d,%d) %dx%d\n", strings.Repeat("  ", it.depth), label, r.X, r.Y, r.Width, r.Height)
		for i := len(it.n.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.n.Children[i], it.g.Children[i], it.depth + 1})
		}
	}
}
