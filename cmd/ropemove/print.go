package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/ivanbgd/rope"
	"golang.org/x/term"
)

// treePrinter dumps the nodes of a rope in level order, one node per line,
// indented by depth.
type treePrinter struct {
	w      io.Writer
	width  int
	value  *color.Color
	size   *color.Color
	header *color.Color
}

func newTreePrinter(w io.Writer, mode string) *treePrinter {
	fd := int(os.Stdout.Fd())
	isTerm := w == io.Writer(os.Stdout) && term.IsTerminal(fd)
	p := &treePrinter{
		w:      w,
		width:  80,
		value:  color.New(color.FgGreen, color.Bold),
		size:   color.New(color.FgCyan),
		header: color.New(color.FgYellow),
	}
	if isTerm {
		if width, _, err := term.GetSize(fd); err == nil && width > 20 {
			p.width = width
		}
	}
	var colorize bool
	switch mode {
	case "always":
		colorize = true
	case "never":
		colorize = false
	default:
		colorize = isTerm
	}
	for _, c := range []*color.Color{p.value, p.size, p.header} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *treePrinter) print(stage string, r *rope.Rope) {
	p.header.Fprintf(p.w, "%s: %s\n", stage, p.clip(r.String(), len(stage)+2))
	p.header.Fprintln(p.w, "nodes in level order:")
	for depth, node := range r.Nodes() {
		indent := strings.Repeat("  ", min(depth, p.width/4))
		fmt.Fprintf(p.w, "%s(%s, %s)\n", indent,
			p.value.Sprintf("%c", node.Value()),
			p.size.Sprintf("%d", node.Size()))
	}
}

// clip shortens s to fit the output width after a prefix of the given length.
func (p *treePrinter) clip(s string, prefix int) string {
	room := p.width - prefix
	if room < 4 || len(s) <= room {
		return s
	}
	return s[:room-1] + "…"
}
