// Command ropemove applies a cut-and-paste script to a text.
//
// The script is read from standard input, or from the file given with -f:
//
//	line 1       the initial text, lowercase letters only
//	line 2       the number q of operations
//	q lines      "i j k": cut positions [i, j], paste them before position k
//	             of the remaining text
//
// The resulting text is written to standard output.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ivanbgd/rope"
	"github.com/ivanbgd/rope/textfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

type options struct {
	file    string
	verbose bool
	dot     string
	color   string
	trace   string
}

func main() {
	os.Exit(run(parseFlags(), os.Stdin, os.Stdout))
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.file, "f", "", "read script from `file` instead of stdin")
	flag.BoolVar(&opts.verbose, "v", false, "dump the tree nodes in level order after every stage")
	flag.StringVar(&opts.dot, "dot", "", "write the final tree in Graphviz DOT format to `file`")
	flag.StringVar(&opts.color, "color", "auto", "colorize verbose output: auto, always or never")
	flag.StringVar(&opts.trace, "trace", "error", "trace `level`: error, info or debug")
	flag.Parse()
	return opts
}

func setupTracing(level string) {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	gtrace.CoreTracer = tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

func run(opts options, stdin io.Reader, stdout io.Writer) int {
	setupTracing(opts.trace)
	script, err := readScript(opts.file, stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	printer := newTreePrinter(stdout, opts.color)
	r := script.Rope()
	if opts.verbose {
		printer.print("initial", r)
	}
	for i, op := range script.Moves {
		if err = op.Apply(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: operation %d: %v\n", i+1, err)
			return 1
		}
		if opts.verbose {
			printer.print(fmt.Sprintf("after %s", op), r)
		}
	}
	if opts.dot != "" {
		if err = writeDot(opts.dot, r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	fmt.Fprintln(stdout, r.String())
	return 0
}

func readScript(name string, stdin io.Reader) (*textfile.Script, error) {
	if name == "" {
		return textfile.Parse(stdin)
	}
	return textfile.Load(name)
}

// exitCode distinguishes malformed input (2) from other failures (1).
func exitCode(err error) int {
	switch {
	case errors.Is(err, textfile.ErrSyntax), errors.Is(err, textfile.ErrInvalidText),
		errors.Is(err, rope.ErrIndexOutOfBounds), errors.Is(err, rope.ErrIllegalArguments):
		return 2
	}
	return 1
}

func writeDot(name string, r *rope.Rope) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	rope.Rope2Dot(r, f)
	return f.Close()
}
