package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ivanbgd/rope"
)

// maxLineLength bounds a single script line, i.e. mostly the initial text.
const maxLineLength = 1 << 22

var (
	// ErrSyntax is flagged for malformed script lines.
	ErrSyntax = errors.New("textfile: syntax error")
	// ErrInvalidText is flagged if the initial text contains characters
	// other than lowercase letters.
	ErrInvalidText = errors.New("textfile: text must consist of lowercase letters")
)

// Script is a parsed editing script.
type Script struct {
	Text  string        // initial text
	Moves []rope.MoveOp // operations, in order of application
}

// ValidateText checks that s consists of lowercase letters a…z only.
func ValidateText(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return fmt.Errorf("%w: byte %#x at position %d", ErrInvalidText, s[i], i)
		}
	}
	return nil
}

// Load opens a file, which must be a regular text file, and parses it as a script.
func Load(name string) (*Script, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	script, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return script, nil
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: file is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}

// Parse reads a script from r.
//
// Blank lines after the operation count are ignored, as is trailing input
// after the last announced operation. Every operation is validated against
// the length of the initial text, which does not change under moves.
func Parse(r io.Reader) (*Script, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineno := 0
	next := func(skipBlank bool) (string, bool) {
		for sc.Scan() {
			lineno++
			line := strings.TrimSpace(sc.Text())
			if skipBlank && line == "" {
				continue
			}
			return line, true
		}
		return "", false
	}
	//
	text, ok := next(false)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing initial text", ErrSyntax)
	}
	if err := ValidateText(text); err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}
	script := &Script{Text: text}
	//
	line, ok := next(true)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing operation count", ErrSyntax)
	}
	q, err := strconv.Atoi(line)
	if err != nil || q < 0 {
		return nil, fmt.Errorf("%w: line %d: invalid operation count %q", ErrSyntax, lineno, line)
	}
	tracer().Debugf("script: text of length %d, %d operations", len(text), q)
	script.Moves = make([]rope.MoveOp, 0, q)
	for len(script.Moves) < q {
		line, ok = next(true)
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d operations, found %d", ErrSyntax, q, len(script.Moves))
		}
		op, err := parseMove(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineno, err)
		}
		if err = op.Validate(len(text)); err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", lineno, op, err)
		}
		script.Moves = append(script.Moves, op)
	}
	return script, nil
}

func parseMove(line string) (rope.MoveOp, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return rope.MoveOp{}, fmt.Errorf("expected 3 integers, found %d fields", len(fields))
	}
	var n [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return rope.MoveOp{}, fmt.Errorf("not an integer: %q", f)
		}
		n[i] = v
	}
	return rope.MoveOp{I: n[0], J: n[1], K: n[2]}, nil
}

// Rope creates a fresh rope holding the initial text of the script.
func (s *Script) Rope() *rope.Rope {
	return rope.FromString(s.Text)
}

// Run applies all operations of the script to a fresh rope and returns it.
func (s *Script) Run() (*rope.Rope, error) {
	r := s.Rope()
	for i, op := range s.Moves {
		if err := op.Apply(r); err != nil {
			return nil, fmt.Errorf("operation %d (%v): %w", i+1, op, err)
		}
	}
	tracer().Infof("script: applied %d operations", len(s.Moves))
	return r, nil
}
