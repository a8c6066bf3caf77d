package mapio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fognav/mission"
	"github.com/katalvlaran/fognav/terrain"
)

// ErrSyntax indicates a malformed input line.
var ErrSyntax = errors.New("mapio: syntax error")

// maxLineBytes bounds a single input line; objective lines with long offers stay well under.
const maxLineBytes = 1 << 20

// lineReader yields non-blank lines split into fields, tracking the line number.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line, or ok == false at end of input.
func (lr *lineReader) next() (fields []string, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		fields = strings.Fields(lr.sc.Text())
		if len(fields) > 0 {
			return fields, true, nil
		}
	}
	if err = lr.sc.Err(); err != nil {
		return nil, false, fmt.Errorf("mapio: line %d: %w", lr.line+1, err)
	}

	return nil, false, nil
}

// errorf wraps err with the current line number.
func (lr *lineReader) errorf(err error, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", err, lr.line, fmt.Sprintf(format, args...))
}

// ints parses every field as an int.
func (lr *lineReader) ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, lr.errorf(ErrSyntax, "%q is not an integer", f)
		}
		out[i] = n
	}

	return out, nil
}

// header reads the next line as exactly n integers.
func (lr *lineReader) header(n int, what string) ([]int, error) {
	fields, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing %s line", ErrSyntax, what)
	}
	if len(fields) != n {
		return nil, lr.errorf(ErrSyntax, "%s line wants %d fields, got %d", what, n, len(fields))
	}

	return lr.ints(fields)
}

// ReadGrid parses a node file into a new grid.
func ReadGrid(r io.Reader) (*terrain.Grid, error) {
	lr := newLineReader(r)
	dims, err := lr.header(2, "dimensions")
	if err != nil {
		return nil, err
	}
	gr, err := terrain.NewGrid(dims[0], dims[1])
	if err != nil {
		return nil, lr.errorf(err, "dimensions %dx%d", dims[0], dims[1])
	}

	for {
		fields, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return gr, nil
		}
		if len(fields) != 3 {
			return nil, lr.errorf(ErrSyntax, "node line wants 3 fields, got %d", len(fields))
		}
		v, err := lr.ints(fields)
		if err != nil {
			return nil, err
		}
		if err = gr.AddNode(v[0], v[1], v[2]); err != nil {
			return nil, lr.errorf(err, "node %s", strings.Join(fields, " "))
		}
	}
}

// ReadEdges parses an edge file into gr.
func ReadEdges(r io.Reader, gr *terrain.Grid) error {
	lr := newLineReader(r)
	for {
		fields, ok, err := lr.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if len(fields) != 2 {
			return lr.errorf(ErrSyntax, "edge line wants 2 fields, got %d", len(fields))
		}
		a, b, found := strings.Cut(fields[0], ",")
		if !found {
			return lr.errorf(ErrSyntax, "edge %q has no comma", fields[0])
		}
		from, err := lr.coord(a)
		if err != nil {
			return err
		}
		to, err := lr.coord(b)
		if err != nil {
			return err
		}
		t, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return lr.errorf(ErrSyntax, "%q is not a number", fields[1])
		}
		if err = gr.AddTravelTime(from.X, from.Y, to.X, to.Y, t); err != nil {
			return lr.errorf(err, "edge %s", fields[0])
		}
	}
}

// coord parses "x-y".
func (lr *lineReader) coord(s string) (terrain.Coord, error) {
	xs, ys, found := strings.Cut(s, "-")
	if !found {
		return terrain.Coord{}, lr.errorf(ErrSyntax, "coordinate %q is not x-y", s)
	}
	v, err := lr.ints([]string{xs, ys})
	if err != nil {
		return terrain.Coord{}, err
	}

	return terrain.Coord{X: v[0], Y: v[1]}, nil
}

// ReadMission parses an objective file.
func ReadMission(r io.Reader) (mission.Mission, error) {
	lr := newLineReader(r)
	radius, err := lr.header(1, "radius")
	if err != nil {
		return mission.Mission{}, err
	}
	start, err := lr.header(2, "start")
	if err != nil {
		return mission.Mission{}, err
	}
	m := mission.Mission{Radius: radius[0], Start: terrain.Coord{X: start[0], Y: start[1]}}

	for {
		fields, ok, err := lr.next()
		if err != nil {
			return mission.Mission{}, err
		}
		if !ok {
			return m, nil
		}
		if len(fields) < 2 {
			return mission.Mission{}, lr.errorf(ErrSyntax, "objective line wants at least 2 fields, got %d", len(fields))
		}
		v, err := lr.ints(fields)
		if err != nil {
			return mission.Mission{}, err
		}
		obj := mission.Objective{Target: terrain.Coord{X: v[0], Y: v[1]}}
		if len(v) > 2 {
			obj.Offer = v[2:]
		}
		m.Objectives = append(m.Objectives, obj)
	}
}
