package mapio

import (
	"bufio"
	"fmt"
	"io"
)

// EOF is the placeholder Diff reports for a line one side does not have.
const EOF = "<EOF>"

// Mismatch is one differing line.
type Mismatch struct {
	Line     int // 1-based
	Expected string
	Actual   string
}

// String renders "line N: expected ..., got ...".
func (m Mismatch) String() string {
	return fmt.Sprintf("line %d: expected %q, got %q", m.Line, m.Expected, m.Actual)
}

// Diff compares expected and actual line by line and returns every differing line.
// A side that runs out early contributes EOF for each remaining line of the other.
func Diff(expected, actual io.Reader) ([]Mismatch, error) {
	es, as := bufio.NewScanner(expected), bufio.NewScanner(actual)
	es.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	as.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []Mismatch
	for line := 1; ; line++ {
		eok, aok := es.Scan(), as.Scan()
		if !eok && !aok {
			break
		}
		e, a := EOF, EOF
		if eok {
			e = es.Text()
		}
		if aok {
			a = as.Text()
		}
		if !eok || !aok || e != a {
			out = append(out, Mismatch{Line: line, Expected: e, Actual: a})
		}
	}
	if err := es.Err(); err != nil {
		return out, fmt.Errorf("mapio: expected: %w", err)
	}
	if err := as.Err(); err != nil {
		return out, fmt.Errorf("mapio: actual: %w", err)
	}

	return out, nil
}
