package claw

import (
	"fmt"
	"strconv"
	"strings"
)

// Line labels, in block order.
const (
	labelButtonA = "Button A"
	labelButtonB = "Button B"
	labelPrize   = "Prize"
)

const blockLines = 3

// ParseMachine parses one block: a Button A line, a Button B line and a
// Prize line. Blank lines are ignored.
func ParseMachine(block string) (Machine, error) {
	lines := nonEmptyLines(block)

	var m Machine
	fields := []struct {
		label string
		dst   *Vector
	}{
		{labelButtonA, &m.ButtonA},
		{labelButtonB, &m.ButtonB},
		{labelPrize, &m.Prize},
	}
	for i, f := range fields {
		if i >= len(lines) {
			return Machine{}, &MissingLineError{Label: f.label}
		}
		v, err := parseCoords(lines[i])
		if err != nil {
			return Machine{}, fmt.Errorf("parse %s: %w", f.label, err)
		}
		*f.dst = v
	}
	if len(lines) > blockLines {
		return Machine{}, &TooManyLinesError{Count: len(lines)}
	}
	return m, nil
}

// parseCoords scans a line such as "Button A: X+94, Y+34" or
// "Prize: X=8400, Y=5400". The line must split into exactly four segments
// on '=', '+' and ','; the second and fourth are the X and Y values.
func parseCoords(line string) (Vector, error) {
	var bounds [4]int // start offsets of segments 1..3, then len(line)
	n := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '=', '+', ',':
			if n == 3 {
				return Vector{}, &FormatError{Line: line, Reason: "more than 4 segments"}
			}
			bounds[n] = i
			n++
		}
	}
	if n != 3 {
		return Vector{}, &FormatError{Line: line, Reason: fmt.Sprintf("got %d segments, want 4", n+1)}
	}
	bounds[3] = len(line)

	x, err := parseNumber(line, "X", line[bounds[0]+1:bounds[1]])
	if err != nil {
		return Vector{}, err
	}
	y, err := parseNumber(line, "Y", line[bounds[2]+1:bounds[3]])
	if err != nil {
		return Vector{}, err
	}
	return Vector{X: x, Y: y}, nil
}

func parseNumber(line, field, tok string) (int64, error) {
	tok = strings.TrimSpace(tok)
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &FormatError{Line: line, Field: field, Reason: fmt.Sprintf("not an integer: %q", tok), Err: err}
	}
	return n, nil
}

func nonEmptyLines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// SplitBlocks splits input into blocks separated by one or more blank lines.
func SplitBlocks(input string) []string {
	var (
		blocks []string
		cur    []string
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
