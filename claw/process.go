package claw

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// LargeTargetAdjustment is added to both prize coordinates in large-target mode.
const LargeTargetAdjustment int64 = 10_000_000_000_000

// BlockError records a block that failed to parse.
type BlockError struct {
	Index int // zero-based block position in the input
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Index+1, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// Result is the outcome for a single parsed machine.
type Result struct {
	Index   int
	Machine Machine
	Presses Presses
	Solved  bool
}

// Summary aggregates the results of one run.
type Summary struct {
	Total    int64
	Machines int
	Solved   int
	Results  []Result
	Skipped  []BlockError
}

// Any reports whether at least one machine produced a cost.
func (s Summary) Any() bool { return s.Solved > 0 }

// Strict returns the joined parse errors of all skipped blocks, or nil.
func (s Summary) Strict() error {
	if len(s.Skipped) == 0 {
		return nil
	}
	errs := make([]error, len(s.Skipped))
	for i := range s.Skipped {
		errs[i] = &s.Skipped[i]
	}
	return errors.Join(errs...)
}

type options struct {
	adjustment int64
}

// Option configures Process.
type Option func(*options)

// WithPrizeAdjustment adds delta to every prize before solving.
func WithPrizeAdjustment(delta int64) Option {
	return func(o *options) { o.adjustment = delta }
}

// Process parses every block of input, solves each machine and sums the
// costs. A leading UTF-8 byte order mark is ignored. Blocks that fail to
// parse, or whose adjusted prize or running total overflows, are recorded in
// Summary.Skipped and contribute nothing to the total.
func Process(input string, opts ...Option) Summary {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var s Summary
	for i, block := range SplitBlocks(strings.TrimPrefix(input, "\ufeff")) {
		m, err := ParseMachine(block)
		if err != nil {
			s.Skipped = append(s.Skipped, BlockError{Index: i, Err: err})
			continue
		}
		if o.adjustment != 0 {
			if m, err = m.Adjusted(o.adjustment); err != nil {
				s.Skipped = append(s.Skipped, BlockError{Index: i, Err: err})
				continue
			}
		}
		s.Machines++

		r := Result{Index: i, Machine: m}
		r.Presses, r.Solved = m.Presses()
		if r.Solved {
			total, ok := addInt64(s.Total, r.Presses.Cost())
			if !ok {
				r.Solved = false
				s.Skipped = append(s.Skipped, BlockError{Index: i, Err: fmt.Errorf("total cost: %w", ErrOverflow)})
			} else {
				s.Solved++
				s.Total = total
			}
		}
		s.Results = append(s.Results, r)
	}
	return s
}

// ProcessReader reads all of r and runs Process on it.
func ProcessReader(r io.Reader, opts ...Option) (Summary, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Summary{}, fmt.Errorf("read input: %w", err)
	}
	return Process(string(b), opts...), nil
}

// PartOne sums costs with prizes as given.
func PartOne(input string) Summary { return Process(input) }

// PartTwo sums costs with every prize moved by LargeTargetAdjustment.
func PartTwo(input string) Summary {
	return Process(input, WithPrizeAdjustment(LargeTargetAdjustment))
}
