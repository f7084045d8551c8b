package claw

import "fmt"

// Vector is an integer (x, y) pair: a button displacement or a prize position.
type Vector struct {
	X int64
	Y int64
}

// Add returns v shifted by w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v multiplied by n on both axes.
func (v Vector) Scale(n int64) Vector {
	return Vector{X: v.X * n, Y: v.Y * n}
}

// Machine describes one claw machine.
type Machine struct {
	ButtonA Vector
	ButtonB Vector
	Prize   Vector
}

// Adjusted returns a copy of m with delta added to both prize coordinates.
// It fails with ErrOverflow when a coordinate would leave the int64 range.
func (m Machine) Adjusted(delta int64) (Machine, error) {
	x, okX := addInt64(m.Prize.X, delta)
	y, okY := addInt64(m.Prize.Y, delta)
	if !okX || !okY {
		return Machine{}, fmt.Errorf("adjust prize %d,%d by %d: %w", m.Prize.X, m.Prize.Y, delta, ErrOverflow)
	}
	m.Prize = Vector{X: x, Y: y}
	return m, nil
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

// String renders m in the block format accepted by ParseMachine.
func (m Machine) String() string {
	return fmt.Sprintf("%s: X+%d, Y+%d\n%s: X+%d, Y+%d\n%s: X=%d, Y=%d",
		labelButtonA, m.ButtonA.X, m.ButtonA.Y,
		labelButtonB, m.ButtonB.X, m.ButtonB.Y,
		labelPrize, m.Prize.X, m.Prize.Y)
}
