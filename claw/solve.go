package claw

import (
	"math"
	"math/big"
)

// Token prices per press.
const (
	CostA int64 = 3
	CostB int64 = 1
)

// Presses holds the press counts that win a machine's prize.
type Presses struct {
	A int64
	B int64
}

// Cost returns the tokens spent on p.
func (p Presses) Cost() int64 {
	return CostA*p.A + CostB*p.B
}

// Presses solves A*buttonA + B*buttonB == prize over the non-negative
// integers using Cramer's rule. Parallel buttons (zero determinant) are
// reported as unsolvable, as are solutions whose cost does not fit in an
// int64.
//
// Products of int64 operands need up to 127 bits, so the determinant and
// numerators are computed exactly with big.Int.
func (m Machine) Presses() (Presses, bool) {
	a, b, p := m.ButtonA, m.ButtonB, m.Prize

	det := cross(a.X, b.Y, b.X, a.Y)
	if det.Sign() == 0 {
		return Presses{}, false
	}

	xNum := cross(b.Y, p.X, b.X, p.Y)
	yNum := cross(a.X, p.Y, a.Y, p.X)

	var x, y, rem big.Int
	if x.QuoRem(xNum, det, &rem); rem.Sign() != 0 {
		return Presses{}, false
	}
	if y.QuoRem(yNum, det, &rem); rem.Sign() != 0 {
		return Presses{}, false
	}
	if x.Sign() < 0 || y.Sign() < 0 || !x.IsInt64() || !y.IsInt64() {
		return Presses{}, false
	}

	pr := Presses{A: x.Int64(), B: y.Int64()}
	if pr.B > math.MaxInt64/CostB || pr.A > (math.MaxInt64-CostB*pr.B)/CostA {
		return Presses{}, false
	}
	return pr, true
}

// cross returns p*q - r*s without overflow.
func cross(p, q, r, s int64) *big.Int {
	lhs := new(big.Int).Mul(big.NewInt(p), big.NewInt(q))
	rhs := new(big.Int).Mul(big.NewInt(r), big.NewInt(s))
	return lhs.Sub(lhs, rhs)
}

// Solve returns the minimum cost to win m's prize. ok is false when no
// non-negative integer solution exists.
func Solve(m Machine) (cost int64, ok bool) {
	p, ok := m.Presses()
	if !ok {
		return 0, false
	}
	return p.Cost(), true
}
