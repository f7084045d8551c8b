package claw

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartOne(t *testing.T) {
	s := PartOne(exampleInput)
	assert.Equal(t, int64(480), s.Total)
	assert.Equal(t, 4, s.Machines)
	assert.Equal(t, 2, s.Solved)
	assert.Empty(t, s.Skipped)
	assert.True(t, s.Any())
	require.NoError(t, s.Strict())

	require.Len(t, s.Results, 4)
	assert.Equal(t, Presses{A: 80, B: 40}, s.Results[0].Presses)
	assert.False(t, s.Results[1].Solved)
	assert.Equal(t, Presses{A: 38, B: 86}, s.Results[2].Presses)
	assert.False(t, s.Results[3].Solved)
}

func TestPartTwo(t *testing.T) {
	s := PartTwo(exampleInput)
	assert.Equal(t, int64(875318608908), s.Total)
	assert.Equal(t, 2, s.Solved)
	assert.False(t, s.Results[0].Solved)
	assert.True(t, s.Results[1].Solved)
	assert.Equal(t, Vector{10000000012748, 10000000012176}, s.Results[1].Machine.Prize)
}

func TestProcessSkipsMalformedBlocks(t *testing.T) {
	input := exampleInput + "\nButton A: X+1\nButton B: X+2, Y+3\nPrize: X=4, Y=5\n\nButton A: X+1, Y+1\n"
	s := Process(input)
	assert.Equal(t, int64(480), s.Total)
	assert.Equal(t, 4, s.Machines)
	require.Len(t, s.Skipped, 2)
	assert.Equal(t, 4, s.Skipped[0].Index)
	assert.Equal(t, 5, s.Skipped[1].Index)

	err := s.Strict()
	require.Error(t, err)
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
	var ml *MissingLineError
	assert.True(t, errors.As(err, &ml))
	assert.Equal(t, "Button B", ml.Label)
	assert.Contains(t, err.Error(), "block 5:")
}

func TestProcessNothingSolved(t *testing.T) {
	s := Process("Button A: X+26, Y+66\nButton B: X+67, Y+21\nPrize: X=12748, Y=12176\n")
	assert.Zero(t, s.Total)
	assert.False(t, s.Any())

	s = Process("")
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Machines)
	assert.False(t, s.Any())
}

func TestProcessReader(t *testing.T) {
	s, err := ProcessReader(strings.NewReader(exampleInput), WithPrizeAdjustment(LargeTargetAdjustment))
	require.NoError(t, err)
	assert.Equal(t, int64(875318608908), s.Total)
}

func TestProcessAdjustmentOverflow(t *testing.T) {
	input := "Button A: X+1, Y+0\nButton B: X+0, Y+1\nPrize: X=9223372036854775807, Y=1\n\n" + exampleInput
	s := Process(input, WithPrizeAdjustment(1))
	assert.Equal(t, 4, s.Machines)
	require.Len(t, s.Skipped, 1)
	assert.Equal(t, 0, s.Skipped[0].Index)
	assert.ErrorIs(t, s.Strict(), ErrOverflow)
}

func TestProcessByteOrderMark(t *testing.T) {
	s := Process("\ufeff" + exampleInput)
	assert.Equal(t, int64(480), s.Total)
	assert.Empty(t, s.Skipped)
}

func TestProcessTotalOverflow(t *testing.T) {
	block := "Button A: X+1, Y+0\nButton B: X+0, Y+1\nPrize: X=0, Y=9223372036854775807\n"
	s := Process(block + "\n" + block)
	assert.Equal(t, int64(math.MaxInt64), s.Total)
	assert.Equal(t, 1, s.Solved)
	require.Len(t, s.Skipped, 1)
	assert.Equal(t, 1, s.Skipped[0].Index)
	assert.ErrorIs(t, s.Strict(), ErrOverflow)
	assert.False(t, s.Results[1].Solved)
}
