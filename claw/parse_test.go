package claw

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMachine(t *testing.T) {
	m, err := ParseMachine("Button A: X+94, Y+34\nButton B: X+22, Y+67\nPrize: X=8400, Y=5400")
	require.NoError(t, err)
	assert.Equal(t, Machine{
		ButtonA: Vector{X: 94, Y: 34},
		ButtonB: Vector{X: 22, Y: 67},
		Prize:   Vector{X: 8400, Y: 5400},
	}, m)
}

func TestParseMachineToleratesWhitespaceAndCRLF(t *testing.T) {
	m, err := ParseMachine("\r\nButton A: X+ 94 , Y+34 \r\nButton B: X+22, Y+ -67\r\nPrize: X= 8400, Y=5400\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, Vector{X: 94, Y: 34}, m.ButtonA)
	assert.Equal(t, Vector{X: 22, Y: -67}, m.ButtonB)
	assert.Equal(t, Vector{X: 8400, Y: 5400}, m.Prize)
}

func TestParseMachineErrors(t *testing.T) {
	tests := []struct {
		name    string
		block   string
		check   func(t *testing.T, err error)
		wantMsg string
	}{
		{
			name:  "empty block",
			block: "",
			check: func(t *testing.T, err error) {
				var ml *MissingLineError
				require.ErrorAs(t, err, &ml)
				assert.Equal(t, "Button A", ml.Label)
			},
		},
		{
			name:  "missing prize",
			block: "Button A: X+1, Y+2\nButton B: X+3, Y+4",
			check: func(t *testing.T, err error) {
				var ml *MissingLineError
				require.ErrorAs(t, err, &ml)
				assert.Equal(t, "Prize", ml.Label)
			},
		},
		{
			name:  "too many lines",
			block: "Button A: X+1, Y+2\nButton B: X+3, Y+4\nPrize: X=5, Y=6\nButton C: X+7, Y+8",
			check: func(t *testing.T, err error) {
				var tm *TooManyLinesError
				require.ErrorAs(t, err, &tm)
				assert.Equal(t, 4, tm.Count)
			},
		},
		{
			name:  "too few segments",
			block: "Button A: X+1 Y 2\nButton B: X+3, Y+4\nPrize: X=5, Y=6",
			check: func(t *testing.T, err error) {
				var fe *FormatError
				require.ErrorAs(t, err, &fe)
				assert.Empty(t, fe.Field)
			},
			wantMsg: "parse Button A",
		},
		{
			name:  "too many segments",
			block: "Button A: X+1, Y+2\nButton B: X+3, Y+4, Z+5\nPrize: X=5, Y=6",
			check: func(t *testing.T, err error) {
				var fe *FormatError
				require.ErrorAs(t, err, &fe)
			},
			wantMsg: "parse Button B",
		},
		{
			name:  "non-integer x",
			block: "Button A: X+1, Y+2\nButton B: X+3, Y+4\nPrize: X=five, Y=6",
			check: func(t *testing.T, err error) {
				var fe *FormatError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, "X", fe.Field)
				assert.True(t, errors.Is(err, strconv.ErrSyntax))
			},
			wantMsg: "parse Prize",
		},
		{
			name:  "empty y",
			block: "Button A: X+1, Y+\nButton B: X+3, Y+4\nPrize: X=5, Y=6",
			check: func(t *testing.T, err error) {
				var fe *FormatError
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, "Y", fe.Field)
			},
		},
		{
			name:  "overflow",
			block: "Button A: X+99999999999999999999, Y+2\nButton B: X+3, Y+4\nPrize: X=5, Y=6",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, strconv.ErrRange))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMachine(tt.block)
			require.Error(t, err)
			tt.check(t, err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestMachineStringRoundTrip(t *testing.T) {
	machines := []Machine{
		{ButtonA: Vector{94, 34}, ButtonB: Vector{22, 67}, Prize: Vector{8400, 5400}},
		{ButtonA: Vector{-3, 0}, ButtonB: Vector{0, -7}, Prize: Vector{-10000000000000, 12}},
		{},
	}
	for _, m := range machines {
		got, err := ParseMachine(m.String())
		require.NoError(t, err, m.String())
		assert.Equal(t, m, got)
	}
}

func TestSplitBlocks(t *testing.T) {
	blocks := SplitBlocks(exampleInput)
	require.Len(t, blocks, 4)
	assert.Equal(t, "Button A: X+94, Y+34\nButton B: X+22, Y+67\nPrize: X=8400, Y=5400", blocks[0])

	assert.Equal(t, []string{"a\nb", "c"}, SplitBlocks("\n\na\r\nb\r\n\r\n  \n\nc\n\n"))
	assert.Empty(t, SplitBlocks(" \n\n"))
}
