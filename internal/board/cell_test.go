package board

import (
	"testing"

	"github.com/rocketscienceinc/snakesladders-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionToCell_Bijection(t *testing.T) {
	seen := make(map[Cell]int, Goal)

	for pos := 1; pos <= Goal; pos++ {
		// When: mapping a square to its cell and back
		cell, err := PositionToCell(pos)
		require.NoError(t, err)

		got, err := CellToPosition(cell.Row, cell.Col)
		require.NoError(t, err)

		// Then: the round trip returns the same square and no cell is used twice
		require.Equal(t, pos, got, "cell %+v", cell)

		prev, dup := seen[cell]
		require.False(t, dup, "cell %+v used by %d and %d", cell, prev, pos)
		seen[cell] = pos
	}

	require.Len(t, seen, Size*Size)
}

func TestCellToPosition_Bijection(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pos, err := CellToPosition(row, col)
			require.NoError(t, err)

			cell, err := PositionToCell(pos)
			require.NoError(t, err)
			require.Equal(t, Cell{Row: row, Col: col}, cell)
		}
	}
}

func TestPositionToCell_RowBoundaries(t *testing.T) {
	t.Run("Squares 1 to 10 are on the bottom row, left to right", func(t *testing.T) {
		for pos := 1; pos <= 10; pos++ {
			cell, err := PositionToCell(pos)
			require.NoError(t, err)
			assert.Equal(t, Cell{Row: Size - 1, Col: pos - 1}, cell)
		}
	})

	t.Run("Squares 91 to 100 are on the top row, right to left", func(t *testing.T) {
		for pos := 91; pos <= 100; pos++ {
			cell, err := PositionToCell(pos)
			require.NoError(t, err)
			assert.Equal(t, Cell{Row: 0, Col: 100 - pos}, cell)
		}
	})
}

func TestPositionToCell_Serpentine(t *testing.T) {
	// Given: the last square of the bottom row and the first square of the next one
	ten, err := PositionToCell(10)
	require.NoError(t, err)

	eleven, err := PositionToCell(11)
	require.NoError(t, err)

	// Then: they share a column on adjacent rows
	assert.Equal(t, ten.Col, eleven.Col)
	assert.Equal(t, ten.Row-1, eleven.Row)

	// And: the second row runs right to left
	twenty, err := PositionToCell(20)
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 8, Col: 0}, twenty)

	// And: the third row runs left to right again
	twentyOne, err := PositionToCell(21)
	require.NoError(t, err)
	assert.Equal(t, Cell{Row: 7, Col: 0}, twentyOne)
}

func TestPositionToCell_OutOfDomain(t *testing.T) {
	for _, pos := range []int{-1, 0, 101, 1000} {
		_, err := PositionToCell(pos)

		require.ErrorIs(t, err, apperror.ErrPositionOutOfRange)
		require.ErrorIs(t, err, apperror.ErrDomain)
	}
}

func TestCellToPosition_OutOfDomain(t *testing.T) {
	cases := [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {10, 10}}

	for _, c := range cases {
		_, err := CellToPosition(c[0], c[1])

		require.ErrorIs(t, err, apperror.ErrCellOutOfRange)
		require.ErrorIs(t, err, apperror.ErrDomain)
	}
}

func TestCell_Center(t *testing.T) {
	cell := Cell{Row: 9, Col: 2}

	x, y := cell.Center(50)

	assert.InDelta(t, 125.0, x, 0.0001)
	assert.InDelta(t, 475.0, y, 0.0001)
}
