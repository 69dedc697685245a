// Package board holds the fixed 10x10 serpentine layout and its connector tables.
package board

import (
	"fmt"

	"github.com/rocketscienceinc/snakesladders-backend/internal/apperror"
)

const (
	Size = 10
	Goal = Size * Size
)

// Cell is a grid coordinate. Row 0 is the top visual row.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Center returns the pixel centre of the cell on a board drawn with square cells of cellSize.
func (that Cell) Center(cellSize float64) (float64, float64) {
	x := float64(that.Col)*cellSize + cellSize/2
	y := float64(that.Row)*cellSize + cellSize/2

	return x, y
}

// PositionToCell maps a square in [1, 100] to its grid cell.
func PositionToCell(pos int) (Cell, error) {
	if pos < 1 || pos > Goal {
		return Cell{}, fmt.Errorf("%w: got %d", apperror.ErrPositionOutOfRange, pos)
	}

	zeroBased := pos - 1
	row := Size - 1 - zeroBased/Size
	col := zeroBased % Size

	if isReversedRow(row) {
		col = Size - 1 - col
	}

	return Cell{Row: row, Col: col}, nil
}

// CellToPosition is the inverse of PositionToCell.
func CellToPosition(row, col int) (int, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, fmt.Errorf("%w: got (%d, %d)", apperror.ErrCellOutOfRange, row, col)
	}

	base := Size * (Size - row - 1)
	if isReversedRow(row) {
		return base + (Size - col), nil
	}

	return base + col + 1, nil
}

// isReversedRow - rows at an odd distance from the bottom read right-to-left.
func isReversedRow(row int) bool {
	return (Size-row)%2 == 0
}
