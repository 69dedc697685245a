// Package view builds what the presentation layer draws and prints:
// the board grid, connector lines, player tokens and status lines.
package view

import (
	"github.com/rocketscienceinc/snakesladders-backend/internal/board"
)

// CellSize is the edge, in pixels, of one square on a 500px board.
const CellSize = 50.0

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SquareView struct {
	Position int        `json:"position"`
	Cell     board.Cell `json:"cell"`
	Dark     bool       `json:"dark"`
}

type ConnectorView struct {
	board.Connector
	FromCell  board.Cell `json:"from_cell"`
	ToCell    board.Cell `json:"to_cell"`
	FromPoint Point      `json:"from_point"`
	ToPoint   Point      `json:"to_point"`
}

type BoardView struct {
	Size     int                                `json:"size"`
	CellSize float64                            `json:"cell_size"`
	Squares  [board.Size][board.Size]SquareView `json:"squares"`
	Ladders  []ConnectorView                    `json:"ladders"`
	Snakes   []ConnectorView                    `json:"snakes"`
}

// NewBoardView lays out the board row by row from the top, the way it is drawn.
func NewBoardView() BoardView {
	view := BoardView{
		Size:     board.Size,
		CellSize: CellSize,
	}

	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			// row and col are always on the board here
			pos, _ := board.CellToPosition(row, col)

			view.Squares[row][col] = SquareView{
				Position: pos,
				Cell:     board.Cell{Row: row, Col: col},
				Dark:     (row+col)%2 == 0,
			}
		}
	}

	for _, connector := range board.Connectors() {
		connectorView := newConnectorView(connector)

		if connector.Kind == board.ConnectorLadder {
			view.Ladders = append(view.Ladders, connectorView)
		} else {
			view.Snakes = append(view.Snakes, connectorView)
		}
	}

	return view
}

func newConnectorView(connector board.Connector) ConnectorView {
	// connector squares are always between 1 and 100
	from, _ := board.PositionToCell(connector.From)
	to, _ := board.PositionToCell(connector.To)

	return ConnectorView{
		Connector: connector,
		FromCell:  from,
		ToCell:    to,
		FromPoint: center(from),
		ToPoint:   center(to),
	}
}

func center(cell board.Cell) Point {
	x, y := cell.Center(CellSize)

	return Point{X: x, Y: y}
}
