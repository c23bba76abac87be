package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Board - a square grid of marks, indexed [row][col] from zero.
// Its size never changes after construction.
type Board struct {
	size   int
	cells  [][]Mark
	filled int
}

// NewBoard - creates an empty board. The caller guarantees size >= 3.
func NewBoard(size int) *Board {
	cells := make([][]Mark, size)
	for row := range cells {
		cells[row] = make([]Mark, size)
	}

	return &Board{
		size:  size,
		cells: cells,
	}
}

func (that *Board) Size() int {
	return that.size
}

// Filled - number of non-empty cells.
func (that *Board) Filled() int {
	return that.filled
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

func (that *Board) Get(row, col int) (Mark, error) {
	if !that.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row][col], nil
}

// Set - marks an empty cell. Cells can't be cleared once marked.
func (that *Board) Set(row, col int, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: can't place %q", ErrInvalidMark, mark.String())
	}

	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if that.cells[row][col] != Empty {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = mark
	that.filled++

	return nil
}

// Cells - returns a copy of the grid for read-only consumers.
func (that *Board) Cells() [][]Mark {
	cells := make([][]Mark, that.size)
	for row := range that.cells {
		cells[row] = append([]Mark(nil), that.cells[row]...)
	}

	return cells
}
