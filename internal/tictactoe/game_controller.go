package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MoveResult - what an accepted move did to the game.
type MoveResult struct {
	Row     int
	Col     int
	Mark    entity.Mark
	Outcome entity.Outcome
}

// GameController owns the board of a single game and is the only thing that mutates it.
type GameController struct {
	board     *entity.Board
	nextMover entity.Mark
	moveCount int
	outcome   entity.Outcome
}

// NewGameController - starts a game on a size x size board.
// The caller validates size (>= 3) and firstMover beforehand.
func NewGameController(size int, firstMover entity.Mark) *GameController {
	if !firstMover.IsPlayer() {
		panic(fmt.Sprintf("first mover must be X or O, got %q", firstMover.String()))
	}

	return &GameController{
		board:     entity.NewBoard(size),
		nextMover: firstMover,
		outcome:   entity.Ongoing(),
	}
}

// SubmitMove - places the current mover's mark at (row, col).
// A rejected move leaves the game untouched.
func (that *GameController) SubmitMove(row, col int) (MoveResult, error) {
	if that.outcome.IsTerminal() {
		return MoveResult{}, apperror.ErrGameAlreadyOver
	}

	mark := that.nextMover
	if err := that.board.Set(row, col, mark); err != nil {
		return MoveResult{}, fmt.Errorf("invalid move: %w", err)
	}

	that.moveCount++
	that.outcome = that.evaluate(mark, row, col)

	if !that.outcome.IsTerminal() {
		that.nextMover = mark.Opponent()
	}

	return MoveResult{
		Row:     row,
		Col:     col,
		Mark:    mark,
		Outcome: that.outcome,
	}, nil
}

func (that *GameController) CurrentMover() entity.Mark {
	return that.nextMover
}

// RoundNumber - the 1-based round of the move about to be played.
func (that *GameController) RoundNumber() int {
	return (that.moveCount + 2) / 2
}

func (that *GameController) Outcome() entity.Outcome {
	return that.outcome
}

func (that *GameController) MoveCount() int {
	return that.moveCount
}

func (that *GameController) Size() int {
	return that.board.Size()
}

func (that *GameController) Cells() [][]entity.Mark {
	return that.board.Cells()
}

// evaluate - checks only the lines through (row, col).
func (that *GameController) evaluate(mark entity.Mark, row, col int) entity.Outcome {
	size := that.board.Size()

	switch {
	case that.lineOf(mark, 0, col, 1, 0):
		return entity.Win(mark)
	case that.lineOf(mark, row, 0, 0, 1):
		return entity.Win(mark)
	case row == col && that.lineOf(mark, 0, 0, 1, 1):
		return entity.Win(mark)
	case row+col == size-1 && that.lineOf(mark, 0, size-1, 1, -1):
		return entity.Win(mark)
	}

	if that.moveCount == size*size {
		return entity.Draw()
	}

	return entity.Ongoing()
}

// lineOf - walks size cells from (row, col) by (dRow, dCol) and reports whether all hold mark.
func (that *GameController) lineOf(mark entity.Mark, row, col, dRow, dCol int) bool {
	for i := 0; i < that.board.Size(); i++ {
		cell, err := that.board.Get(row+i*dRow, col+i*dCol)
		if err != nil || cell != mark {
			return false
		}
	}

	return true
}
