package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type prompter interface {
	AskSize(ctx context.Context) (int, error)
	AskFirstMover(ctx context.Context) (entity.Mark, error)
	ReadMove(ctx context.Context) (int, int, error)
}

type renderer interface {
	Welcome()
	Turn(round int, mover entity.Mark)
	Board(cells [][]entity.Mark)
	Rejected(err error, size int)
	Outcome(cells [][]entity.Mark, outcome entity.Outcome)
	Tally(tally *entity.Tally)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Tally(ctx context.Context) (*entity.Tally, error)
}

// Settings - preset game options. Zero values are asked on the prompt.
type Settings struct {
	BoardSize  int
	FirstMover entity.Mark
}

// GameManager drives one game from the prompt to the final outcome.
type GameManager struct {
	logger *slog.Logger

	prompter   prompter
	renderer   renderer
	resultRepo resultRepo
	settings   Settings
}

// NewGameManager - resultRepo may be nil, then finished games aren't recorded.
func NewGameManager(logger *slog.Logger, prompter prompter, renderer renderer, resultRepo resultRepo, settings Settings) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		prompter:   prompter,
		renderer:   renderer,
		resultRepo: resultRepo,
		settings:   settings,
	}
}

// Run - greets the players, settles the board size and first mover, and plays a game.
func (that *GameManager) Run(ctx context.Context) (*entity.GameResult, error) {
	that.renderer.Welcome()

	size := that.settings.BoardSize
	if size == 0 {
		var err error
		if size, err = that.prompter.AskSize(ctx); err != nil {
			return nil, fmt.Errorf("failed to get board size: %w", err)
		}
	}

	firstMover := that.settings.FirstMover
	if firstMover == entity.Empty {
		var err error
		if firstMover, err = that.prompter.AskFirstMover(ctx); err != nil {
			return nil, fmt.Errorf("failed to get first mover: %w", err)
		}
	}

	return that.Play(ctx, size, firstMover)
}

// Play - runs the move loop until the game is won or drawn.
func (that *GameManager) Play(ctx context.Context, size int, firstMover entity.Mark) (*entity.GameResult, error) {
	gameID := pkg.GenerateGameID()
	log := that.logger.With("method", "Play", "gameID", gameID)

	game := tictactoe.NewGameController(size, firstMover)
	log.Info("game started", "size", size, "firstMover", firstMover.String())

	for !game.Outcome().IsTerminal() {
		that.renderer.Turn(game.RoundNumber(), game.CurrentMover())

		if err := that.playTurn(ctx, log, game); err != nil {
			return nil, err
		}
	}

	outcome := game.Outcome()
	that.renderer.Outcome(game.Cells(), outcome)

	log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner.String(), "moves", game.MoveCount())

	result := &entity.GameResult{
		ID:         gameID,
		Size:       size,
		FirstMover: firstMover,
		Outcome:    outcome,
		Moves:      game.MoveCount(),
		Board:      game.Cells(),
		FinishedAt: time.Now().UTC(),
	}

	that.recordResult(ctx, log, result)

	return result, nil
}

// playTurn - reads moves until the game accepts one.
func (that *GameManager) playTurn(ctx context.Context, log *slog.Logger, game *tictactoe.GameController) error {
	for {
		that.renderer.Board(game.Cells())

		row, col, err := that.prompter.ReadMove(ctx)
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		move, err := game.SubmitMove(row, col)
		if errors.Is(err, apperror.ErrOutOfBounds) || errors.Is(err, apperror.ErrCellOccupied) {
			log.Debug("move rejected", "row", row, "col", col, "error", err)
			that.renderer.Rejected(err, game.Size())
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to submit move: %w", err)
		}

		log.Debug("move accepted", "row", move.Row, "col", move.Col, "mark", move.Mark.String())

		return nil
	}
}

// recordResult - a scoreboard failure doesn't spoil a finished game.
func (that *GameManager) recordResult(ctx context.Context, log *slog.Logger, result *entity.GameResult) {
	if that.resultRepo == nil {
		return
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save game result", "error", err)
		return
	}

	tally, err := that.resultRepo.Tally(ctx)
	if err != nil {
		log.Error("failed to get tally", "error", err)
		return
	}

	that.renderer.Tally(tally)
}
