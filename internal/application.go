package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - plays one game on stdin/stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game reading from in and drawing to out.
// End of input and interrupts end the game quietly.
func Run(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var resultRepo repository.ResultRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		resultRepo = repository.NewResultRepository(redisStorage)
	}

	settings := usecase.Settings{
		BoardSize:  conf.BoardSize,
		FirstMover: conf.Mover(),
	}

	prompter := console.NewPrompter(ctx, in, out, config.MinBoardSize, config.MaxBoardSize)
	renderer := console.NewRenderer(out)

	gameManager := usecase.NewGameManager(logger, prompter, renderer, resultRepo, settings)

	result, err := gameManager.Run(ctx)
	switch {
	case errors.Is(err, console.ErrInputClosed):
		log.Info("Input closed before the game ended")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("Game completed", "gameID", result.ID, "status", result.Outcome.Status)

	return nil
}
