package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - plays one game on the given streams.
func RunApp(logger *slog.Logger, in io.Reader, out io.Writer) error {
	gameLogger := logger.With("game_id", pkg.GenerateGameID())
	log := gameLogger.With("component", "app")

	cons := console.New(in, out)
	gameController := tictactoe.NewGameController(gameLogger, cons)

	log.Info("Starting game")

	outcome, err := gameController.Play()
	if err != nil {
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("Game over", "result", outcome.Result.String())

	return nil
}
