package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player tic-tac-toe in the terminal",
		Long: "Players X and O take turns entering a cell number from 1 to 9.\n" +
			"Cells are numbered left to right, top to bottom.",
		Args: cobra.NoArgs,
		// no flags at all, so -h/--help count as unexpected arguments
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig()
			logger := initLogger(conf, cmd.ErrOrStderr())

			if err := app.RunApp(logger, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Logs never go to stdout, which belongs to the game.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	level, _ := conf.Level()

	opts := &slog.HandlerOptions{Level: level}

	if conf.LogFormat == config.FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
