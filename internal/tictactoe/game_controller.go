package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MinMove = 1
	MaxMove = entity.BoardSize

	promptFormat     = "Player %s, enter a move (1-%d): "
	invalidNumberMsg = "Invalid input. Please enter a number from 1 to 9."
	outOfRangeFormat = "Move %s is out of range. Please enter a number from 1 to 9."
	occupiedFormat   = "Cell %d is already occupied. Try again."
	winFormat        = "Player %s wins!"
	drawMsg          = "It's a draw!"
)

type lineIO interface {
	ReadLine(prompt string) (string, error)
	Print(text string) error
	Println(text string) error
}

type GameController struct {
	logger *slog.Logger
	io     lineIO

	board   *entity.Board
	turn    entity.Mark
	outcome entity.Outcome
}

func NewGameController(logger *slog.Logger, io lineIO) *GameController {
	return &GameController{
		logger: logger.With("component", "game-controller"),
		io:     io,
		board:  entity.NewBoard(),
		turn:   entity.PlayerX,
	}
}

func (that *GameController) Turn() entity.Mark {
	return that.turn
}

func (that *GameController) Board() entity.Board {
	return *that.board
}

// Play - runs the prompt loop until the game is won or drawn.
// The only error that ends the loop early is a failure of the console.
func (that *GameController) Play() (entity.Outcome, error) {
	log := that.logger.With("method", "Play")

	for {
		if err := that.io.Print(that.board.Render()); err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to render board: %w", err)
		}

		line, err := that.io.ReadLine(fmt.Sprintf(promptFormat, that.turn, MaxMove))
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to read move: %w", err)
		}

		cell, err := that.validateMove(line)
		if err != nil {
			log.Debug("move rejected", "player", that.turn.String(), "input", line, "error", err)

			if err = that.io.Println(rejectionMessage(err, line, cell)); err != nil {
				return entity.Outcome{}, fmt.Errorf("failed to report rejected move: %w", err)
			}

			continue
		}

		player := that.turn
		outcome, err := that.MakeTurn(cell)
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("invalid turn: %w", err)
		}

		log.Debug("move accepted", "player", player.String(), "cell", cell)

		if outcome.IsFinished() {
			if err = that.announce(outcome); err != nil {
				return entity.Outcome{}, err
			}

			log.Info("game finished", "result", outcome.Result.String(), "winner", outcome.Winner.String(),
				"marks", that.board.Marks())

			return outcome, nil
		}
	}
}

// MakeTurn - places the current player's mark on a 0-indexed cell and either
// finishes the game or passes the turn to the opponent.
func (that *GameController) MakeTurn(cell int) (entity.Outcome, error) {
	if that.outcome.IsFinished() {
		return that.outcome, apperror.ErrGameFinished
	}

	if err := that.board.Place(cell, that.turn); err != nil {
		return that.outcome, fmt.Errorf("failed to place mark: %w", err)
	}

	that.outcome = that.board.Evaluate(that.turn)
	if !that.outcome.IsFinished() {
		that.turn = that.turn.Opponent()
	}

	return that.outcome, nil
}

// validateMove - converts a line of input to a free 0-indexed cell.
func (that *GameController) validateMove(line string) (int, error) {
	cell, err := ParseMove(line)
	if err != nil {
		return cell, err
	}

	if that.board.Occupied(cell) {
		return cell, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell+1)
	}

	return cell, nil
}

func (that *GameController) announce(outcome entity.Outcome) error {
	if err := that.io.Print(that.board.Render()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	msg := drawMsg
	if outcome.Result == entity.Win {
		msg = fmt.Sprintf(winFormat, outcome.Winner)
	}

	if err := that.io.Println(msg); err != nil {
		return fmt.Errorf("failed to announce result: %w", err)
	}

	return nil
}

// ParseMove - converts a 1-indexed move typed by a player to a 0-indexed cell.
// A single leading plus sign is accepted.
func ParseMove(line string) (int, error) {
	text := strings.TrimSpace(line)
	digits, _ := strings.CutPrefix(text, "+")

	move, err := strconv.ParseUint(digits, 10, 0)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return -1, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, text)
		}

		return -1, fmt.Errorf("%w: %q", apperror.ErrInvalidNumber, text)
	}

	if move < MinMove || move > MaxMove {
		return -1, fmt.Errorf("%w: %d", apperror.ErrOutOfRange, move)
	}

	return int(move) - 1, nil
}

func rejectionMessage(err error, line string, cell int) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		return fmt.Sprintf(outOfRangeFormat, strings.TrimSpace(line))
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf(occupiedFormat, cell+1)
	default:
		return invalidNumberMsg
	}
}
