package application

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-referee/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-referee/internal/config"
	"github.com/rocketscienceinc/tictactoe-referee/internal/entity"
	"github.com/rocketscienceinc/tictactoe-referee/internal/parser"
	"github.com/rocketscienceinc/tictactoe-referee/internal/printer"
	"github.com/rocketscienceinc/tictactoe-referee/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if conf.BoardSize < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrBadBoardSize, conf.BoardSize)
	}

	if conf.NumPlayers < 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrBadPlayerCount, conf.NumPlayers)
	}

	moves, err := readMoves(conf.MovesPath)
	if err != nil {
		return err
	}

	log.Info("Playing moves",
		"board_size", conf.BoardSize,
		"num_players", conf.NumPlayers,
		"moves", len(moves),
	)

	game := entity.NewGame(conf.BoardSize, conf.NumPlayers)
	gamePlay := usecase.NewGamePlay(logger)

	statuses := gamePlay.PlayMoves(game, moves)

	if err = printer.WriteStatuses(os.Stdout, statuses); err != nil {
		return fmt.Errorf("could not write statuses: %w", err)
	}

	if err = printer.WriteBoard(os.Stdout, game); err != nil {
		return fmt.Errorf("could not write board: %w", err)
	}

	return nil
}

// readMoves - parses the move list from the configured file, or stdin
// when no path is set.
func readMoves(path string) ([]entity.Move, error) {
	var reader io.Reader = os.Stdin

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open moves file: %w", err)
		}
		defer file.Close()

		reader = file
	}

	moves, err := parser.ParseMoves(reader)
	if err != nil {
		return nil, fmt.Errorf("could not parse moves: %w", err)
	}

	return moves, nil
}
