package usecase

import (
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-referee/internal/entity"
	"github.com/rocketscienceinc/tictactoe-referee/internal/tictactoe"
)

// GamePlay drives a game through an ordered list of moves.
type GamePlay struct {
	logger *slog.Logger
}

func NewGamePlay(logger *slog.Logger) *GamePlay {
	return &GamePlay{
		logger: logger,
	}
}

// PlayMoves feeds moves to the game in order and collects one status code
// per processed move. Processing stops after the first positive status
// (win or draw); invalid moves report a negative status and the game
// keeps accepting moves.
func (that *GamePlay) PlayMoves(game *entity.Game, moves []entity.Move) []int {
	log := that.logger.With("component", "gameplay")

	statuses := make([]int, 0, len(moves))

	for _, move := range moves {
		result := tictactoe.MakeMove(game, move.Player, move.Loc)
		status := tictactoe.GameStatus(game, result, move.Player)
		statuses = append(statuses, status)

		log.Debug("processed move",
			"player", int(move.Player),
			"row", move.Loc.Row,
			"col", move.Loc.Col,
			"result", result.String(),
			"status", status,
		)

		if status > entity.StatusNextPlayer {
			break
		}
	}

	return statuses
}
