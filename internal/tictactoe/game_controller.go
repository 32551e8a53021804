package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-referee/internal/entity"
)

// MakeMove validates player's attempt at loc, applies it when legal, and
// classifies the outcome. The expected-player counter advances on every
// call: an out-of-turn attempt still consumes its turn slot.
func MakeMove(game *entity.Game, player entity.Player, loc entity.Location) entity.MoveResult {
	wrongPlayer := player != game.Turn
	game.AdvanceTurn()

	if wrongPlayer || !game.InBounds(loc) {
		return entity.MoveInvalid
	}

	// A full board is terminal before the occupied-cell check, otherwise
	// every attempt past the last fillable cell would read as occupied.
	if game.IsFull() {
		return entity.MoveDraw
	}

	if game.Cell(loc) != entity.NoPlayer {
		return entity.MoveInvalid
	}

	game.SetCell(loc, player)
	game.ValidMoves++

	return checkForWin(game, loc, player)
}

// checkForWin reports whether player's move at loc completed a full row,
// column, or diagonal. All candidate lines are scanned in a single O(N)
// pass; the scan bails out as soon as none of them can still win.
func checkForWin(game *entity.Game, loc entity.Location, player entity.Player) entity.MoveResult {
	size := game.BoardSize

	rowWin := true
	colWin := true
	// Diagonals only qualify when the move sits on them.
	diagWinDown := loc.Row == loc.Col
	diagWinUp := loc.Row == size-loc.Col-1

	for idx := 0; idx < size; idx++ {
		if rowWin {
			rowWin = game.Cell(entity.Location{Row: loc.Row, Col: idx}) == player
		}
		if colWin {
			colWin = game.Cell(entity.Location{Row: idx, Col: loc.Col}) == player
		}
		if diagWinDown {
			diagWinDown = game.Cell(entity.Location{Row: idx, Col: idx}) == player
		}
		if diagWinUp {
			diagWinUp = game.Cell(entity.Location{Row: idx, Col: size - idx - 1}) == player
		}

		if !rowWin && !colWin && !diagWinDown && !diagWinUp {
			return entity.MoveContinue
		}
	}

	return entity.MoveWin
}

// GameStatus converts a move result into the public status code: the
// winner's id for a win, the tie sentinel for a draw, the negated id of
// the attempting player for an invalid move, and StatusNextPlayer while
// the game is undecided.
func GameStatus(game *entity.Game, result entity.MoveResult, player entity.Player) int {
	switch result {
	case entity.MoveWin:
		return int(player)
	case entity.MoveDraw:
		return game.TieStatus()
	case entity.MoveInvalid:
		return -int(player)
	case entity.MoveContinue:
		return entity.StatusNextPlayer
	default:
		panic(fmt.Sprintf("unknown move result: %d", result))
	}
}
