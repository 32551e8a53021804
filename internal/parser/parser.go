package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-referee/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-referee/internal/entity"
)

const tokensPerMove = 3

// ParseMoves reads whitespace-delimited integers from r and groups them
// into (player, row, col) triples. Spaces, tabs, and newlines may be
// mixed freely; an empty input yields an empty move list.
func ParseMoves(r io.Reader) ([]entity.Move, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []int

	for scanner.Scan() {
		value, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperror.ErrBadMoveToken, scanner.Text())
		}

		values = append(values, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read moves: %w", err)
	}

	if rest := len(values) % tokensPerMove; rest != 0 {
		return nil, fmt.Errorf("%w: %d trailing value(s)", apperror.ErrTruncatedMove, rest)
	}

	moves := make([]entity.Move, 0, len(values)/tokensPerMove)
	for i := 0; i < len(values); i += tokensPerMove {
		moves = append(moves, entity.Move{
			Player: entity.Player(values[i]),
			Loc:    entity.Location{Row: values[i+1], Col: values[i+2]},
		})
	}

	return moves, nil
}
