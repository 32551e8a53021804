package parser

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-referee/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-referee/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoves(t *testing.T) {
	t.Run("Parses one triple per line", func(t *testing.T) {
		// Given: two moves, one per line
		input := "1 0 0\n2 1 1\n"

		// When: the input is parsed
		moves, err := ParseMoves(strings.NewReader(input))

		// Then: both triples come back in order
		require.NoError(t, err)
		assert.Equal(t, []entity.Move{
			{Player: 1, Loc: entity.Location{Row: 0, Col: 0}},
			{Player: 2, Loc: entity.Location{Row: 1, Col: 1}},
		}, moves)
	})

	t.Run("Accepts arbitrary whitespace between values", func(t *testing.T) {
		// Given: triples split across lines, tabs, and extra spaces
		input := "  1\t0\n0   2 1\n\n1  "

		// When: the input is parsed
		moves, err := ParseMoves(strings.NewReader(input))

		// Then: grouping only depends on value order
		require.NoError(t, err)
		assert.Equal(t, []entity.Move{
			{Player: 1, Loc: entity.Location{Row: 0, Col: 0}},
			{Player: 2, Loc: entity.Location{Row: 1, Col: 1}},
		}, moves)
	})

	t.Run("Accepts negative values", func(t *testing.T) {
		// Off-board coordinates are legal input; the engine classifies them.
		moves, err := ParseMoves(strings.NewReader("1 -1 0"))

		require.NoError(t, err)
		assert.Equal(t, []entity.Move{
			{Player: 1, Loc: entity.Location{Row: -1, Col: 0}},
		}, moves)
	})

	t.Run("Empty input yields no moves and no error", func(t *testing.T) {
		moves, err := ParseMoves(strings.NewReader("  \n\t\n"))

		require.NoError(t, err)
		assert.Empty(t, moves)
	})

	t.Run("Rejects non-integer tokens", func(t *testing.T) {
		// When: a token is not an integer
		moves, err := ParseMoves(strings.NewReader("1 0 zero"))

		// Then: the offending token is reported
		require.ErrorIs(t, err, apperror.ErrBadMoveToken)
		assert.Contains(t, err.Error(), `"zero"`)
		assert.Nil(t, moves)
	})

	t.Run("Rejects a trailing partial triple", func(t *testing.T) {
		moves, err := ParseMoves(strings.NewReader("1 0 0 2 1"))

		require.ErrorIs(t, err, apperror.ErrTruncatedMove)
		assert.Nil(t, moves)
	})
}
