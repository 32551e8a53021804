package printer

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-referee/internal/entity"
)

// WriteStatuses writes one status code per line.
func WriteStatuses(w io.Writer, statuses []int) error {
	for _, status := range statuses {
		if _, err := fmt.Fprintln(w, status); err != nil {
			return fmt.Errorf("failed to write status: %w", err)
		}
	}

	return nil
}

// WriteBoard dumps the grid, one row per line, each cell owner followed
// by a space. Unclaimed cells print as 0. The game is only read.
func WriteBoard(w io.Writer, game *entity.Game) error {
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			cell := game.Cell(entity.Location{Row: row, Col: col})
			if _, err := fmt.Fprintf(w, "%d ", cell); err != nil {
				return fmt.Errorf("failed to write board: %w", err)
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("failed to write board: %w", err)
		}
	}

	return nil
}
