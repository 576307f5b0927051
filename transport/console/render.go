package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var rowSeparator = strings.Repeat("-", 9)

func renderBoard(w io.Writer, board *entity.Board) {
	for _, row := range board {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell.String())
		}

		fmt.Fprintln(w, strings.Join(cells, " | "))
		fmt.Fprintln(w, rowSeparator)
	}
}
