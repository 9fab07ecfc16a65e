package tictactoe

import "github.com/rocketscienceinc/tictactoe-tournament/internal/entity"

type direction struct {
	row, col int
}

// directions - right, down, down-right and down-left. Together with scanning from every
// cell they cover every straight line on the board.
var directions = [...]direction{
	{row: 0, col: 1},
	{row: 1, col: 0},
	{row: 1, col: 1},
	{row: 1, col: -1},
}

// HasStreak - reports whether mark occupies streak consecutive cells in a row, column or diagonal.
func HasStreak(board *entity.Board, mark entity.Mark, streak int) bool {
	if mark == entity.EmptyCell || streak < 1 {
		return false
	}

	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if board.Mark(row, col) != mark {
				continue
			}

			for _, dir := range directions {
				if countFrom(board, mark, row, col, dir, streak) == streak {
					return true
				}
			}
		}
	}

	return false
}

// countFrom - counts matching cells starting at (row, col), stops at the first miss or the board edge.
func countFrom(board *entity.Board, mark entity.Mark, row, col int, dir direction, limit int) int {
	size := board.Size()

	count := 0
	for count < limit {
		r, c := row+count*dir.row, col+count*dir.col
		if r < 0 || r >= size || c < 0 || c >= size || board.Mark(r, c) != mark {
			break
		}
		count++
	}

	return count
}
