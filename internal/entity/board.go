package entity

const DefaultBoardSize = 4

// Board - a square grid of marks. Cells only ever go from EmptyCell to a player mark.
type Board struct {
	size   int
	cells  [][]Mark
	filled int
}

func NewBoard(size int) *Board {
	cells := make([][]Mark, size)
	for row := range cells {
		cells[row] = make([]Mark, size)
	}

	return &Board{
		size:  size,
		cells: cells,
	}
}

func (that *Board) Size() int {
	return that.size
}

// Place - puts the mark into an empty cell, reports false and changes nothing otherwise.
func (that *Board) Place(mark Mark, row, col int) bool {
	if mark == EmptyCell || !that.inRange(row, col) {
		return false
	}

	if that.cells[row][col] != EmptyCell {
		return false
	}

	that.cells[row][col] = mark
	that.filled++

	return true
}

// Mark - returns the cell value, EmptyCell for coordinates outside the board.
func (that *Board) Mark(row, col int) Mark {
	if !that.inRange(row, col) {
		return EmptyCell
	}
	return that.cells[row][col]
}

func (that *Board) Filled() int {
	return that.filled
}

func (that *Board) IsFull() bool {
	return that.filled == that.size*that.size
}

// Snapshot - returns a copy of the board that renderers can read freely.
func (that *Board) Snapshot() Snapshot {
	cells := make([][]Mark, that.size)
	for row := range that.cells {
		cells[row] = append([]Mark(nil), that.cells[row]...)
	}

	return Snapshot{
		Size:  that.size,
		Cells: cells,
	}
}

func (that *Board) inRange(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// Snapshot - a detached, read-only view of a board.
type Snapshot struct {
	Size  int      `json:"size"`
	Cells [][]Mark `json:"cells"`
}
