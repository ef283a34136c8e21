package tetris

const (
	Rows = 20
	Cols = 10
)

// Cell is 0 for an empty cell, or the PieceType of the piece that was locked there.
type Cell int

const CellEmpty Cell = 0

// Board is a value type: copying a Board copies every cell, so Merge and
// ClearFullRows never alias the receiver.
type Board [Rows][Cols]Cell

func EmptyBoard() Board {
	return Board{}
}

// Collides reports whether shape placed with its top-left corner at (row, col)
// leaves the side walls, goes below the floor or overlaps a locked cell. Cells
// above the top row only collide with nothing, so pieces may spawn straddling
// the top edge.
func (b Board) Collides(shape Shape, row, col int) bool {
	for y, line := range shape {
		for x, cell := range line {
			if cell == CellEmpty {
				continue
			}
			r, c := row+y, col+x
			if c < 0 || c >= Cols || r >= Rows {
				return true
			}
			if r < 0 {
				continue
			}
			if b[r][c] != CellEmpty {
				return true
			}
		}
	}
	return false
}

// Merge returns a copy of b with every block of shape written as typ.
func (b Board) Merge(shape Shape, row, col int, typ PieceType) Board {
	merged := b
	for y, line := range shape {
		for x, cell := range line {
			if cell == CellEmpty {
				continue
			}
			r, c := row+y, col+x
			if r < 0 || r >= Rows || c < 0 || c >= Cols {
				continue
			}
			merged[r][c] = Cell(typ)
		}
	}
	return merged
}

func (b Board) IsRowFull(row int) bool {
	for x := 0; x < Cols; x++ {
		if b[row][x] == CellEmpty {
			return false
		}
	}
	return true
}

// ClearFullRows drops every full row at once and pads the top with empty rows.
func (b Board) ClearFullRows() (Board, int) {
	cleared := Board{}
	target := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if b.IsRowFull(y) {
			continue
		}
		cleared[target] = b[y]
		target--
	}
	return cleared, target + 1
}
