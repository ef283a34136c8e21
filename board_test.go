package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyBoard(t *testing.T) {
	b := EmptyBoard()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			assert.Equal(t, CellEmpty, b[y][x])
		}
	}
}

func TestCollides(t *testing.T) {
	occupied := EmptyBoard()
	occupied[10][5] = Cell(PieceT)

	tests := []struct {
		name     string
		board    Board
		shape    Shape
		row, col int
		want     bool
	}{
		{"inside", EmptyBoard(), ShapeOf(PieceI), 0, 3, false},
		{"left wall", EmptyBoard(), ShapeOf(PieceI), 0, -1, true},
		{"touching right wall", EmptyBoard(), ShapeOf(PieceI), 0, 6, false},
		{"right wall", EmptyBoard(), ShapeOf(PieceI), 0, 7, true},
		{"on the floor", EmptyBoard(), ShapeOf(PieceO), 18, 0, false},
		{"below the floor", EmptyBoard(), ShapeOf(PieceO), 19, 0, true},
		{"above the top", EmptyBoard(), ShapeOf(PieceO), -1, 4, false},
		{"fully above the top", EmptyBoard(), ShapeOf(PieceJ), -5, 0, false},
		{"above the top but outside the wall", EmptyBoard(), ShapeOf(PieceO), -3, -1, true},
		{"overlaps locked cell", occupied, ShapeOf(PieceO), 9, 4, true},
		{"tip over locked cell", occupied, ShapeOf(PieceT), 10, 4, true},
		{"hole of shape over locked cell", occupied, ShapeOf(PieceJ), 10, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.board.Collides(tt.shape, tt.row, tt.col))
		})
	}
}

func TestCollidesOutsideBoundsForEveryShape(t *testing.T) {
	b := EmptyBoard()
	for _, typ := range AllPieceTypes {
		shape := ShapeOf(typ)
		for row := -4; row < Rows+4; row++ {
			for col := -4; col < Cols+4; col++ {
				outside := false
				for y, line := range shape {
					for x, cell := range line {
						if cell == CellEmpty {
							continue
						}
						if col+x < 0 || col+x >= Cols || row+y >= Rows {
							outside = true
						}
					}
				}
				assert.Equal(t, outside, b.Collides(shape, row, col), "%s at (%d, %d)", typ, row, col)
			}
		}
	}
}

func TestMerge(t *testing.T) {
	b := EmptyBoard()
	merged := b.Merge(ShapeOf(PieceT), 18, 2, PieceT)

	assert.Equal(t, EmptyBoard(), b, "receiver must not change")
	assert.Equal(t, Cell(PieceT), merged[18][3])
	assert.Equal(t, Cell(PieceT), merged[19][2])
	assert.Equal(t, Cell(PieceT), merged[19][3])
	assert.Equal(t, Cell(PieceT), merged[19][4])
	assert.Equal(t, CellEmpty, merged[18][2])
	assert.Equal(t, CellEmpty, merged[18][4])
}

func TestMergeWritesPieceTypeNotShapeValue(t *testing.T) {
	merged := EmptyBoard().Merge(Shape{{9, 9}}, 0, 0, PieceL)
	assert.Equal(t, Cell(PieceL), merged[0][0])
	assert.Equal(t, Cell(PieceL), merged[0][1])
}

func TestMergeSkipsCellsAboveTheTop(t *testing.T) {
	merged := EmptyBoard().Merge(ShapeOf(PieceO), -1, 0, PieceO)
	assert.Equal(t, Cell(PieceO), merged[0][0])
	assert.Equal(t, Cell(PieceO), merged[0][1])
	assert.Equal(t, CellEmpty, merged[1][0])
}

func TestClearFullRowsWithoutFullRows(t *testing.T) {
	b := EmptyBoard().Merge(ShapeOf(PieceS), 18, 0, PieceS)

	cleared, count := b.ClearFullRows()
	assert.Equal(t, 0, count)
	assert.Equal(t, b, cleared)
}

func TestClearFullRowsKeepsOrder(t *testing.T) {
	b := EmptyBoard()
	for y := 0; y < Rows; y++ {
		b[y][y%Cols] = Cell(y/Cols + 1)
	}
	for _, full := range []int{5, 12} {
		for x := 0; x < Cols; x++ {
			b[full][x] = Cell(PieceZ)
		}
	}
	before := b

	cleared, count := b.ClearFullRows()
	assert.Equal(t, 2, count)
	assert.Equal(t, before, b, "receiver must not change")

	assert.Equal(t, [Cols]Cell{}, cleared[0])
	assert.Equal(t, [Cols]Cell{}, cleared[1])

	want := make([][Cols]Cell, 0, Rows-2)
	for y := 0; y < Rows; y++ {
		if y != 5 && y != 12 {
			want = append(want, before[y])
		}
	}
	for i, row := range want {
		assert.Equal(t, row, cleared[i+2], "row %d", i+2)
	}
}

func TestClearFullRowsAllFull(t *testing.T) {
	b := EmptyBoard()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			b[y][x] = Cell(PieceI)
		}
	}

	cleared, count := b.ClearFullRows()
	assert.Equal(t, Rows, count)
	assert.Equal(t, EmptyBoard(), cleared)
}
