package tetris

import "fmt"

type PieceType int

const (
	PieceI PieceType = iota + 1
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

var AllPieceTypes = [...]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	}
	return fmt.Sprintf("PieceType(%d)", int(t))
}

func (t PieceType) Valid() bool {
	return t >= PieceI && t <= PieceL
}

// Shape is a piece matrix in row-major order. Rows may be of any length but
// all rows of one shape have the same length. Transitions never write to a
// shape; they build new ones with Clone or RotateClockwise.
type Shape [][]Cell

var catalog = [...]Shape{
	PieceI: {
		{1, 1, 1, 1},
	},
	PieceO: {
		{2, 2},
		{2, 2},
	},
	PieceT: {
		{0, 3, 0},
		{3, 3, 3},
	},
	PieceS: {
		{0, 4, 4},
		{4, 4, 0},
	},
	PieceZ: {
		{5, 5, 0},
		{0, 5, 5},
	},
	PieceJ: {
		{6, 0, 0},
		{6, 6, 6},
	},
	PieceL: {
		{0, 0, 7},
		{7, 7, 7},
	},
}

// ShapeOf returns a fresh copy of the spawn orientation of t. The catalog
// itself is never handed out.
func ShapeOf(t PieceType) Shape {
	if !t.Valid() {
		return nil
	}
	return catalog[t].Clone()
}

func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, line := range s {
		out[y] = append([]Cell(nil), line...)
	}
	return out
}

func (s Shape) Height() int {
	return len(s)
}

func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise turns s by 90 degrees: out[i][j] = s[h-1-j][i].
func RotateClockwise(s Shape) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		out[i] = make([]Cell, h)
		for j := 0; j < h; j++ {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}
