package tetris

// Piece is the falling piece. Row and Col locate the top-left corner of Shape
// on the board; Row may be negative while the piece is above the top edge.
type Piece struct {
	Type     PieceType
	Shape    Shape
	Row, Col int
}

// NewPiece builds t in its spawn orientation on row 0, horizontally centered.
func NewPiece(t PieceType) Piece {
	shape := ShapeOf(t)
	return Piece{
		Type:  t,
		Shape: shape,
		Row:   0,
		Col:   (Cols - shape.Width()) / 2,
	}
}

// Clone returns p with its own copy of the shape cells.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns a shifted copy of p that shares no cells with p.
func (p Piece) Moved(dRow, dCol int) Piece {
	p = p.Clone()
	p.Row += dRow
	p.Col += dCol
	return p
}

func (p Piece) Equal(other Piece) bool {
	return p.Type == other.Type && p.Row == other.Row && p.Col == other.Col && p.Shape.Equal(other.Shape)
}

var kickOffsets = [...]int{0, -1, 1, -2, 2}

// TryRotate rotates p clockwise, shifting it sideways by the first kick
// offset that fits. When nothing fits, p is returned unchanged and ok is false.
func TryRotate(board Board, p Piece) (rotated Piece, ok bool) {
	shape := RotateClockwise(p.Shape)
	for _, offset := range kickOffsets {
		if board.Collides(shape, p.Row, p.Col+offset) {
			continue
		}
		return Piece{Type: p.Type, Shape: shape, Row: p.Row, Col: p.Col + offset}, true
	}
	return p, false
}
