package tetris

import "strings"

// View is what an adapter draws each frame.
type View struct {
	ID     string
	Cells  Board
	Next   Piece
	Score  int
	Lines  int
	Pieces int
	IsOver bool
}

// ShortID is the first block of the session id, short enough for a status line.
func (v View) ShortID() string {
	if i := strings.IndexByte(v.ID, '-'); i > 0 {
		return v.ID[:i]
	}
	return v.ID
}

// Render overlays the active piece on the locked cells. Blocks above the top
// row are not drawn, and a finished game shows only the locked cells.
func (s Session) Render() Board {
	frame := s.Board
	if s.IsOver {
		return frame
	}
	p := s.Piece
	for y, line := range p.Shape {
		for x, cell := range line {
			frameY, frameX := p.Row+y, p.Col+x
			if cell != CellEmpty && frameY >= 0 && frameY < Rows && frameX >= 0 && frameX < Cols {
				frame[frameY][frameX] = Cell(p.Type)
			}
		}
	}
	return frame
}
