package tetris

import (
	"fmt"
	"time"
)

const (
	GravityInterval = 500 * time.Millisecond
	PointsPerLine   = 100
)

// Session is one game. Transitions take a Session and return the next one;
// the receiver is never modified.
type Session struct {
	Board    Board
	Piece    Piece
	Score    int
	Lines    int
	Pieces   int
	IsOver   bool
	LastDrop time.Time
}

func NewSession(now time.Time, getter PieceGetter) Session {
	return Session{
		Board:    EmptyBoard(),
		Piece:    getter.Next(),
		LastDrop: now,
	}
}

func (s Session) Restart(now time.Time, getter PieceGetter) Session {
	return NewSession(now, getter)
}

func (s Session) MoveLeft() Session {
	return s.shift(0, -1)
}

func (s Session) MoveRight() Session {
	return s.shift(0, 1)
}

// SoftDrop moves the piece one row down when it fits. It never locks.
func (s Session) SoftDrop() Session {
	return s.shift(1, 0)
}

func (s Session) shift(dRow, dCol int) Session {
	if s.IsOver {
		return s
	}
	moved := s.Piece.Moved(dRow, dCol)
	if s.Board.Collides(moved.Shape, moved.Row, moved.Col) {
		return s
	}
	s.Piece = moved
	return s
}

func (s Session) Rotate() Session {
	if s.IsOver {
		return s
	}
	if rotated, ok := TryRotate(s.Board, s.Piece); ok {
		s.Piece = rotated
	}
	return s
}

// Tick applies gravity once at least GravityInterval has passed since the
// last drop: the piece falls one row, or locks when it cannot.
func (s Session) Tick(now time.Time, getter PieceGetter) Session {
	if s.IsOver || now.Sub(s.LastDrop) < GravityInterval {
		return s
	}
	if !s.Board.Collides(s.Piece.Shape, s.Piece.Row+1, s.Piece.Col) {
		s.Piece = s.Piece.Moved(1, 0)
		s.LastDrop = now
		return s
	}
	return s.lock(now, getter)
}

// HardDrop lets the piece fall as far as it goes and locks it right away.
func (s Session) HardDrop(now time.Time, getter PieceGetter) Session {
	if s.IsOver {
		return s
	}
	for !s.Board.Collides(s.Piece.Shape, s.Piece.Row+1, s.Piece.Col) {
		s.Piece = s.Piece.Moved(1, 0)
	}
	return s.lock(now, getter)
}

func (s Session) lock(now time.Time, getter PieceGetter) Session {
	merged := s.Board.Merge(s.Piece.Shape, s.Piece.Row, s.Piece.Col, s.Piece.Type)
	board, cleared := merged.ClearFullRows()
	s.Board = board
	s.Score += cleared * PointsPerLine
	s.Lines += cleared
	s.Pieces++

	next := getter.Next()
	if board.Collides(next.Shape, next.Row, next.Col) {
		s.IsOver = true
		return s
	}
	s.Piece = next
	s.LastDrop = now
	return s
}

// Apply dispatches action to its transition. Restart is the only action that
// has an effect once the game is over.
func (s Session) Apply(action Action, now time.Time, getter PieceGetter) (Session, error) {
	switch action {
	case ActionTick:
		return s.Tick(now, getter), nil
	case ActionMoveLeft:
		return s.MoveLeft(), nil
	case ActionMoveRight:
		return s.MoveRight(), nil
	case ActionSoftDrop:
		return s.SoftDrop(), nil
	case ActionRotate:
		return s.Rotate(), nil
	case ActionHardDrop:
		return s.HardDrop(now, getter), nil
	case ActionRestart:
		return s.Restart(now, getter), nil
	}
	return s, fmt.Errorf("%w: %d", ErrUnknownAction, int(action))
}
