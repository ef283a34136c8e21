package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomGetterIsUniform(t *testing.T) {
	getter := NewRandomGetter(42)
	counts := make(map[PieceType]int)
	for i := 0; i < 7000; i++ {
		p := getter.Next()
		counts[p.Type]++
		assert.Equal(t, 0, p.Row)
	}

	assert.Len(t, counts, len(AllPieceTypes))
	for _, typ := range AllPieceTypes {
		assert.InDelta(t, 1000, counts[typ], 150, "%s", typ)
	}
}

func TestRandomGetterIsDeterministicPerSeed(t *testing.T) {
	a, b := NewRandomGetter(7), NewRandomGetter(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Next().Type, b.Next().Type)
	}
}

func TestQueueGetter(t *testing.T) {
	q := NewQueueGetter(PieceO, PieceT)
	q.Push(PieceL, 0, 42)
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, PieceO, q.Next().Type)
	assert.Equal(t, PieceT, q.Next().Type)
	assert.Equal(t, PieceL, q.Next().Type)
	assert.Equal(t, PieceL, q.Next().Type, "repeats the last piece once empty")
	assert.Equal(t, 0, q.Len())
}

func TestQueueGetterEmpty(t *testing.T) {
	assert.Equal(t, NewPiece(PieceI), NewQueueGetter().Next())
}

func TestLookahead(t *testing.T) {
	l := newLookahead(NewQueueGetter(PieceS, PieceZ, PieceJ))
	assert.Equal(t, PieceS, l.Peek().Type)
	assert.Equal(t, PieceS, l.Next().Type)
	assert.Equal(t, PieceZ, l.Peek().Type)
	assert.Equal(t, PieceZ, l.Next().Type)
	assert.Equal(t, PieceJ, l.Next().Type)
}
