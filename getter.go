package tetris

import (
	"math/rand"
	"sync"
)

type PieceGetter interface {
	Next() Piece
}

type PieceGetterFunc func() Piece

func (f PieceGetterFunc) Next() Piece {
	return f()
}

// RandomGetter picks every piece type with equal probability, independently
// of the previous picks.
type RandomGetter struct {
	m          sync.Mutex
	randomizer *rand.Rand
}

func NewRandomGetter(seed int64) *RandomGetter {
	return &RandomGetter{
		randomizer: rand.New(rand.NewSource(seed)),
	}
}

func (r *RandomGetter) Next() Piece {
	r.m.Lock()
	defer r.m.Unlock()
	return NewPiece(AllPieceTypes[r.randomizer.Intn(len(AllPieceTypes))])
}

// QueueGetter hands out pushed piece types in order. Once the queue runs dry
// it keeps repeating the last type it handed out (PieceI if nothing was ever
// pushed).
type QueueGetter struct {
	m     sync.Mutex
	queue []PieceType
	last  PieceType
}

func NewQueueGetter(types ...PieceType) *QueueGetter {
	q := &QueueGetter{last: PieceI}
	q.Push(types...)
	return q
}

func (q *QueueGetter) Push(types ...PieceType) {
	q.m.Lock()
	defer q.m.Unlock()
	for _, t := range types {
		if t.Valid() {
			q.queue = append(q.queue, t)
		}
	}
}

func (q *QueueGetter) Len() int {
	q.m.Lock()
	defer q.m.Unlock()
	return len(q.queue)
}

func (q *QueueGetter) Next() Piece {
	q.m.Lock()
	defer q.m.Unlock()
	if len(q.queue) > 0 {
		q.last = q.queue[0]
		q.queue = q.queue[1:]
	}
	return NewPiece(q.last)
}

// lookahead keeps one piece drawn in advance so it can be previewed.
type lookahead struct {
	getter PieceGetter
	next   Piece
}

func newLookahead(getter PieceGetter) *lookahead {
	return &lookahead{getter: getter, next: getter.Next()}
}

func (l *lookahead) Next() Piece {
	p := l.next
	l.next = l.getter.Next()
	return p
}

func (l *lookahead) Peek() Piece {
	return l.next
}
