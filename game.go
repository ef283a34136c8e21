package tetris

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type CompleteHandler interface {
	OnCompleted(rows int)
}

type CompleteHandlerFunc func(rows int)

func (f CompleteHandlerFunc) OnCompleted(rows int) {
	f(rows)
}

// Game owns the single mutable Session. Every action runs to completion under
// the lock before the next one is accepted, so adapters may deliver key
// presses and ticks from different goroutines.
type Game struct {
	pieceGetter     PieceGetter
	completeHandler CompleteHandler
	clock           func() time.Time
	logger          *log.Logger

	getter  *lookahead
	id      string
	session Session
	m       sync.Mutex
}

type GameOption func(*Game)

func WithGetter(getter PieceGetter) GameOption {
	return func(g *Game) {
		g.pieceGetter = getter
	}
}

func WithCompleteHandler(handler CompleteHandler) GameOption {
	return func(g *Game) {
		g.completeHandler = handler
	}
}

func WithClock(clock func() time.Time) GameOption {
	return func(g *Game) {
		g.clock = clock
	}
}

func WithLogger(logger *log.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

func NewGame(options ...GameOption) *Game {
	g := &Game{
		clock:  time.Now,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range options {
		opt(g)
	}
	if g.pieceGetter == nil {
		g.pieceGetter = NewRandomGetter(g.clock().UnixNano())
	}

	g.getter = newLookahead(g.pieceGetter)
	g.start(g.clock())
	return g
}

func (g *Game) start(now time.Time) {
	g.id = uuid.New().String()
	g.session = NewSession(now, g.getter)
	g.logger.Printf("[Game] session %s started, first piece %s", g.id, g.session.Piece.Type)
}

// Apply runs one action against the current session. The only error is
// ErrUnknownAction, in which case the session is left untouched.
func (g *Game) Apply(action Action) error {
	g.m.Lock()
	before := g.session
	now := g.clock()

	if action == ActionRestart {
		g.start(now)
		g.m.Unlock()
		return nil
	}

	id := g.id
	after, err := before.Apply(action, now, g.getter)
	if err != nil {
		g.m.Unlock()
		g.logger.Printf("[Game] session %s rejected action: %v", id, err)
		return err
	}
	g.session = after
	g.m.Unlock()

	if after.Pieces > before.Pieces {
		cleared := after.Lines - before.Lines
		if cleared > 0 {
			g.logger.Printf("[Game] session %s cleared %d rows, score=%d", id, cleared, after.Score)
		}
		if g.completeHandler != nil {
			g.completeHandler.OnCompleted(cleared)
		}
	}
	if after.IsOver && !before.IsOver {
		g.logger.Printf("[Game] session %s over: score=%d lines=%d pieces=%d", id, after.Score, after.Lines, after.Pieces)
	}
	return nil
}

// Tick is the scheduler callback. It may be called as often as the adapter
// likes; gravity only applies once per GravityInterval.
func (g *Game) Tick() {
	_ = g.Apply(ActionTick)
}

// State returns a snapshot of the session. Its piece is a copy, so callers
// may modify it freely.
func (g *Game) State() Session {
	g.m.Lock()
	defer g.m.Unlock()
	snapshot := g.session
	snapshot.Piece = snapshot.Piece.Clone()
	return snapshot
}

func (g *Game) Next() Piece {
	g.m.Lock()
	defer g.m.Unlock()
	return g.getter.Peek().Clone()
}

func (g *Game) ID() string {
	g.m.Lock()
	defer g.m.Unlock()
	return g.id
}

func (g *Game) Render() View {
	g.m.Lock()
	defer g.m.Unlock()
	return View{
		ID:     g.id,
		Cells:  g.session.Render(),
		Next:   g.getter.Peek().Clone(),
		Score:  g.session.Score,
		Lines:  g.session.Lines,
		Pieces: g.session.Pieces,
		IsOver: g.session.IsOver,
	}
}
