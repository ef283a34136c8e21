package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/JoelOtter/termloop"
	"github.com/jauhararifin/go-tetris"
	"github.com/jauhararifin/go-tetris/config"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	seed := flag.Int64("seed", 0, "piece generator seed (0 picks one from the clock)")
	logFile := flag.String("log", "", "log file")
	flag.Parse()

	path, err := config.ResolvePath(*configPath)
	if err != nil {
		log.Fatalf("cannot resolve config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	logger, closer, err := cfg.Logger("playtetris ")
	if err != nil {
		log.Fatalf("cannot open log: %v", err)
	}
	defer closer.Close()
	logger.Printf("[Main] config loaded from %s", path)

	game := termloop.NewGame()
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(NewBoardPlayer(0, 0, cfg, logger))
	game.Screen().SetLevel(level)
	game.Start()
}

const tickInterval = 50 * time.Millisecond

type boardPlayer struct {
	game     *tetris.Game
	bindings    map[string]tetris.Action
	restartKeys string
	logger      *log.Logger
	x, y        int

	scoreText *termloop.Text
	linesText *termloop.Text
	overText  *termloop.Text
	idText    *termloop.Text
}

func NewBoardPlayer(x, y int, cfg config.Config, logger *log.Logger) *boardPlayer {
	options := []tetris.GameOption{tetris.WithLogger(logger)}
	if cfg.Seed != 0 {
		options = append(options, tetris.WithGetter(tetris.NewRandomGetter(cfg.Seed)))
	}

	b := &boardPlayer{
		game:        tetris.NewGame(options...),
		bindings:    cfg.Bindings(),
		restartKeys: strings.Join(cfg.KeysFor(tetris.ActionRestart), "/"),
		logger:      logger,
		x:           x,
		y:           y,

		scoreText: termloop.NewText(x+tetris.Cols+3, y+8, "", termloop.ColorWhite, termloop.ColorDefault),
		linesText: termloop.NewText(x+tetris.Cols+3, y+9, "", termloop.ColorWhite, termloop.ColorDefault),
		overText:  termloop.NewText(x+tetris.Cols+3, y+11, "", termloop.ColorRed, termloop.ColorDefault),
		idText:    termloop.NewText(x+tetris.Cols+3, y+tetris.Rows, "", termloop.ColorWhite, termloop.ColorDefault),
	}

	ticker := time.NewTicker(tickInterval)
	go func() {
		for range ticker.C {
			b.game.Tick()
		}
	}()

	return b
}

func (b *boardPlayer) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}
	name := keyName(ev)
	if name == "" {
		return
	}
	action, ok := b.bindings[name]
	if !ok {
		return
	}
	if err := b.game.Apply(action); err != nil {
		b.logger.Printf("[Input] key %s: %v", name, err)
	}
}

func keyName(ev termloop.Event) string {
	switch ev.Key {
	case termloop.KeyArrowLeft:
		return config.KeyLeft
	case termloop.KeyArrowRight:
		return config.KeyRight
	case termloop.KeyArrowUp:
		return config.KeyUp
	case termloop.KeyArrowDown:
		return config.KeyDown
	case termloop.KeySpace:
		return config.KeySpace
	case termloop.KeyEnter:
		return config.KeyEnter
	case termloop.KeyEsc:
		return config.KeyEscape
	case termloop.KeyBackspace, termloop.KeyBackspace2:
		return config.KeyBackspace
	case termloop.KeyTab:
		return config.KeyTab
	}
	ch := ev.Ch
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	if ch >= 'a' && ch <= 'z' {
		return string(ch)
	}
	return ""
}

var cellColors = [...]termloop.Attr{
	tetris.PieceI: termloop.ColorRed,
	tetris.PieceO: termloop.ColorGreen,
	tetris.PieceT: termloop.ColorBlue,
	tetris.PieceS: termloop.ColorYellow,
	tetris.PieceZ: termloop.ColorCyan,
	tetris.PieceJ: termloop.ColorMagenta,
	tetris.PieceL: termloop.ColorWhite,
}

func border() *termloop.Cell {
	return &termloop.Cell{
		Fg: termloop.ColorWhite,
		Bg: termloop.ColorBlack,
		Ch: '+',
	}
}

func block(cell tetris.Cell) *termloop.Cell {
	if cell == tetris.CellEmpty {
		return &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack}
	}
	return &termloop.Cell{
		Fg: cellColors[cell],
		Bg: termloop.ColorBlack,
		Ch: '#',
	}
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	view := b.game.Render()

	for i := 0; i < tetris.Cols+2; i++ {
		s.RenderCell(b.x+i, b.y, border())
		s.RenderCell(b.x+i, b.y+tetris.Rows+1, border())
	}
	for i := 0; i < tetris.Rows+2; i++ {
		s.RenderCell(b.x, b.y+i, border())
		s.RenderCell(b.x+tetris.Cols+1, b.y+i, border())
	}

	for i := 0; i < 6; i++ {
		s.RenderCell(b.x+tetris.Cols+3+i, b.y, border())
		s.RenderCell(b.x+tetris.Cols+3+i, b.y+5, border())
		s.RenderCell(b.x+tetris.Cols+3, b.y+i, border())
		s.RenderCell(b.x+tetris.Cols+8, b.y+i, border())
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := tetris.CellEmpty
			if y < view.Next.Shape.Height() && x < view.Next.Shape.Width() {
				cell = view.Next.Shape[y][x]
			}
			s.RenderCell(b.x+tetris.Cols+4+x, b.y+1+y, block(cell))
		}
	}

	b.scoreText.SetText(fmt.Sprintf("Score: %d", view.Score))
	b.scoreText.Draw(s)
	b.linesText.SetText(fmt.Sprintf("Lines: %d", view.Lines))
	b.linesText.Draw(s)
	if view.IsOver {
		b.overText.SetText(fmt.Sprintf("Game Over - press %s to restart", b.restartKeys))
	} else {
		b.overText.SetText("")
	}
	b.overText.Draw(s)
	b.idText.SetText(fmt.Sprintf("Game %s", view.ShortID()))
	b.idText.Draw(s)

	for y := 0; y < tetris.Rows; y++ {
		for x := 0; x < tetris.Cols; x++ {
			s.RenderCell(b.x+1+x, b.y+1+y, block(view.Cells[y][x]))
		}
	}
}
