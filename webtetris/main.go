package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jauhararifin/go-tetris"
	"github.com/jauhararifin/go-tetris/config"
)

const (
	blockSize    = 30
	sidePanel    = 180
	screenWidth  = tetris.Cols*blockSize + sidePanel
	screenHeight = tetris.Rows * blockSize
)

var palette = [...]color.RGBA{
	tetris.CellEmpty:           {0x00, 0x00, 0x00, 0xff},
	tetris.Cell(tetris.PieceI): {0xff, 0x00, 0x00, 0xff},
	tetris.Cell(tetris.PieceO): {0x00, 0xff, 0x00, 0xff},
	tetris.Cell(tetris.PieceT): {0x00, 0x00, 0xff, 0xff},
	tetris.Cell(tetris.PieceS): {0xff, 0xff, 0x00, 0xff},
	tetris.Cell(tetris.PieceZ): {0x00, 0xff, 0xff, 0xff},
	tetris.Cell(tetris.PieceJ): {0xff, 0x00, 0xff, 0xff},
	tetris.Cell(tetris.PieceL): {0xff, 0xaa, 0x00, 0xff},
}

var gridColor = color.RGBA{0xee, 0xee, 0xee, 0xff}

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	seed := flag.Int64("seed", 0, "piece generator seed (0 picks one from the clock)")
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

	logger, closer, err := cfg.Logger("webtetris ")
	if err != nil {
		log.Fatalf("cannot open log: %v", err)
	}
	defer closer.Close()

	options := []tetris.GameOption{tetris.WithLogger(logger)}
	if cfg.Seed != 0 {
		options = append(options, tetris.WithGetter(tetris.NewRandomGetter(cfg.Seed)))
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Tetris")
	if err := ebiten.RunGame(newScreen(tetris.NewGame(options...), cfg, logger)); err != nil {
		log.Fatalf("game stopped: %v", err)
	}
}

type binding struct {
	key    ebiten.Key
	action tetris.Action
}

type screen struct {
	game        *tetris.Game
	bindings    []binding
	restartKeys string
	logger      *log.Logger
}

// newScreen orders the bindings by key so keys pressed in the same frame are
// always applied in the same order.
func newScreen(game *tetris.Game, cfg config.Config, logger *log.Logger) *screen {
	s := &screen{
		game:        game,
		restartKeys: strings.Join(cfg.KeysFor(tetris.ActionRestart), "/"),
		logger:      logger,
	}
	for name, action := range cfg.Bindings() {
		key, ok := ebitenKey(name)
		if !ok {
			logger.Printf("[Input] key %q has no ebiten equivalent", name)
			continue
		}
		s.bindings = append(s.bindings, binding{key: key, action: action})
	}
	sort.Slice(s.bindings, func(i, j int) bool {
		return s.bindings[i].key < s.bindings[j].key
	})
	return s
}

// Update runs once per ebiten tick (60 per second by default), well within
// the gravity interval.
func (s *screen) Update() error {
	for _, b := range s.bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if err := s.game.Apply(b.action); err != nil {
			s.logger.Printf("[Input] %v", err)
		}
	}
	s.game.Tick()
	return nil
}

func (s *screen) Draw(dst *ebiten.Image) {
	view := s.game.Render()

	for y := 0; y < tetris.Rows; y++ {
		for x := 0; x < tetris.Cols; x++ {
			drawBlock(dst, float32(x*blockSize), float32(y*blockSize), view.Cells[y][x])
		}
	}

	left := float32(tetris.Cols*blockSize + 20)
	ebitenutil.DebugPrintAt(dst, "Next", int(left), 10)
	for y, line := range view.Next.Shape {
		for x, cell := range line {
			if cell == tetris.CellEmpty {
				continue
			}
			drawBlock(dst, left+float32(x*blockSize), float32(30+y*blockSize), cell)
		}
	}

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d\nLines: %d\nGame %s", view.Score, view.Lines, view.ShortID()), int(left), 120)
	if view.IsOver {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("GAME OVER\npress %s to restart", s.restartKeys), int(left), 180)
	}
}

func drawBlock(dst *ebiten.Image, x, y float32, cell tetris.Cell) {
	vector.DrawFilledRect(dst, x, y, blockSize, blockSize, palette[cell], false)
	border := gridColor
	if cell != tetris.CellEmpty {
		border = color.RGBA{0x22, 0x22, 0x22, 0xff}
	}
	vector.StrokeRect(dst, x, y, blockSize, blockSize, 1, border, false)
}

func (s *screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

var namedKeys = map[string]ebiten.Key{
	config.KeyLeft:      ebiten.KeyArrowLeft,
	config.KeyRight:     ebiten.KeyArrowRight,
	config.KeyUp:        ebiten.KeyArrowUp,
	config.KeyDown:      ebiten.KeyArrowDown,
	config.KeySpace:     ebiten.KeySpace,
	config.KeyEnter:     ebiten.KeyEnter,
	config.KeyEscape:    ebiten.KeyEscape,
	config.KeyBackspace: ebiten.KeyBackspace,
	config.KeyTab:       ebiten.KeyTab,
}

var letterKeys = [...]ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

func ebitenKey(name string) (ebiten.Key, bool) {
	if key, ok := namedKeys[name]; ok {
		return key, true
	}
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		return letterKeys[name[0]-'a'], true
	}
	return 0, false
}
