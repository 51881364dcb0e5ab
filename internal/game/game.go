package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/frequency/internal/config"
	"github.com/iburimskiy/frequency/internal/frame"
	"github.com/iburimskiy/frequency/internal/noise"
)

// Game draws the ruler and the noise waveform. It only remembers the
// cursor, the viewport size and assets reused between frames.
type Game struct {
	opts  config.Options
	noise *noise.Simplex
	face  *text.GoTextFace

	// input; width and height are the viewport from Layout
	mouseX        int
	width, height int

	// cached background, rebuilt on resize
	bg       *ebiten.Image
	bgW, bgH int

	// waveform mesh buffers, reused every frame
	vertices []ebiten.Vertex
	indices  []uint16

	// font picker
	fonts   chan fontResult
	picking bool

	hud     bool
	fontErr error
	lastErr error
}

func NewGame(opts config.Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		opts:   opts,
		noise:  noise.New(opts.Seed),
		width:  opts.Width,
		height: opts.Height,
		fonts:  make(chan fontResult, 1),
		hud:    opts.HUD,
	}

	face, err := loadFace(opts.FontPath, opts.FontSize)
	if err != nil {
		log.Printf("%v; using built-in font", err)
		g.fontErr = err
		g.lastErr = err
		if face, err = fallbackFace(opts.FontSize); err != nil {
			return nil, err
		}
	} else {
		log.Printf("label font %s at %vpt", opts.FontPath, opts.FontSize)
	}
	g.face = face
	return g, nil
}

// FontErr reports why the configured font was replaced by the built-in one.
func (g *Game) FontErr() error { return g.fontErr }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.pickFont()
	}
	g.collectFont()

	g.mouseX, _ = ebiten.CursorPosition()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.width, g.height
	if w <= 0 || h <= 0 {
		return
	}

	g.drawBackground(screen, w, h)

	freq := frame.Frequency(float64(g.mouseX), float64(w))
	ruler := frame.NewRuler(float64(w), freq)
	g.drawRuler(screen, ruler, h)
	g.drawWaveform(screen, frame.Waveform(g.noise, w, h, freq))

	if g.hud {
		g.drawHUD(screen, ruler)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		log.Printf("viewport %dx%d", outsideWidth, outsideHeight)
		g.width, g.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

func (g *Game) status(r frame.Ruler) string {
	s := r.Summary()
	if g.picking {
		s += " | choosing font..."
	}
	if g.lastErr != nil {
		s += fmt.Sprintf(" | Error: %v", g.lastErr)
	}
	return s
}
