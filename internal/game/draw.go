package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/frequency/internal/config"
	"github.com/iburimskiy/frequency/internal/frame"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) drawBackground(screen *ebiten.Image, w, h int) {
	if g.bg == nil || g.bgW != w || g.bgH != h {
		if g.bg != nil {
			g.bg.Deallocate()
		}
		img := frame.Gradient(w, h, gray(config.GradientInner), gray(config.GradientOuter))
		g.bg = ebiten.NewImageFromImage(img)
		g.bgW, g.bgH = w, h
	}
	screen.DrawImage(g.bg, nil)
}

func (g *Game) drawRuler(screen *ebiten.Image, r frame.Ruler, h int) {
	ascent := g.face.Metrics().HAscent
	for _, t := range r.Ticks {
		clr := white(t.Alpha())
		x := float32(t.ScreenX)
		vector.StrokeLine(screen, x, 0, x, float32(h), config.TickWidth, clr, false)

		// The offset is to the baseline; text/v2 positions the top of the line.
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.ScreenX+config.LabelOffsetX, config.LabelOffsetY-ascent)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, t.Label(), g.face, op)
	}
}

// drawWaveform strokes the vertices as one connected strip.
func (g *Game) drawWaveform(screen *ebiten.Image, pts []frame.Point) {
	if len(pts) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	g.vertices, g.indices = path.AppendVerticesAndIndicesForStroke(g.vertices[:0], g.indices[:0], &vector.StrokeOptions{
		Width:    config.WaveStrokeWidth,
		LineJoin: vector.LineJoinRound,
	})
	for i := range g.vertices {
		g.vertices[i].SrcX = 1
		g.vertices[i].SrcY = 1
		g.vertices[i].ColorR = 1
		g.vertices[i].ColorG = 1
		g.vertices[i].ColorB = 1
		g.vertices[i].ColorA = 1
	}
	screen.DrawTriangles(g.vertices, g.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (g *Game) drawHUD(screen *ebiten.Image, r frame.Ruler) {
	ebitenutil.DebugPrintAt(screen, g.status(r), 12, screen.Bounds().Dy()-24)
}
