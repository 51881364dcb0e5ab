package game

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ncruces/zenity"
	"golang.org/x/image/font/gofont/goregular"
)

type fontResult struct {
	path string
	face *text.GoTextFace
	err  error
}

func loadFace(path string, size float64) (*text.GoTextFace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	defer f.Close()

	src, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

func fallbackFace(size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse built-in font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// pickFont opens the file dialog off the game loop; collectFont applies
// the result on a later Update.
func (g *Game) pickFont() {
	if g.picking {
		return
	}
	g.picking = true
	size := g.opts.FontSize

	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Choose Label Font"),
			zenity.FileFilters{{
				Name:     "Fonts",
				Patterns: []string{"*.otf", "*.ttf"},
			}},
		)
		if err != nil {
			g.fonts <- fontResult{err: err}
			return
		}
		face, err := loadFace(path, size)
		g.fonts <- fontResult{path: path, face: face, err: err}
	}()
}

func (g *Game) collectFont() {
	select {
	case r := <-g.fonts:
		g.picking = false
		switch {
		case errors.Is(r.err, zenity.ErrCanceled):
		case r.err != nil:
			log.Printf("font picker: %v", r.err)
			g.lastErr = r.err
		default:
			log.Printf("label font %s", r.path)
			g.face = r.face
			g.lastErr = nil
		}
	default:
	}
}
