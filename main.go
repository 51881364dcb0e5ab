package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/frequency/internal/config"
	"github.com/iburimskiy/frequency/internal/game"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("frequency: ")

	opts := config.Default()
	flag.IntVar(&opts.Width, "width", opts.Width, "initial window width")
	flag.IntVar(&opts.Height, "height", opts.Height, "initial window height")
	flag.StringVar(&opts.FontPath, "font", opts.FontPath, "label font (.otf or .ttf)")
	flag.Float64Var(&opts.FontSize, "font-size", opts.FontSize, "label font size")
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "noise permutation seed, 0 for the reference table")
	flag.BoolVar(&opts.HUD, "hud", opts.HUD, "show the status line (toggle with H)")
	flag.Parse()

	g, err := game.NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}

	// Only bother the user when they asked for a specific font.
	if err := g.FontErr(); err != nil && flagSet("font") {
		warnFontFallback(err, func(msg string) error {
			return zenity.Warning(msg, zenity.Title("Frequency"))
		})
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// warnFontFallback tells the user the built-in font replaced theirs.
func warnFontFallback(err error, show func(msg string) error) {
	if werr := show(err.Error() + "\nLabels use the built-in font."); werr != nil {
		log.Printf("font warning dialog: %v", werr)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
