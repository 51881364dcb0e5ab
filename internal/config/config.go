package config

import (
	"errors"
	"fmt"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Frequency - move the mouse horizontally, O: font, H: HUD, Esc/Q: Quit"

	// Cursor x maps linearly onto this range.
	MinFrequency = 0.0001
	MaxFrequency = 0.05

	// Ruler. Tick counts at or below TickFloor are multiplied by
	// TickFloorFactor; unit ticks only light up below BrightTickMaxArea.
	TickFloor         = 5
	TickFloorFactor   = 10
	BrightTickMaxArea = 18
	BrightTickAlpha   = 90
	DimTickAlpha      = 30
	TickWidth         = 1
	LabelOffsetX      = 4
	LabelOffsetY      = 20

	// Waveform
	NoiseMagnitude  = 300
	WaveStrokeWidth = 1

	// Background gradient, center to edge
	GradientInner = 55
	GradientOuter = 0

	DefaultFontPath = "Fonts/DIN.otf"
	DefaultFontSize = 8
)

// Options holds the settings that can be changed from the command line.
type Options struct {
	Width    int
	Height   int
	FontPath string
	FontSize float64
	Seed     int64
	HUD      bool
}

func Default() Options {
	return Options{
		Width:    WindowWidth,
		Height:   WindowHeight,
		FontPath: DefaultFontPath,
		FontSize: DefaultFontSize,
	}
}

var ErrInvalid = errors.New("invalid options")

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, o.Width, o.Height)
	}
	if o.FontSize <= 0 {
		return fmt.Errorf("%w: font size %v", ErrInvalid, o.FontSize)
	}
	if o.FontPath == "" {
		return fmt.Errorf("%w: empty font path", ErrInvalid)
	}
	return nil
}
