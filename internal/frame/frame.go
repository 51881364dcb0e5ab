// Package frame computes everything one rendered frame needs: the
// cursor-driven frequency, the ruler ticks and the waveform vertices.
// Nothing here keeps state between frames.
package frame

import (
	"fmt"
	"math"
	"strconv"

	"github.com/iburimskiy/frequency/internal/config"
)

// Map linearly maps v from [inMin, inMax] to [outMin, outMax]. An empty
// input range maps everything to outMin.
func Map(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return (v-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// Frequency maps the cursor x position across a viewport of the given
// width onto [config.MinFrequency, config.MaxFrequency].
func Frequency(mouseX, width float64) float64 {
	return Map(clamp(mouseX, 0, width), 0, width, config.MinFrequency, config.MaxFrequency)
}

// TickCount returns how many ticks to draw and the area they cover, in
// noise units. Sparse rulers get ten times the ticks; area keeps the
// unadjusted count.
func TickCount(width, frequency float64) (numTicks int, area float64) {
	numTicks = int(math.Ceil(width * frequency))
	area = float64(numTicks)
	if numTicks <= config.TickFloor {
		numTicks *= config.TickFloorFactor
	}
	return numTicks, area
}

// Tick is one vertical ruler line.
type Tick struct {
	Pos     float64 // position along the noise axis
	ScreenX float64
	Bright  bool
}

// Label is the text drawn next to the tick.
func (t Tick) Label() string {
	return strconv.FormatFloat(t.Pos, 'g', 6, 64)
}

// Alpha is the line opacity, 0-255.
func (t Tick) Alpha() uint8 {
	if t.Bright {
		return config.BrightTickAlpha
	}
	return config.DimTickAlpha
}

type Ruler struct {
	Frequency float64
	Area      float64
	Ticks     []Tick
}

// NewRuler lays out the ticks for a viewport width at frequency.
func NewRuler(width, frequency float64) Ruler {
	n, area := TickCount(width, frequency)
	r := Ruler{
		Frequency: frequency,
		Area:      area,
		Ticks:     make([]Tick, 0, n),
	}
	for i := 0; i < n; i++ {
		pos := Map(float64(i), 0, float64(n), 0, area)
		r.Ticks = append(r.Ticks, Tick{
			Pos:     pos,
			ScreenX: pos * (1 / frequency),
			Bright:  isBright(pos, area),
		})
	}
	return r
}

// Summary describes the ruler for the status line.
func (r Ruler) Summary() string {
	return fmt.Sprintf("frequency %.4f  ticks %d  area %g  wavelength %.0fpx",
		r.Frequency, len(r.Ticks), r.Area, 1/r.Frequency)
}

// Whole units are highlighted only while few of them are on screen.
func isBright(pos, area float64) bool {
	return math.Abs(math.Mod(pos, 1)) <= 0 && area < config.BrightTickMaxArea
}
