package frame

import (
	"github.com/faiface/beep"

	"github.com/iburimskiy/frequency/internal/config"
)

// Noise is a coherent noise function returning values in [-1, 1].
type Noise interface {
	Eval(x float64) float64
}

// NoiseFunc adapts a plain function to Noise.
type NoiseFunc func(float64) float64

func (f NoiseFunc) Eval(x float64) float64 { return f(x) }

// Signal streams noise sampled along a row of pixels. Sample n is the noise
// at X(n)*frequency, copied to both channels. It never drains; bound it with
// beep.Take.
type Signal struct {
	noise     Noise
	frequency float64
	span      float64
	res       int
	n         int
}

// NewSignal samples a row span pixels wide at res evenly spaced points.
func NewSignal(noise Noise, frequency, span float64, res int) *Signal {
	return &Signal{
		noise:     noise,
		frequency: frequency,
		span:      span,
		res:       res,
	}
}

// X returns the pixel position of sample n.
func (s *Signal) X(n int) float64 {
	return Map(float64(n), 0, float64(s.res), 0, s.span)
}

func (s *Signal) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := s.noise.Eval(s.X(s.n) * s.frequency)
		samples[i] = [2]float64{v, v}
		s.n++
	}
	return len(samples), true
}

func (s *Signal) Err() error { return nil }

type Point struct {
	X, Y float64
}

// chunkSize is how many samples Waveform reads from the signal at once.
const chunkSize = 256

// Waveform returns one vertex per horizontal pixel, displaced from the
// vertical center by up to config.NoiseMagnitude. The signal is read in
// chunks; beep.Take cuts the last one short at the row width.
func Waveform(noise Noise, width, height int, frequency float64) []Point {
	res := width
	sig := NewSignal(noise, frequency, float64(width), res)
	s := beep.Take(res, sig)

	mid := float64(height) * 0.5
	pts := make([]Point, 0, res)
	var chunk [chunkSize][2]float64
	for {
		n, ok := s.Stream(chunk[:])
		for _, v := range chunk[:n] {
			i := len(pts)
			pts = append(pts, Point{
				X: sig.X(i),
				Y: mid + v[0]*config.NoiseMagnitude,
			})
		}
		if !ok || n == 0 {
			break
		}
	}
	return pts
}
