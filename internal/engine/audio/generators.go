package audio

import (
	"math"

	"github.com/gopxl/beep/v2"
)

// noise is a linear congruential white noise source in [-1, 1].
type noise struct {
	state uint32
}

func (n *noise) next() float64 {
	n.state = n.state*1103515245 + 12345
	return float64(n.state>>8)/float64(1<<23) - 1
}

// BlastGenerator synthesizes a cannon shot: a falling low thump under a
// burst of noise.
type BlastGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
	noise noise
}

// NewBlastGenerator creates a blast generator.
func NewBlastGenerator(sr beep.SampleRate, seed uint32) *BlastGenerator {
	return &BlastGenerator{sr: sr, noise: noise{state: seed}}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch drops from 120Hz to 40Hz
		freq := 40 + 80*math.Exp(-t*12)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		thump := 0.6 * math.Exp(-t*7) * math.Sin(g.phase)
		crack := 0.4 * math.Exp(-t*25) * g.noise.next()
		sample := thump + crack

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}

// SplashGenerator synthesizes low-passed noise that swells and fades.
type SplashGenerator struct {
	sr    beep.SampleRate
	pos   int
	last  float64
	noise noise
}

// NewSplashGenerator creates a splash generator.
func NewSplashGenerator(sr beep.SampleRate, seed uint32) *SplashGenerator {
	return &SplashGenerator{sr: sr, noise: noise{state: seed}}
}

func (g *SplashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Min(t/0.02, 1) * math.Exp(-t*9)

		// One-pole low-pass turns the hiss into a wash
		g.last += 0.15 * (g.noise.next() - g.last)
		sample := 0.8 * envelope * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SplashGenerator) Err() error {
	return nil
}
