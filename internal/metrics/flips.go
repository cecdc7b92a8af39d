package metrics

import (
	"math"

	"github.com/san-kum/pendlab/internal/sim"
)

// FlipCounter counts full revolutions of one angle component by watching
// which 2π band it occupies. Frequent flips of the second link are a
// cheap indicator of chaotic motion.
type FlipCounter struct {
	name     string
	index    int
	flips    int
	lastBand int
	samples  int
}

func NewFlipCounter(name string, stateIndex int) *FlipCounter {
	return &FlipCounter{name: name, index: stateIndex}
}

func (f *FlipCounter) Name() string { return f.name }

func (f *FlipCounter) Observe(x sim.State, t float64) {
	if f.index >= len(x) {
		return
	}
	band := int(math.Floor((x[f.index] + math.Pi) / (2 * math.Pi)))
	if f.samples > 0 && band != f.lastBand {
		diff := band - f.lastBand
		if diff < 0 {
			diff = -diff
		}
		f.flips += diff
	}
	f.lastBand = band
	f.samples++
}

func (f *FlipCounter) Value() float64 {
	return float64(f.flips)
}

func (f *FlipCounter) Reset() {
	f.flips = 0
	f.lastBand = 0
	f.samples = 0
}
