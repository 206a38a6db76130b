package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 read by the status bar while the frame loop writes it
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(val float64) { g.bits.Store(math.Float64bits(val)) }
func (g *Gauge) Get() float64    { return math.Float64frombits(g.bits.Load()) }

// Smooth eases the gauge toward sample by alpha in [0, 1] and returns the result
// The first sample after zero is taken as is
func (g *Gauge) Smooth(sample, alpha float64) float64 {
	for {
		old := g.bits.Load()
		next := sample
		if old != 0 {
			cur := math.Float64frombits(old)
			next = cur + (sample-cur)*alpha
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
