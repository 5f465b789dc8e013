package inet

import "sync/atomic"

// Statistics is the sole required trace of an evaluation: four monotone
// counters, observable after (or during, for StepLimitReached) reduction.
type Statistics struct {
	BetaReductions uint64
	Duplications   uint64
	Erasures       uint64
	Annihilations  uint64
}

// Sum totals the four counters.
func (s Statistics) Sum() uint64 {
	return s.BetaReductions + s.Duplications + s.Erasures + s.Annihilations
}

// counters holds the same four fields as atomics shared by every worker of
// a Net; snapshot copies them into a Statistics value.
type counters struct {
	beta  atomic.Uint64
	dup   atomic.Uint64
	era   atomic.Uint64
	anni  atomic.Uint64
}

func (c *counters) incBeta() { c.beta.Add(1) }
func (c *counters) incDup()  { c.dup.Add(1) }
func (c *counters) incEra()  { c.era.Add(1) }
func (c *counters) incAnni() { c.anni.Add(1) }

func (c *counters) sum() uint64 {
	return c.beta.Load() + c.dup.Load() + c.era.Load() + c.anni.Load()
}

func (c *counters) snapshot() Statistics {
	return Statistics{
		BetaReductions: c.beta.Load(),
		Duplications:   c.dup.Load(),
		Erasures:       c.era.Load(),
		Annihilations:  c.anni.Load(),
	}
}
