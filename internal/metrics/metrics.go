// Package metrics wraps inet.Statistics as Prometheus collectors, filled by
// the CLI's bench command. The core package never imports
// this: metrics are an outer concern populated after each Evaluate call.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors holds one counter per Statistics field plus an arena occupancy
// gauge, registered together under a single namespace.
type Collectors struct {
	BetaReductions prometheus.Counter
	Duplications   prometheus.Counter
	Erasures       prometheus.Counter
	Annihilations  prometheus.Counter
	ArenaWords     prometheus.Gauge
}

// New builds and registers a fresh set of collectors against reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		BetaReductions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inetvm", Name: "beta_reductions_total",
			Help: "Total APP-LAM active pairs reduced.",
		}),
		Duplications: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inetvm", Name: "duplications_total",
			Help: "Total DUP-LAM reductions, APP-SUP commutations, and DUP-SUP commutations.",
		}),
		Erasures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inetvm", Name: "erasures_total",
			Help: "Total ERA-LAM and ERA-SUP reductions.",
		}),
		Annihilations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "inetvm", Name: "annihilations_total",
			Help: "Total ERA-NUL, DUP-NUL, and same-label DUP-SUP reductions.",
		}),
		ArenaWords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "inetvm", Name: "arena_words_used",
			Help: "Words handed out by the arena allocator so far.",
		}),
	}
	reg.MustRegister(c.BetaReductions, c.Duplications, c.Erasures, c.Annihilations, c.ArenaWords)
	return c
}

// Observe adds one net's final counts to the counters and sets the arena
// gauge to that net's occupancy. Prometheus counters only go up, so each
// call accumulates; bench calls it once per evaluated net, after Evaluate
// returns, not mid-run.
func (c *Collectors) Observe(beta, dup, era, anni, arenaWords uint64) {
	c.BetaReductions.Add(float64(beta))
	c.Duplications.Add(float64(dup))
	c.Erasures.Add(float64(era))
	c.Annihilations.Add(float64(anni))
	c.ArenaWords.Set(float64(arenaWords))
}
