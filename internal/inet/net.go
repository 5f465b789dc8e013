package inet

import "sync/atomic"

// Config bounds the resources a Net is willing to use.
type Config struct {
	ArenaCapacity  uint64
	Workers        int
	MaxWiringDepth int
}

// DefaultConfig mirrors the reference runtime's defaults, scaled down from
// its multi-gigabyte heap to a size suitable for a library rather than a
// standalone process.
func DefaultConfig() Config {
	return Config{
		ArenaCapacity:  1 << 24,
		Workers:        1,
		MaxWiringDepth: 4096,
	}
}

// Net is the front end's handle onto one interaction net: the arena, the
// redex queue, the DUP/SUP label table, and the running statistics. It
// implements the front-end contract of spec §6.1 as exported methods.
type Net struct {
	arena  *Arena
	labels *labelStore
	label  *Labeler
	queue  *RedexQueue
	counts counters
	varID  atomic.Uint64
	cfg    Config
}

// NewNet allocates a fresh net with the given configuration. Construction
// (calling the New* constructors and Move) is expected to happen
// single-threaded before Evaluate spins up workers.
func NewNet(cfg Config) *Net {
	if cfg.ArenaCapacity == 0 {
		cfg.ArenaCapacity = DefaultConfig().ArenaCapacity
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxWiringDepth <= 0 {
		cfg.MaxWiringDepth = DefaultConfig().MaxWiringDepth
	}
	return &Net{
		arena:  NewArena(cfg.ArenaCapacity),
		labels: newLabelStore(),
		label:  NewLabeler(),
		queue:  NewRedexQueue(cfg.Workers),
		cfg:    cfg,
	}
}

// Alloc reserves n contiguous words, per the front-end contract's
// "alloc(n) -> loc" escape hatch for custom constructions.
func (n *Net) Alloc(count uint64) (Loc, error) {
	return n.arena.Alloc(count)
}

// Set writes a port directly, without wiring; used at construction time and
// on freshly allocated nodes inside rewrite rules.
func (n *Net) Set(loc Loc, t Term) {
	n.arena.Set(loc, t)
}

// Get reads any port, per the runtime contract's "get(loc) -> (tag, target)".
func (n *Net) Get(loc Loc) Term {
	return n.arena.Get(loc)
}

// FreshLabel mints a new DUP/SUP label.
func (n *Net) FreshLabel() uint64 {
	return n.label.Fresh()
}

// FreshVarID mints a variable identifier for readback/debug display; it has
// no bearing on wiring, which addresses by location.
func (n *Net) FreshVarID() uint64 {
	return n.varID.Add(1) - 1
}

// Statistics snapshots the current counters. Safe to call concurrently with
// Evaluate.
func (n *Net) Statistics() Statistics {
	return n.counts.snapshot()
}

// ArenaLen and ArenaCap expose the underlying arena's occupancy for CLI
// reporting.
func (n *Net) ArenaLen() uint64 { return n.arena.Len() }
func (n *Net) ArenaCap() uint64 { return n.arena.Cap() }
