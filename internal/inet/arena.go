package inet

import "sync/atomic"

// Arena is a bump-allocated array of words backing every node. next is a
// shared atomic cursor so alloc is a relaxed fetch-add; words are
// individually atomic so ports can be read, written, and exchanged from
// concurrent workers without a lock.
type Arena struct {
	words []atomic.Uint64
	next  atomic.Uint64
	cap   uint64
}

// NewArena pre-sizes the backing array. Growth beyond capacity fails with
// ArenaExhausted rather than reallocating: a reallocating slice would
// invalidate offsets other workers are mid-flight on.
func NewArena(capacity uint64) *Arena {
	return &Arena{
		words: make([]atomic.Uint64, capacity),
		cap:   capacity,
	}
}

// Alloc reserves n contiguous words and returns the base location. Calls
// under concurrency return pairwise disjoint, contiguous ranges.
func (a *Arena) Alloc(n uint64) (Loc, error) {
	if n == 0 {
		return 0, nil
	}
	loc := a.next.Add(n) - n
	if loc+n > a.cap {
		return 0, newError(ErrArenaExhausted, ArenaExhausted, "cannot allocate %d words at cursor %d (cap %d)", n, loc, a.cap)
	}
	return Loc(loc), nil
}

// Set stores a packed word (an atomic store that does not return the
// previous value). It is used during the single-threaded construction phase
// and by rewrite rules initializing nodes they have just allocated.
func (a *Arena) Set(loc Loc, t Term) {
	a.words[loc].Store(uint64(t))
}

// Get reads and unpacks a port.
func (a *Arena) Get(loc Loc) Term {
	return Term(a.words[loc].Load())
}

// Swap atomically exchanges the word at loc and returns the previous value.
// This is the fundamental primitive: reading-and-invalidating a port in
// one step.
func (a *Arena) Swap(loc Loc, t Term) Term {
	return Term(a.words[loc].Swap(uint64(t)))
}

// CompareAndSwap performs an atomic CAS on a single word.
func (a *Arena) CompareAndSwap(loc Loc, old, new Term) bool {
	return a.words[loc].CompareAndSwap(uint64(old), uint64(new))
}

// Len reports the number of words handed out so far.
func (a *Arena) Len() uint64 {
	n := a.next.Load()
	if n > a.cap {
		return a.cap
	}
	return n
}

// Cap reports the total backing size.
func (a *Arena) Cap() uint64 {
	return a.cap
}
