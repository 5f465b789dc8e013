package inet

import (
	"context"
	"sync"
	"sync/atomic"
)

// Budget bounds one call to Evaluate. A zero MaxSteps means unbounded.
type Budget struct {
	MaxSteps uint64
}

// idleGate tracks how many of the pool's workers are currently without work,
// waking waiters whenever that changes. Modeled on the reference runtime's
// own per-worker has_work/has_result Cond pair, generalized to a single
// shared quiescence signal since work here flows through a shared queue
// rather than being dispatched to a named worker.
type idleGate struct {
	mu    sync.Mutex
	cond  *sync.Cond
	idle  int
	total int
}

func newIdleGate(total int) *idleGate {
	g := &idleGate{total: total}
	g.cond = sync.NewCond(&g.mu)
	return g
}

func (g *idleGate) markIdle() {
	g.mu.Lock()
	g.idle++
	g.cond.Broadcast()
	g.mu.Unlock()
}

func (g *idleGate) markBusy() {
	g.mu.Lock()
	g.idle--
	g.mu.Unlock()
}

// waitForChange reports whether every worker is simultaneously idle, meaning
// the queue is empty and nothing in flight can push more work. If they are
// not all idle yet, it blocks until the next markIdle and reports again.
func (g *idleGate) waitForChange() (allIdle bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idle >= g.total {
		return true
	}
	g.cond.Wait()
	return g.idle >= g.total
}

// Evaluate drains the redex queue to normal form, or until ctx is canceled
// or budget.MaxSteps active pairs have been processed. Workers pull from
// their own deque first and steal from peers when idle (spec §5); a shared
// idleGate lets an idle worker block instead of busy-spinning, and detects
// global quiescence once every worker is idle at once.
func (n *Net) Evaluate(ctx context.Context, budget Budget) (Statistics, error) {
	gate := newIdleGate(n.cfg.Workers)
	var steps atomic.Uint64
	var firstErr atomic.Value // stores error
	stop := make(chan struct{})
	var stopOnce sync.Once

	halt := func(err error) {
		if err != nil {
			firstErr.CompareAndSwap(nil, err)
		}
		stopOnce.Do(func() { close(stop) })
	}

	var wg sync.WaitGroup
	for w := 0; w < n.cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			idle := false
			for {
				select {
				case <-stop:
					return
				case <-ctx.Done():
					halt(ctx.Err())
					return
				default:
				}

				r, ok := n.queue.Pop(worker)
				if !ok {
					if !idle {
						idle = true
						gate.markIdle()
					}
					if gate.waitForChange() {
						select {
						case <-stop:
						default:
							halt(nil)
						}
						return
					}
					continue
				}
				if idle {
					idle = false
					gate.markBusy()
				}

				if budget.MaxSteps > 0 && steps.Add(1) > budget.MaxSteps {
					halt(newErrorAt(ErrStepLimitReached, StepLimitReached, r.Neg.Loc(), r.Neg.Tag(),
						"exceeded step budget of %d", budget.MaxSteps))
					return
				}
				if err := n.Rewrite(worker, r); err != nil {
					halt(err)
					return
				}
			}
		}(w)
	}

	wg.Wait()
	if v := firstErr.Load(); v != nil {
		return n.Statistics(), v.(error)
	}
	return n.Statistics(), nil
}
