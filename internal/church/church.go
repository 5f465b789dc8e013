// Package church builds and runs small closed lambda terms directly on top
// of internal/inet, standing in for the parser/elaborator a full language
// would have in front of the runtime. It is the reference front end used by
// the demo scenarios and by internal/inet's own end-to-end tests.
package church

import "github.com/inetvm/inet/internal/inet"

// buildWorker is the reserved worker id used while a program is being
// constructed, single-threaded, before Evaluate spins up the pool. Any
// redexes formed at construction time (applying a value that already knows
// its function, e.g. wiring a combinator directly to a concrete argument)
// land in this worker's queue and are drained like any other.
const buildWorker = 0

// binder is the result of introducing a bound variable: where to install it
// in the enclosing LAM's binder slot, and one occurrence reference per use
// site the caller asked for.
type binder struct {
	slot        inet.Term
	occurrences []inet.Term
}

// bind allocates however many DUP nodes are needed to give a variable used
// `uses` times that many independent occurrence references, unifying three
// cases the runtime treats uniformly by what gets parked in the binder slot:
// zero uses parks an ERA (the substituted value is erased on beta), one use
// is an ordinary SUB, and two or more uses parks a fan-out chain of DUPs.
func bind(n *inet.Net, uses int) (binder, error) {
	switch {
	case uses == 0:
		return binder{slot: inet.ERA_()}, nil
	case uses == 1:
		varID := n.FreshVarID()
		loc, err := n.NewSub(varID)
		if err != nil {
			return binder{}, err
		}
		return binder{
			slot:        inet.MustPack(inet.SUB, uint64(loc)),
			occurrences: []inet.Term{inet.MustPack(inet.VAR, uint64(loc))},
		}, nil
	default:
		occ := make([]inet.Term, 0, uses)
		remaining := uses
		headLoc, err := n.NewDupRaw()
		if err != nil {
			return binder{}, err
		}
		cur := headLoc
		for remaining > 2 {
			nextLoc, err := n.NewDupRaw()
			if err != nil {
				return binder{}, err
			}
			n.Set(cur+1, inet.MustPack(inet.VAR, n.FreshVarID()))
			occ = append(occ, inet.MustPack(inet.VAR, uint64(cur+1)))
			n.Set(cur+2, inet.MustPack(inet.DUP, uint64(nextLoc)))
			cur = nextLoc
			remaining--
		}
		n.Set(cur+1, inet.MustPack(inet.VAR, n.FreshVarID()))
		n.Set(cur+2, inet.MustPack(inet.VAR, n.FreshVarID()))
		occ = append(occ, inet.MustPack(inet.VAR, uint64(cur+1)), inet.MustPack(inet.VAR, uint64(cur+2)))
		return binder{
			slot:        inet.MustPack(inet.DUP, uint64(headLoc)),
			occurrences: occ,
		}, nil
	}
}

// Lam builds a LAM node whose bound variable is used exactly uses times; body is a function that, given the occurrence references in order,
// produces the term to install as the lambda's body.
func Lam(n *inet.Net, uses int, body func(occurrences []inet.Term) (inet.Term, error)) (inet.Term, error) {
	b, err := bind(n, uses)
	if err != nil {
		return 0, err
	}
	loc, err := n.NewLamBound()
	if err != nil {
		return 0, err
	}
	n.Set(loc+1, b.slot)
	bodyTerm, err := body(b.occurrences)
	if err != nil {
		return 0, err
	}
	n.Set(loc+2, bodyTerm)
	return inet.MustPack(inet.LAM, uint64(loc)), nil
}

// App applies fn to arg and returns a reference to the (possibly not yet
// reduced) result. Building the application always allocates the APP node
// first, then links fn into its principal, mirroring how the runtime
// itself distinguishes "argument" (stored) from "function" (wired).
func App(n *inet.Net, fn, arg inet.Term) (inet.Term, error) {
	loc, err := n.NewApp(arg, n.FreshVarID())
	if err != nil {
		return 0, err
	}
	if err := n.Link(buildWorker, inet.MustPack(inet.APP, uint64(loc)), fn); err != nil {
		return 0, err
	}
	return inet.MustPack(inet.VAR, uint64(loc+2)), nil
}

// Identity builds λx. x.
func Identity(n *inet.Net) (inet.Term, error) {
	return Lam(n, 1, func(occ []inet.Term) (inet.Term, error) {
		return occ[0], nil
	})
}

// K builds λx. λy. x, the constant combinator; applying it twice discards
// its second argument.
func K(n *inet.Net) (inet.Term, error) {
	return Lam(n, 1, func(x []inet.Term) (inet.Term, error) {
		return Lam(n, 0, func(_ []inet.Term) (inet.Term, error) {
			return x[0], nil
		})
	})
}

// Numeral builds the Church numeral for k: λf. λx. f(f(...f x)), f applied
// k times. f is bound with k occurrences (0 if k == 0).
func Numeral(n *inet.Net, k uint64) (inet.Term, error) {
	return Lam(n, int(k), func(fOcc []inet.Term) (inet.Term, error) {
		return Lam(n, 1, func(xOcc []inet.Term) (inet.Term, error) {
			spine := xOcc[0]
			for i := uint64(0); i < k; i++ {
				next, err := App(n, fOcc[i], spine)
				if err != nil {
					return 0, err
				}
				spine = next
			}
			return spine, nil
		})
	})
}

// True builds λt. λf. t and False builds λt. λf. f, the Church booleans.
func True(n *inet.Net) (inet.Term, error) {
	return Lam(n, 1, func(t []inet.Term) (inet.Term, error) {
		return Lam(n, 0, func(_ []inet.Term) (inet.Term, error) {
			return t[0], nil
		})
	})
}

func False(n *inet.Net) (inet.Term, error) {
	return Lam(n, 0, func(_ []inet.Term) (inet.Term, error) {
		return Lam(n, 1, func(f []inet.Term) (inet.Term, error) {
			return f[0], nil
		})
	})
}

// If applies a Church boolean to its two branches: cond true false.
func If(n *inet.Net, cond, whenTrue, whenFalse inet.Term) (inet.Term, error) {
	applied, err := App(n, cond, whenTrue)
	if err != nil {
		return 0, err
	}
	return App(n, applied, whenFalse)
}

// Add builds the Church-encoded addition of a and b: λf. λx. a f (b f x).
func Add(n *inet.Net, a, b inet.Term) (inet.Term, error) {
	return Lam(n, 2, func(fOcc []inet.Term) (inet.Term, error) {
		return Lam(n, 1, func(xOcc []inet.Term) (inet.Term, error) {
			bf, err := App(n, b, fOcc[1])
			if err != nil {
				return 0, err
			}
			bfx, err := App(n, bf, xOcc[0])
			if err != nil {
				return 0, err
			}
			af, err := App(n, a, fOcc[0])
			if err != nil {
				return 0, err
			}
			return App(n, af, bfx)
		})
	})
}

// Mul builds the Church-encoded multiplication of a and b: λf. a (b f).
func Mul(n *inet.Net, a, b inet.Term) (inet.Term, error) {
	return Lam(n, 1, func(fOcc []inet.Term) (inet.Term, error) {
		bf, err := App(n, b, fOcc[0])
		if err != nil {
			return 0, err
		}
		return App(n, a, bf)
	})
}
