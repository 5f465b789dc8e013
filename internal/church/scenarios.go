package church

import (
	"context"

	"github.com/inetvm/inet/internal/inet"
)

// Scenario builds a program on a fresh net and returns a reference to its
// root, ready for Evaluate + Readback. These mirror the worked examples the
// runtime's contract is checked against.
type Scenario func(n *inet.Net) (inet.Term, error)

// IdentityScenario applies the identity combinator to Church 3 and expects 3 back.
func IdentityScenario(n *inet.Net) (inet.Term, error) {
	id, err := Identity(n)
	if err != nil {
		return 0, err
	}
	three, err := Numeral(n, 3)
	if err != nil {
		return 0, err
	}
	return App(n, id, three)
}

// DoubleThreeScenario builds (λn. λf. λx. n f (n f x)) applied to Church 3, whose
// normal form is Church 6. n is used twice, exercising duplication of a
// nested-lambda numeral value.
func DoubleThreeScenario(n *inet.Net) (inet.Term, error) {
	double, err := Lam(n, 2, func(nOcc []inet.Term) (inet.Term, error) {
		return Lam(n, 2, func(fOcc []inet.Term) (inet.Term, error) {
			return Lam(n, 1, func(xOcc []inet.Term) (inet.Term, error) {
				nfx, err := App(n, nOcc[1], fOcc[1])
				if err != nil {
					return 0, err
				}
				nfx, err = App(n, nfx, xOcc[0])
				if err != nil {
					return 0, err
				}
				nf, err := App(n, nOcc[0], fOcc[0])
				if err != nil {
					return 0, err
				}
				return App(n, nf, nfx)
			})
		})
	})
	if err != nil {
		return 0, err
	}
	three, err := Numeral(n, 3)
	if err != nil {
		return 0, err
	}
	return App(n, double, three)
}

// FourTimesThreeScenario builds Mul(4, 3), whose normal form is Church 12.
func FourTimesThreeScenario(n *inet.Net) (inet.Term, error) {
	four, err := Numeral(n, 4)
	if err != nil {
		return 0, err
	}
	three, err := Numeral(n, 3)
	if err != nil {
		return 0, err
	}
	return Mul(n, four, three)
}

// KErasureScenario builds K applied to Church 5 and Church 9; K discards
// its second argument, so evaluating must erase the unused Church 9 while
// the result reads back as 5.
func KErasureScenario(n *inet.Net) (inet.Term, error) {
	k, err := K(n)
	if err != nil {
		return 0, err
	}
	five, err := Numeral(n, 5)
	if err != nil {
		return 0, err
	}
	nine, err := Numeral(n, 9)
	if err != nil {
		return 0, err
	}
	kFive, err := App(n, k, five)
	if err != nil {
		return 0, err
	}
	return App(n, kFive, nine)
}

// DuplicationScenario builds (λf. f (f z)) applied to the identity
// combinator; f is shared between two applications, so evaluating it forces
// a real DUP-vs-LAM clone. z stands for a fresh free reference so the
// result reads back exactly as that reference.
func DuplicationScenario(n *inet.Net) (inet.Term, inet.Loc, error) {
	zVarID := n.FreshVarID()
	zLoc, err := n.NewSub(zVarID)
	if err != nil {
		return 0, 0, err
	}
	z := inet.MustPack(inet.VAR, uint64(zLoc))

	body, err := Lam(n, 2, func(fOcc []inet.Term) (inet.Term, error) {
		fz, err := App(n, fOcc[1], z)
		if err != nil {
			return 0, err
		}
		return App(n, fOcc[0], fz)
	})
	if err != nil {
		return 0, 0, err
	}
	id, err := Identity(n)
	if err != nil {
		return 0, 0, err
	}
	root, err := App(n, body, id)
	return root, zLoc, err
}

// IfTrueScenario builds (if True 1 0), whose normal form is Church 1.
func IfTrueScenario(n *inet.Net) (inet.Term, error) {
	t, err := True(n)
	if err != nil {
		return 0, err
	}
	one, err := Numeral(n, 1)
	if err != nil {
		return 0, err
	}
	zero, err := Numeral(n, 0)
	if err != nil {
		return 0, err
	}
	return If(n, t, one, zero)
}

// Run evaluates the term at root to normal form and reads it back. A zero
// Budget means unbounded.
func Run(ctx context.Context, n *inet.Net, root inet.Term, budget inet.Budget) (inet.Value, inet.Statistics, error) {
	stats, err := n.Evaluate(ctx, budget)
	if err != nil {
		return inet.Value{}, stats, err
	}
	return n.Readback(Resolve(n, root)), stats, nil
}

// Resolve follows a VAR reference to whatever value has, by now, been moved
// into its target, so callers past Evaluate see the concrete term rather
// than a forwarding pointer. A VAR whose target is still a vacant SUB slot
// (a free reference) is returned as that VAR.
func Resolve(n *inet.Net, t inet.Term) inet.Term {
	for t.Tag() == inet.VAR {
		next := n.Get(t.Loc())
		if next == t || next.Tag() == inet.SUB {
			return t
		}
		t = next
	}
	return t
}
