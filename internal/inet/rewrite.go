package inet

// rule is one entry of the dispatch table keyed by (negTag, posTag).
type rule func(n *Net, worker int, neg, pos Term) error

var dispatch = map[[2]Tag]rule{
	{APP, LAM}: applam,
	{APP, SUP}: appsup,
	{DUP, LAM}: duplam,
	{DUP, SUP}: dupsup,
	{DUP, NUL}: dupnul,
	{ERA, LAM}: eralam,
	{ERA, SUP}: erasup,
	{ERA, NUL}: eranul,
}

// Rewrite dispatches one active pair to its rule. Polarity-correct pairs
// with no rule are a front-end bug (spec §4.5): reported as
// UnknownInteraction rather than silently ignored.
func (n *Net) Rewrite(worker int, r Redex) error {
	rl, ok := dispatch[[2]Tag{r.Neg.Tag(), r.Pos.Tag()}]
	if !ok {
		return newErrorAt(ErrUnknownInteraction, UnknownInteraction, r.Neg.Loc(), r.Neg.Tag(),
			"no rule for %s <-> %s", r.Neg.Tag(), r.Pos.Tag())
	}
	return rl(n, worker, r.Neg, r.Pos)
}

// erase walks a value and reclaims its direct structure. VAR/SUB/NUL/ERA
// terminate the recursion; LAM/APP/SUP/DUP have their two aux ports swapped
// to the zero word and the previous occupants are recursively erased. This
// is shallow by design (spec §1: no garbage collector beyond explicit
// erasure) — it does not chase VAR forwarding into whatever a port is
// parked against.
func (n *Net) erase(t Term) {
	switch t.Tag() {
	case VAR, SUB, NUL, ERA:
		return
	default:
		loc := t.Loc()
		c1 := n.arena.Swap(loc+1, zero)
		c2 := n.arena.Swap(loc+2, zero)
		n.erase(c1)
		n.erase(c2)
	}
}

// applam: APP joins LAM. Beta reduction.
func applam(n *Net, worker int, neg, pos Term) error {
	appLoc, lamLoc := neg.Loc(), pos.Loc()
	arg := n.arena.Swap(appLoc+1, zero)
	body := n.arena.Swap(lamLoc+2, zero)
	if err := n.Move(worker, lamLoc+1, arg); err != nil {
		return err
	}
	if err := n.Move(worker, appLoc+2, body); err != nil {
		return err
	}
	n.counts.incBeta()
	return nil
}

// appsup: an application's function position resolved to a superposition
// (a variable shared by an earlier duplication). The application
// distributes over both alternatives; the argument is duplicated once with
// the SUP's own label so a later re-annihilation against the same
// duplication event stays sound. Grounded in the reference runtime's own
// APP/PAR commutation.
func appsup(n *Net, worker int, neg, pos Term) error {
	appLoc, supLoc := neg.Loc(), pos.Loc()
	arg := n.Get(appLoc + 1)
	retSlot := appLoc + 2
	label := n.LabelOf(supLoc)
	a := n.Get(supLoc + 1)
	b := n.Get(supLoc + 2)

	dupLoc, err := n.NewDupLabeledFull(label, n.FreshVarID(), n.FreshVarID())
	if err != nil {
		return err
	}
	app0, err := n.NewApp(MustPack(VAR, uint64(dupLoc+1)), n.FreshVarID())
	if err != nil {
		return err
	}
	app1, err := n.NewApp(MustPack(VAR, uint64(dupLoc+2)), n.FreshVarID())
	if err != nil {
		return err
	}
	newSup, err := n.NewSupLabeled(label, MustPack(VAR, uint64(app0+2)), MustPack(VAR, uint64(app1+2)))
	if err != nil {
		return err
	}

	if err := n.Link(worker, MustPack(DUP, uint64(dupLoc)), arg); err != nil {
		return err
	}
	if err := n.Link(worker, MustPack(APP, uint64(app0)), a); err != nil {
		return err
	}
	if err := n.Link(worker, MustPack(APP, uint64(app1)), b); err != nil {
		return err
	}
	if err := n.Move(worker, retSlot, MustPack(SUP, uint64(newSup))); err != nil {
		return err
	}
	n.counts.incDup()
	return nil
}

// duplam: DUP joins LAM. Clones the lambda into two copies; the shared
// bound variable becomes a superposition, and the body is fed into a fresh
// duplicator (spec §4.5).
func duplam(n *Net, worker int, neg, pos Term) error {
	dupLoc, lamLoc := neg.Loc(), pos.Loc()
	originalBody := n.Get(lamLoc + 2)

	c1, err := n.NewLamBound()
	if err != nil {
		return err
	}
	c2, err := n.NewLamBound()
	if err != nil {
		return err
	}
	d1, err := n.NewDupRaw()
	if err != nil {
		return err
	}
	d2, err := n.NewDupRaw()
	if err != nil {
		return err
	}

	// C1's and C2's bodies forward to D2's two outputs.
	n.Set(c1+2, MustPack(VAR, uint64(d2+1)))
	n.Set(c2+2, MustPack(VAR, uint64(d2+2)))
	n.Set(d2+1, MustPack(SUB, n.FreshVarID()))
	n.Set(d2+2, MustPack(SUB, n.FreshVarID()))

	// D1's two outputs forward into C1's and C2's binder slots.
	n.Set(d1+1, MustPack(SUB, n.FreshVarID()))
	n.Set(d1+2, MustPack(SUB, n.FreshVarID()))
	n.Set(c1+1, MustPack(VAR, uint64(d1+1)))
	n.Set(c2+1, MustPack(VAR, uint64(d1+2)))

	// The original binder now yields a superposition of the two clones'
	// shared variable, referenced through D1's outputs.
	sup, err := n.NewSup(MustPack(VAR, uint64(d1+1)), MustPack(VAR, uint64(d1+2)))
	if err != nil {
		return err
	}
	if err := n.Move(worker, lamLoc+1, MustPack(SUP, uint64(sup))); err != nil {
		return err
	}
	if err := n.Link(worker, MustPack(DUP, uint64(d2)), originalBody); err != nil {
		return err
	}
	if err := n.Move(worker, dupLoc+1, MustPack(LAM, uint64(c1))); err != nil {
		return err
	}
	if err := n.Move(worker, dupLoc+2, MustPack(LAM, uint64(c2))); err != nil {
		return err
	}
	n.counts.incDup()
	return nil
}

// eralam: erase a lambda. Moves a NUL into the binder and recursively
// erases the body.
func eralam(n *Net, worker int, neg, pos Term) error {
	lamLoc := pos.Loc()
	if err := n.Move(worker, lamLoc+1, NUL_()); err != nil {
		return err
	}
	n.erase(n.Get(lamLoc + 2))
	n.counts.incEra()
	return nil
}

// erasup: erase a superposition by recursively erasing both components.
func erasup(n *Net, worker int, neg, pos Term) error {
	supLoc := pos.Loc()
	n.erase(n.Get(supLoc + 1))
	n.erase(n.Get(supLoc + 2))
	n.counts.incEra()
	return nil
}

// eranul: ERA meets a trivial value. Nothing to reclaim beyond the count.
func eranul(n *Net, worker int, neg, pos Term) error {
	n.counts.incAnni()
	return nil
}

// dupnul: duplicating a trivial value yields two trivial values.
func dupnul(n *Net, worker int, neg, pos Term) error {
	dupLoc := neg.Loc()
	if err := n.Move(worker, dupLoc+1, NUL_()); err != nil {
		return err
	}
	if err := n.Move(worker, dupLoc+2, NUL_()); err != nil {
		return err
	}
	n.counts.incAnni()
	return nil
}

// dupsup: DUP joins SUP. If the labels match, this is the DUP that produced
// this SUP (or an equivalent one): cross-wire the outputs directly; the two
// nodes' words are left in place. If the labels differ, this is an unrelated
// duplication event passing through; commute it into two fresh SUPs each
// built from a pair of fresh same-labeled DUPs (the standard
// interaction-combinator commuting conversion), counted as a duplication
// rather than an annihilation.
func dupsup(n *Net, worker int, neg, pos Term) error {
	dupLoc, supLoc := neg.Loc(), pos.Loc()
	labelD := n.LabelOf(dupLoc)
	labelS := n.LabelOf(supLoc)
	a := n.Get(supLoc + 1)
	b := n.Get(supLoc + 2)

	if labelD == labelS {
		if err := n.Move(worker, dupLoc+1, a); err != nil {
			return err
		}
		if err := n.Move(worker, dupLoc+2, b); err != nil {
			return err
		}
		n.counts.incAnni()
		return nil
	}

	d1, err := n.NewDupLabeledFull(labelD, n.FreshVarID(), n.FreshVarID())
	if err != nil {
		return err
	}
	d2, err := n.NewDupLabeledFull(labelD, n.FreshVarID(), n.FreshVarID())
	if err != nil {
		return err
	}
	sup0, err := n.NewSupLabeled(labelS, MustPack(VAR, uint64(d1+1)), MustPack(VAR, uint64(d2+1)))
	if err != nil {
		return err
	}
	sup1, err := n.NewSupLabeled(labelS, MustPack(VAR, uint64(d1+2)), MustPack(VAR, uint64(d2+2)))
	if err != nil {
		return err
	}
	if err := n.Link(worker, MustPack(DUP, uint64(d1)), a); err != nil {
		return err
	}
	if err := n.Link(worker, MustPack(DUP, uint64(d2)), b); err != nil {
		return err
	}
	if err := n.Move(worker, dupLoc+1, MustPack(SUP, uint64(sup0))); err != nil {
		return err
	}
	if err := n.Move(worker, dupLoc+2, MustPack(SUP, uint64(sup1))); err != nil {
		return err
	}
	n.counts.incDup()
	return nil
}
