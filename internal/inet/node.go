package inet

// This file implements the front-end contract of spec §6.1. Each
// constructor allocates a node and initializes its ports; the principal
// port always stores (TAG, self_loc).

// NewVar allocates a single-word bound-variable occurrence.
func (n *Net) NewVar(varID uint64) (Loc, error) {
	loc, err := n.Alloc(1)
	if err != nil {
		return 0, err
	}
	t, err := Pack(VAR, varID)
	if err != nil {
		return 0, err
	}
	n.Set(loc, t)
	return loc, nil
}

// NewSub allocates a single-word binder slot awaiting a value.
func (n *Net) NewSub(varID uint64) (Loc, error) {
	loc, err := n.Alloc(1)
	if err != nil {
		return 0, err
	}
	t, err := Pack(SUB, varID)
	if err != nil {
		return 0, err
	}
	n.Set(loc, t)
	return loc, nil
}

// NUL is the trivial erased value; it carries no location of its own.
func NUL_() Term { return MustPack(NUL, 0) }

// ERA is the erasing context; it too carries no location of its own.
func ERA_() Term { return MustPack(ERA, 0) }

// NewLam builds a LAM node whose binder is an ordinary SUB(varID) awaiting
// substitution and whose body is the already-built positive term body.
// Multi-occurrence binders (the bound variable used more than once) are the
// front end's responsibility and are built with NewLamBound instead.
func (n *Net) NewLam(varID uint64, body Term) (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	n.Set(loc+0, MustPack(LAM, uint64(loc)))
	sub, err := Pack(SUB, varID)
	if err != nil {
		return 0, err
	}
	n.Set(loc+1, sub)
	n.Set(loc+2, body)
	return loc, nil
}

// NewLamBound allocates a LAM node's principal and binder slot, leaving the
// binder's initial occupant and the body to be filled in by the caller via
// Set. This is what a linearity-aware front end uses to park a DUP (rather
// than a plain SUB) at the binder when the bound variable occurs more than
// once.
func (n *Net) NewLamBound() (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	n.Set(loc+0, MustPack(LAM, uint64(loc)))
	return loc, nil
}

// NewApp builds an APP node: arg is the argument being applied, and the
// return slot is an ordinary SUB(retVarID) awaiting the reduced result.
func (n *Net) NewApp(arg Term, retVarID uint64) (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	n.Set(loc+0, MustPack(APP, uint64(loc)))
	n.Set(loc+1, arg)
	ret, err := Pack(SUB, retVarID)
	if err != nil {
		return 0, err
	}
	n.Set(loc+2, ret)
	return loc, nil
}

// NewDup builds a DUP node with both copy outputs initialized to ordinary
// SUB slots. Its label is minted fresh so it only annihilates against a SUP
// built with the same label (see DESIGN.md's resolution of the DUP⋈SUP
// open question).
func (n *Net) NewDup(var1, var2 uint64) (Loc, Term, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, 0, err
	}
	label := n.FreshLabel()
	n.Set(loc+0, MustPack(DUP, uint64(loc)))
	s1, err := Pack(SUB, var1)
	if err != nil {
		return 0, 0, err
	}
	s2, err := Pack(SUB, var2)
	if err != nil {
		return 0, 0, err
	}
	n.Set(loc+1, s1)
	n.Set(loc+2, s2)
	n.labels.set(loc, label)
	return loc, MustPack(DUP, uint64(loc)), nil
}

// NewDupRaw allocates a DUP node's principal only, for front ends that need
// to fill the two output slots themselves (chained fan-out for a variable
// used more than twice).
func (n *Net) NewDupRaw() (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	label := n.FreshLabel()
	n.Set(loc+0, MustPack(DUP, uint64(loc)))
	n.labels.set(loc, label)
	return loc, nil
}

// NewSup builds a SUP node holding the two superposed value references.
func (n *Net) NewSup(a, b Term) (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	label := n.FreshLabel()
	n.Set(loc+0, MustPack(SUP, uint64(loc)))
	n.Set(loc+1, a)
	n.Set(loc+2, b)
	n.labels.set(loc, label)
	return loc, nil
}

// NewSupLabeled builds a SUP sharing an existing label, used by rewrite
// rules that must reuse the label of a DUP they are commuting past.
func (n *Net) NewSupLabeled(label uint64, a, b Term) (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	n.Set(loc+0, MustPack(SUP, uint64(loc)))
	n.Set(loc+1, a)
	n.Set(loc+2, b)
	n.labels.set(loc, label)
	return loc, nil
}

// NewDupLabeled allocates a DUP node's principal reusing an existing label.
func (n *Net) NewDupLabeled(label uint64) (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	n.Set(loc+0, MustPack(DUP, uint64(loc)))
	n.labels.set(loc, label)
	return loc, nil
}

// NewDupLabeledFull builds a complete DUP node (principal plus both output
// slots) reusing an existing label, used by commuting-conversion rules that
// mint fresh duplicators tied to a label they don't own.
func (n *Net) NewDupLabeledFull(label uint64, var1, var2 uint64) (Loc, error) {
	loc, err := n.Alloc(3)
	if err != nil {
		return 0, err
	}
	s1, err := Pack(SUB, var1)
	if err != nil {
		return 0, err
	}
	s2, err := Pack(SUB, var2)
	if err != nil {
		return 0, err
	}
	n.Set(loc+0, MustPack(DUP, uint64(loc)))
	n.Set(loc+1, s1)
	n.Set(loc+2, s2)
	n.labels.set(loc, label)
	return loc, nil
}

// LabelOf returns the label minted for the DUP or SUP node at loc.
func (n *Net) LabelOf(loc Loc) uint64 {
	return n.labels.get(loc)
}
