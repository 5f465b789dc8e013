package inet

// Move and Link are the only ways the graph is extended after construction
// (spec §4.4). Both are trampolined into a single loop so that long
// forwarding chains cannot blow the Go stack; MaxWiringDepth bounds the
// number of hops before WiringOverflow is reported.
//
// A pending step is either "move into a location" or "link a negative term
// to a positive term"; the two spec operations recurse into each other, so
// the trampoline alternates between them explicitly.

type wireStep struct {
	isMove bool
	loc    Loc  // valid when isMove
	neg    Term // valid when !isMove
	pos    Term
}

// Move installs the positive term pos into the negative slot at loc.
func (n *Net) Move(worker int, loc Loc, pos Term) error {
	return n.wire(worker, wireStep{isMove: true, loc: loc, pos: pos})
}

// Link wires a negative port neg to a positive term pos.
func (n *Net) Link(worker int, neg, pos Term) error {
	return n.wire(worker, wireStep{isMove: false, neg: neg, pos: pos})
}

func (n *Net) wire(worker int, first wireStep) error {
	step := first
	for depth := 0; ; depth++ {
		if depth >= n.cfg.MaxWiringDepth {
			if step.isMove {
				return newErrorAt(ErrWiringOverflow, WiringOverflow, step.loc, 0, "move recursion exceeded %d hops", n.cfg.MaxWiringDepth)
			}
			return newErrorAt(ErrWiringOverflow, WiringOverflow, step.pos.Loc(), step.neg.Tag(), "link recursion exceeded %d hops", n.cfg.MaxWiringDepth)
		}

		if step.isMove {
			prev := n.arena.Swap(step.loc, step.pos)
			if prev.Tag() == SUB {
				return nil
			}
			step = wireStep{isMove: false, neg: prev, pos: step.pos}
			continue
		}

		// Link step.
		neg, pos := step.neg, step.pos
		if pos.Tag() == VAR {
			s := pos.Loc()
			prev := n.arena.Swap(s, neg)
			if prev.Tag() == SUB {
				return nil
			}
			step = wireStep{isMove: true, loc: s, pos: prev}
			continue
		}
		n.queue.Push(worker, Redex{Neg: neg, Pos: pos})
		return nil
	}
}
