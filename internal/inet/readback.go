package inet

// Value is the readback result of a fully-reduced term: a Church numeral, a
// Church boolean, or an opaque Function for anything else. Shape matching is
// conservative (spec §4.7): on any structural mismatch the result falls
// back to Function rather than guessing.
type Value struct {
	Kind    ValueKind
	Number  uint64
	Boolean bool
}

type ValueKind int

const (
	KindFunction ValueKind = iota
	KindNumber
	KindBoolean
)

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return itoa(v.Number)
	case KindBoolean:
		if v.Boolean {
			return "true"
		}
		return "false"
	default:
		return "<function>"
	}
}

// Readback classifies a fully-reduced term rooted at root. It never mutates
// the net: both shapes are recognized by walking the static structure a
// normal-form Church encoding leaves behind, rather than by re-applying the
// term to sentinel arguments and reducing again.
func (n *Net) Readback(root Term) Value {
	if num, ok := n.detectNumber(root); ok {
		return Value{Kind: KindNumber, Number: num}
	}
	if b, ok := n.detectBoolean(root); ok {
		return Value{Kind: KindBoolean, Boolean: b}
	}
	return Value{Kind: KindFunction}
}

// detectNumber matches LAM(f). LAM(x). f(f(...f x)) and returns the count of
// f-applications. f's binder may hold a SUB or, when f occurs more than
// once, a DUP fan-out; either way, every application in the spine ends up
// parked at f's binder location or one of that DUP's outputs, discoverable
// by walking the VAR chain the spine argument leaves behind.
func (n *Net) detectNumber(root Term) (uint64, bool) {
	if root.Tag() != LAM {
		return 0, false
	}
	inner := n.Get(root.Loc() + 2)
	if inner.Tag() != LAM {
		return 0, false
	}
	xBinder := inner.Loc() + 1
	spine := n.Get(inner.Loc() + 2)

	var count uint64
	for {
		if spine.Tag() == VAR && spine.Loc() == xBinder {
			return count, true
		}
		if spine.Tag() != VAR {
			return 0, false
		}
		parked := n.Get(spine.Loc())
		if parked.Tag() != APP {
			return 0, false
		}
		spine = n.Get(parked.Loc() + 1)
		count++
		if count > n.cfg.ArenaCapacity {
			return 0, false
		}
	}
}

// detectBoolean matches LAM(t). LAM(f). t (Church true) or LAM(t). LAM(f). f
// (Church false).
func (n *Net) detectBoolean(root Term) (bool, bool) {
	if root.Tag() != LAM {
		return false, false
	}
	tBinder := root.Loc() + 1
	inner := n.Get(root.Loc() + 2)
	if inner.Tag() != LAM {
		return false, false
	}
	fBinder := inner.Loc() + 1
	choice := n.Get(inner.Loc() + 2)
	if choice.Tag() != VAR {
		return false, false
	}
	switch choice.Loc() {
	case tBinder:
		return true, true
	case fBinder:
		return false, true
	default:
		return false, false
	}
}
