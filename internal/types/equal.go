package types

// Equal implements the equality rules of spec §3: List and Vec compare
// element-wise and across tags; Map compares by the set of (key,
// value) pairs regardless of order; Fn and Atom compare by identity;
// everything else compares by tag and payload.
func Equal(a, b Value) bool {
	aSeq, aIsSeq := a.(Seq)
	bSeq, bIsSeq := b.(Seq)
	if aIsSeq && bIsSeq {
		return seqEqual(aSeq.Elements(), bSeq.Elements())
	}

	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Sym:
		bv, ok := b.(Sym)
		return ok && av == bv
	case Kw:
		bv, ok := b.(Kw)
		return ok && av == bv
	case *Map:
		bv, ok := b.(*Map)
		return ok && mapEqual(av, bv)
	case *Fn:
		bv, ok := b.(*Fn)
		return ok && av == bv
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	default:
		return false
	}
}

func seqEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func mapEqual(a, b *Map) bool {
	if len(a.Keys) != len(b.Keys) {
		return false
	}
	for i, k := range a.Keys {
		bv, ok := b.Get(k)
		if !ok || !Equal(a.Vals[i], bv) {
			return false
		}
	}
	return true
}
