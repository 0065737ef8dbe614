// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

// standardize canonicalizes an ITE triple before it is looked up in the memo
// cache or recursed into, applying the identity and complement-push rules:
// f's own complement tag is eliminated by swapping the two branches, and any
// complement tag left on g is factored out into the returned accumulator bit
// so the recursive core only ever sees a regular g.
//
// The original source also swaps operands purely to improve cache hit rates
// when g or h is a constant or g == !h (a handful of symmetry rules that
// compare variable indices). Those rules are a performance tuning, not a
// correctness requirement — the memo cache here is the same lossy
// single-slot design the original uses, so a missed symmetry swap costs a
// cache miss, never a wrong answer — and are left out to keep this function
// auditable; see DESIGN.md.
func standardize(f, g, h Handle) (Handle, Handle, Handle, bool) {
	if f.IsComplemented() {
		f = f.Not()
		g, h = h, g
	}
	switch {
	case g == f:
		g = True
	case g == f.Not():
		g = False
	}
	switch {
	case h == f:
		h = False
	case h == f.Not():
		h = True
	}
	comp := false
	if g.IsComplemented() {
		g = g.Not()
		h = h.Not()
		comp = true
	}
	return f, g, h, comp
}

// Ite is the universal synthesis primitive: ite(f,g,h) = f·g + f'·h. Every
// other Boolean operator reduces to a single call to Ite.
func (m *Manager) Ite(f, g, h Handle) Handle {
	f, g, h, comp := standardize(f, g, h)
	res := m.iteRec(f, g, h)
	if comp {
		res = res.Not()
	}
	return res
}

// restrict returns the pair (cofactor at 0, cofactor at 1) of h with respect
// to variable level lvl: if h does not depend on lvl (it is a constant or a
// node whose own level differs from lvl), both cofactors equal h unchanged.
func (m *Manager) restrict(h Handle, lvl int32) (Handle, Handle) {
	if m.Index(h) != lvl {
		return h, h
	}
	return m.Low(h), m.High(h)
}

// max3 returns the largest of three variable levels — the "top" variable,
// the one closest to the root, that any of f, g, h can still depend on, and
// so the variable ite recurses on next.
func max3(a, b, c int32) int32 {
	top := a
	if b > top {
		top = b
	}
	if c > top {
		top = c
	}
	return top
}

func (m *Manager) iteRec(f, g, h Handle) Handle {
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case g == h:
		return g
	case g == True && h == False:
		return f
	}

	if res, ok := m.memo.lookup(f, g, h); ok {
		m.stats.memoHit++
		return res
	}
	m.stats.memoMiss++

	top := max3(m.Index(f), m.Index(g), m.Index(h))
	fLow, fHigh := m.restrict(f, top)
	gLow, gHigh := m.restrict(g, top)
	hLow, hHigh := m.restrict(h, top)

	lo := m.Ite(fLow, gLow, hLow)
	hi := m.Ite(fHigh, gHigh, hHigh)

	result := m.reduce(top, lo, hi)
	m.memo.store(f, g, h, result)
	return result
}

// reduce builds the canonical handle for a node at level lvl with the given
// children, folding the node away (invariant 2: no redundant tests) when
// both children agree, and pushing any complement on the high child up into
// the returned handle so the high edge of whatever node gets created is
// never complemented (invariant 3).
func (m *Manager) reduce(lvl int32, low, high Handle) Handle {
	if low == high {
		return low
	}
	comp := false
	if high.IsComplemented() {
		low, high = low.Not(), high.Not()
		comp = true
	}
	id := m.findOrAdd(lvl, low, high)
	h := makeHandle(id, false)
	if comp {
		h = h.Not()
	}
	return h
}

// And computes f AND g.
func (m *Manager) And(f, g Handle) Handle { return m.Ite(f, g, False) }

// Or computes f OR g.
func (m *Manager) Or(f, g Handle) Handle { return m.Ite(f, True, g) }

// Xor computes f XOR g.
func (m *Manager) Xor(f, g Handle) Handle { return m.Ite(f, g.Not(), g) }

// Nand computes f NAND g.
func (m *Manager) Nand(f, g Handle) Handle { return m.Ite(f, g.Not(), True) }

// Nor computes f NOR g. The original source flags this operator's symbol
// (|, normally "or") as misleading for what it actually computes; we name
// the method for the semantics, not the symbol.
func (m *Manager) Nor(f, g Handle) Handle { return m.Ite(f, False, g.Not()) }

// Xnor computes f XNOR g (logical biconditional).
func (m *Manager) Xnor(f, g Handle) Handle { return m.Ite(f, g, g.Not()) }

// GreaterThan computes f AND NOT g.
func (m *Manager) GreaterThan(f, g Handle) Handle { return m.Ite(f, g.Not(), False) }

// LessThan computes NOT f AND g.
func (m *Manager) LessThan(f, g Handle) Handle { return m.Ite(f, False, g) }

// Not negates f. It is O(1): negation never allocates a node, it only flips
// a tag bit.
func (m *Manager) Not(f Handle) Handle { return f.Not() }
