// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

// Cofactor restricts f to the case where variable i is fixed to branch,
// wherever in the graph that variable occurs (not just at f's own top
// level). Variable i is the one returned by Ithvar(i), stored at level i+1.
// The descent mirrors BDDNode::getCofactor: nodes whose level is below
// variable i's (closer to the leaf) pass through untouched, the node at i is
// resolved by picking its low or high child directly, and nodes above it are
// rebuilt from their recursively cofactored children.
//
// The source this is grounded on negates both recursive results together
// only when one of them carries a complement tag; in the original C++ that
// guard's closing brace is missing, so the second negation runs
// unconditionally regardless of the guard. Folding both children back
// together through reduce, the way this implementation does, makes that
// mistake impossible to reproduce: reduce always extracts and pushes the
// complement bit as a single unit, so there is no separate statement to
// forget to guard.
func (m *Manager) Cofactor(f Handle, i int, branch bool) Handle {
	m.checkVar(i)
	lvl := i + 1 // variable i sits at level i+1
	memo := make(map[Handle]Handle)
	var rec func(h Handle) Handle
	rec = func(h Handle) Handle {
		if h.IsConstant() {
			return h
		}
		if v, ok := memo[h]; ok {
			return v
		}
		idx := int(m.Index(h))
		var res Handle
		switch {
		case idx < lvl:
			// variable i cannot occur below h: the ordering invariant
			// guarantees every variable reachable from h has index < idx,
			// so a variable with a larger index already occurred above h.
			res = h
		case idx == lvl:
			if branch {
				res = m.High(h)
			} else {
				res = m.Low(h)
			}
		default:
			lo := rec(m.Low(h))
			hi := rec(m.High(h))
			res = m.reduce(int32(idx), lo, hi)
		}
		memo[h] = res
		return res
	}
	return rec(f)
}

// Exist computes the existential quantification of f over variable i:
// ∃x_i. f = f|x_i=0 ∨ f|x_i=1. It runs in O(|f|^2): each node is visited at
// most once per call thanks to the local descent memo, and the single
// OR performed at the quantified level is itself memoized in the shared
// equant cache, keyed on the node being quantified together with its own
// high and low children exactly as the Manager-level exist cache does in
// the source this is grounded on.
func (m *Manager) Exist(f Handle, i int) Handle {
	m.checkVar(i)
	lvl := i + 1 // variable i sits at level i+1
	descended := make(map[Handle]Handle)
	var rec func(h Handle) Handle
	rec = func(h Handle) Handle {
		if h.IsConstant() {
			return h
		}
		if v, ok := descended[h]; ok {
			return v
		}
		idx := int(m.Index(h))
		if idx < lvl {
			descended[h] = h
			return h
		}
		lo := m.Low(h)
		hi := m.High(h)
		var res Handle
		if idx == lvl {
			if cached, ok := m.equant.lookup(h, hi, lo); ok {
				m.stats.memoHit++
				res = cached
			} else {
				m.stats.memoMiss++
				res = m.Or(lo, hi)
				m.equant.store(h, hi, lo, res)
			}
		} else {
			loR := rec(lo)
			hiR := rec(hi)
			res = m.reduce(int32(idx), loR, hiR)
		}
		descended[h] = res
		return res
	}
	return rec(f)
}
