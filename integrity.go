// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

import "fmt"

// Integrity walks the subgraphs rooted at roots (every live node in the pool
// if no roots are given) and checks the structural invariants every node is
// supposed to satisfy: ordering (a node's index is strictly greater than
// both children's — level 0 is the leaf, larger levels sit closer to the
// root), reduction (the two children are distinct), and that the high edge
// never carries a complement tag. It returns the first violation found, or
// nil.
//
// There is no equivalent single routine in the sources this module is
// grounded on — the checks there are scattered across asserts inline in the
// node constructor and the cofactor/ite recursions — so this is assembled
// fresh from the invariants those asserts individually enforce, using the
// same mark/traverse idiom the garbage collector uses to walk the pool.
func (m *Manager) Integrity(roots ...Handle) error {
	visit := func(id uint32) error {
		n := &m.nodes[id]
		if n.isLeaf() {
			return nil
		}
		if n.low == n.high {
			return fmt.Errorf("sbdd: node %d at level %d has identical low and high children (reduction violated)", id, n.index)
		}
		if n.high.IsComplemented() {
			return fmt.Errorf("sbdd: node %d at level %d has a complemented high edge", id, n.index)
		}
		if lowIdx := m.nodes[n.low.id()].index; n.index <= lowIdx {
			return fmt.Errorf("sbdd: node %d at level %d has low child at level %d (ordering violated)", id, n.index, lowIdx)
		}
		if highIdx := m.nodes[n.high.id()].index; n.index <= highIdx {
			return fmt.Errorf("sbdd: node %d at level %d has high child at level %d (ordering violated)", id, n.index, highIdx)
		}
		return nil
	}

	if len(roots) == 0 {
		for id := uint32(1); id < uint32(len(m.nodes)); id++ {
			n := &m.nodes[id]
			if n.refcount == 0 && n.low == 0 && n.high == 0 {
				continue // free slot
			}
			if err := visit(id); err != nil {
				return err
			}
		}
		return nil
	}

	seen := newHandleSet()
	var walk func(h Handle) error
	walk = func(h Handle) error {
		id := h.id()
		if id == 0 || seen.contains(id) {
			return nil
		}
		seen.add(id)
		if err := visit(id); err != nil {
			return err
		}
		n := &m.nodes[id]
		if err := walk(n.low); err != nil {
			return err
		}
		return walk(n.high)
	}
	for _, r := range roots {
		if err := walk(r); err != nil {
			return err
		}
	}
	return nil
}
