// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

// uniqueTable is the canonicalizing (index, low, high) -> node map described
// by UTable in the original sources: a prime-sized array of bucket heads,
// each bucket a singly linked chain through node.next. Bucket collisions are
// resolved by walking the chain and comparing the full triple; unlike the
// memo cache, a unique-table entry is never evicted while the node it names
// is still reachable, since doing so would break canonicity.
type uniqueTable struct {
	buckets []int32 // head of the chain for each hash bucket, -1 if empty
}

func newUniqueTable(size int) uniqueTable {
	u := uniqueTable{buckets: make([]int32, primeGTE(size))}
	for i := range u.buckets {
		u.buckets[i] = -1
	}
	return u
}

func (u *uniqueTable) resize(size int) {
	u.buckets = make([]int32, primeGTE(size))
	for i := range u.buckets {
		u.buckets[i] = -1
	}
}

func (u *uniqueTable) bucket(index int32, low, high Handle) int {
	return tripleHash(index, low, high, len(u.buckets))
}

// insert links node id into its bucket's chain. Callers must have already
// verified the triple is not already present.
func (u *uniqueTable) insert(m *Manager, id uint32) {
	n := &m.nodes[id]
	h := u.bucket(n.index, n.low, n.high)
	n.next = u.buckets[h]
	u.buckets[h] = int32(id)
}

// find walks the chain for (index, low, high) and returns the matching
// node's id and true, or (0, false) if no such node exists yet.
func (u *uniqueTable) find(m *Manager, index int32, low, high Handle) (uint32, bool) {
	h := u.bucket(index, low, high)
	m.stats.uniqueAccess++
	for cur := u.buckets[h]; cur != -1; cur = m.nodes[cur].next {
		m.stats.uniqueChain++
		n := &m.nodes[cur]
		if n.index == index && n.low == low && n.high == high {
			m.stats.uniqueHit++
			return uint32(cur), true
		}
	}
	m.stats.uniqueMiss++
	return 0, false
}

// rebuild recomputes every bucket chain from scratch. Called after a
// collection compacts the node pool or after a resize changes bucket count.
func (u *uniqueTable) rebuild(m *Manager) {
	for i := range u.buckets {
		u.buckets[i] = -1
	}
	for id := uint32(1); id < uint32(len(m.nodes)); id++ {
		n := &m.nodes[id]
		if n.refcount == 0 && n.low == 0 && n.high == 0 {
			continue // free slot
		}
		u.insert(m, id)
	}
}
