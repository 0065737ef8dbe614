// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

import "log"

// Manager owns one node pool, one unique table and one memo cache. It is the
// unit of sharing: two Handles are only comparable, and only canonical
// relative to each other, if they came from the same Manager. Nothing here
// is safe for concurrent use — a Manager is synchronous and single-threaded,
// exactly as one is meant to be used within a single synthesis pass.
type Manager struct {
	varnum int
	ithvar []Handle // ithvar[i] is the positive literal for variable i
	nodes  []node

	freehead int // head of the free-slot list, threaded through node.next
	freenum  int

	unique uniqueTable
	memo   memoCache  // ite
	equant memoCache  // exist, keyed on (node, high, low)

	cfg   configs
	stats cacheStat
}

// cacheStat mirrors the counters kept by the teacher's cache instrumentation
// (unique table accesses/hits/misses, chain length) surfaced by Stats.
type cacheStat struct {
	uniqueAccess int
	uniqueChain  int
	uniqueHit    int
	uniqueMiss   int
	memoHit      int
	memoMiss     int
}

// New creates a Manager with the given number of Boolean variables, indexed
// 0..varnum-1. Variable ordering is fixed at creation: variable i receives
// level i+1, level 0 is reserved for the leaf, and larger levels sit closer
// to the root — an internal node's level must be strictly greater than both
// of its children's (ordering invariant), matching spec.md §3 and
// Manager::createVariable in the original source.
func New(varnum int, opts ...Option) *Manager {
	if varnum <= 0 {
		invariant("sbdd: New called with non-positive varnum %d", varnum)
	}
	if int32(varnum) > _MAXVAR {
		invariant("sbdd: varnum %d exceeds maximum %d", varnum, _MAXVAR)
	}
	cfg := makeconfigs(varnum)
	for _, opt := range opts {
		opt(cfg)
	}

	m := &Manager{
		varnum: varnum,
		cfg:    *cfg,
	}
	m.seedPool()

	m.unique = newUniqueTable(cfg.nodesize)
	cachesize := cfg.cachesize
	if cachesize <= 0 {
		cachesize = cfg.nodesize/5 + 1
	}
	m.memo = newMemoCache(cachesize)
	m.equant = newMemoCache(cachesize)

	m.seedVars()
	return m
}

// seedPool (re)allocates the node pool at its configured initial size: slot
// 0 is the leaf, and every other slot starts out threaded onto the free
// list, exactly as the teacher's initial bddnodesize allocation does before
// any variable or ite node claims a slot.
func (m *Manager) seedPool() {
	m.nodes = make([]node, m.cfg.nodesize)
	m.nodes[0] = node{index: leafIndex, low: True, high: True, refcount: m.cfg.maxrefcount}
	m.freehead = -1
	m.freenum = 0
	for id := len(m.nodes) - 1; id >= 1; id-- {
		m.nodes[id] = node{next: int32(m.freehead)}
		m.freehead = id
		m.freenum++
	}
}

// seedVars claims one slot per declared variable from the free list just
// built by seedPool, assigning levels 1..varnum in declaration order.
func (m *Manager) seedVars() {
	m.ithvar = make([]Handle, m.varnum)
	for i := 0; i < m.varnum; i++ {
		id := m.allocSlot()
		m.nodes[id] = node{index: int32(i + 1), low: False, high: True, refcount: m.cfg.maxrefcount}
		m.unique.insert(m, id)
		m.ithvar[i] = makeHandle(id, false)
	}
}

// Varnum returns the number of Boolean variables the Manager was created
// with.
func (m *Manager) Varnum() int {
	return m.varnum
}

// Ithvar returns the positive literal for variable i (the function that is
// true exactly when variable i is true).
func (m *Manager) Ithvar(i int) Handle {
	m.checkVar(i)
	return m.ithvar[i]
}

// NIthvar returns the negative literal for variable i.
func (m *Manager) NIthvar(i int) Handle {
	return m.Ithvar(i).Not()
}

func (m *Manager) checkVar(i int) {
	if i < 0 || i >= m.varnum {
		invariant("sbdd: variable index %d out of range [0,%d)", i, m.varnum)
	}
}

// Index returns the variable level of the node h points at, or leafIndex
// (0) for a constant. It is one of the handle/edge-algebra primitives
// spec.md §4.1 names directly, alongside Low and High.
func (m *Manager) Index(h Handle) int32 {
	return m.nodes[h.id()].index
}

// Low returns the low edge of h, pushing h's own complement tag through it:
// negating a node negates both of its children's effective values, so when
// h is complemented the stored low edge is returned negated. The stored high
// edge is never complemented (invariant 3); High negates it the same way.
func (m *Manager) Low(h Handle) Handle {
	n := &m.nodes[h.id()]
	if h.IsComplemented() {
		return n.low.Not()
	}
	return n.low
}

// High returns the high edge of h, following the same complement-push-down
// rule as Low.
func (m *Manager) High(h Handle) Handle {
	n := &m.nodes[h.id()]
	if h.IsComplemented() {
		return n.high.Not()
	}
	return n.high
}

// allocSlot returns the id of a free node slot, collecting and growing the
// pool first if the free list has run dry — the same order the teacher's
// makenode follows: try gbc before giving up.
func (m *Manager) allocSlot() uint32 {
	if m.freehead == -1 {
		if err := m.collect(); err == errMemory {
			invariant("sbdd: node pool exhausted at maxnodesize=%d", m.cfg.maxnodesize)
		}
	}
	if m.freehead == -1 {
		invariant("sbdd: node pool exhausted at maxnodesize=%d", m.cfg.maxnodesize)
	}
	id := uint32(m.freehead)
	m.freehead = int(m.nodes[id].next)
	m.freenum--
	return id
}

// findOrAdd returns the canonical node for (index, low, high), creating one
// if none exists yet. low and high must already be standardized: in
// particular high must never carry the complement tag (invariant 3), and low
// must differ from high (invariant 2, no redundant test).
func (m *Manager) findOrAdd(index int32, low, high Handle) uint32 {
	if low == high {
		invariant("sbdd: findOrAdd called with low == high (redundant node at level %d)", index)
	}
	if high.IsComplemented() {
		invariant("sbdd: findOrAdd called with a complemented high edge at level %d", index)
	}
	if id, ok := m.unique.find(m, index, low, high); ok {
		return id
	}
	id := m.allocSlot()
	m.nodes[id] = node{index: index, low: low, high: high}
	m.unique.insert(m, id)
	return id
}

// AddRef increases the reference count on h and returns h unchanged, so
// calls can be chained. Constants are pinned already and are unaffected.
func (m *Manager) AddRef(h Handle) Handle {
	id := h.id()
	if id == 0 {
		return h
	}
	n := &m.nodes[id]
	if n.refcount < m.cfg.maxrefcount {
		n.refcount++
	}
	return h
}

// DelRef decreases the reference count on h and returns h unchanged. A node
// whose count reaches zero becomes eligible for collection but is not
// reclaimed until Clear or an internal collection pass runs.
func (m *Manager) DelRef(h Handle) Handle {
	id := h.id()
	if id == 0 {
		return h
	}
	n := &m.nodes[id]
	if n.refcount == 0 {
		return h
	}
	if n.refcount < m.cfg.maxrefcount {
		n.refcount--
	}
	return h
}

// CountNodes returns the number of distinct internal nodes reachable from
// roots (the leaf itself is not counted, matching the seed-scenario
// convention in the property tests). Passing multiple roots counts the
// union of their subgraphs, deduplicated with a golang-set so a node shared
// between two outputs is only counted once.
func (m *Manager) CountNodes(roots ...Handle) int {
	seen := newHandleSet()
	var walk func(h Handle)
	walk = func(h Handle) {
		id := h.id()
		if id == 0 || seen.contains(id) {
			return
		}
		seen.add(id)
		n := &m.nodes[id]
		walk(n.low)
		walk(n.high)
	}
	for _, r := range roots {
		walk(r)
	}
	return seen.size()
}

// Clear releases every node in the pool and resets both caches. It is the
// only mass-release primitive: there is no incremental per-drop collector,
// callers that need memory back mid-run call Clear and rebuild whatever
// handles they still need from scratch (an accepted trade against BuDDy-style
// automatic garbage collection, since Go's Handle values carry no finalizer
// hook back into a specific Manager instance).
func (m *Manager) Clear() {
	m.seedPool()
	m.unique.resize(m.cfg.nodesize)
	m.memo.reset()
	m.equant.reset()
	m.seedVars()
}

// collect reclaims every node with a zero reference count that is not
// reachable from a positive-refcount node, compacting them onto the free
// list. If fewer than cfg.minfreenodes percent of the pool is free
// afterward, it grows the pool (grow, below) and resizes both caches to
// match; either way both caches are reset, since a memoized result may name
// a node the sweep just freed. It is invoked automatically by allocSlot
// whenever the free list runs dry; callers never need to call it directly,
// matching the teacher's gbc being purely an internal detail of makenode.
//
// The returned error is one of errReset (collection alone made enough
// room), errResize (collection also grew the pool and its caches), or
// errMemory (not enough room could be freed and the pool is already at
// maxnodesize).
func (m *Manager) collect() error {
	marked := make([]bool, len(m.nodes))
	var mark func(id uint32)
	mark = func(id uint32) {
		if id == 0 || marked[id] {
			return
		}
		marked[id] = true
		n := &m.nodes[id]
		mark(n.low.id())
		mark(n.high.id())
	}
	for id := uint32(1); id < uint32(len(m.nodes)); id++ {
		if m.nodes[id].refcount > 0 {
			mark(id)
		}
	}
	m.freehead = -1
	m.freenum = 0
	for id := len(m.nodes) - 1; id >= 1; id-- {
		if !marked[id] {
			m.nodes[id] = node{next: int32(m.freehead)}
			m.freehead = id
			m.freenum++
		}
	}

	err := errReset
	if free := m.freenum * 100 / len(m.nodes); free < m.cfg.minfreenodes {
		if m.grow() {
			err = errResize
		} else if m.freehead == -1 {
			err = errMemory
		}
	}
	m.unique.rebuild(m)
	m.memo.reset()
	m.equant.reset()
	if _DEBUG && _LOGLEVEL > 0 {
		log.Println(err)
	}
	return err
}

// grow extends the node pool once a collection pass leaves it below
// cfg.minfreenodes percent free, the same trigger the teacher's bdd_gbc
// uses before calling bdd_noderesize. The increase is capped at
// cfg.maxnodeincrease per call and at cfg.maxnodesize overall; the unique
// table and both memo caches are resized to track the new pool size via
// cfg.cacheratio. It reports whether the pool actually grew.
func (m *Manager) grow() bool {
	old := len(m.nodes)
	inc := old
	if m.cfg.maxnodeincrease > 0 && inc > m.cfg.maxnodeincrease {
		inc = m.cfg.maxnodeincrease
	}
	newsize := old + inc
	if m.cfg.maxnodesize > 0 && newsize > m.cfg.maxnodesize {
		newsize = m.cfg.maxnodesize
	}
	if newsize <= old {
		return false
	}

	grown := make([]node, newsize)
	copy(grown, m.nodes)
	m.nodes = grown
	for id := newsize - 1; id >= old; id-- {
		m.nodes[id] = node{next: int32(m.freehead)}
		m.freehead = id
		m.freenum++
	}

	m.unique.resize(newsize)
	cachesize := len(m.memo.slots)
	if m.cfg.cacheratio > 0 {
		cachesize = newsize * m.cfg.cacheratio / 100
	}
	m.memo.resize(cachesize)
	m.equant.resize(cachesize)
	return true
}
