// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

// memoEntry is a single slot of the computed cache: a standardized (f, g, h)
// triple mapped to the result of ite(f, g, h). The cache is lossy by design
// (spec-mandated): a colliding insert silently overwrites whatever triple was
// there before, never chains, and a miss never hard-faults, it just falls
// through to the recursive computation.
//
// The original CTable zero-initializes its slot array, so an empty slot with
// key (0, 0, 0) can spuriously "hit" a real query for ite(False, False,
// False) before anything has ever been stored there. We add an explicit
// valid flag to close that gap; it costs one bool per slot and removes a
// correctness footgun the zero-value encoding left open.
type memoEntry struct {
	valid bool
	f     Handle
	g     Handle
	h     Handle
	res   Handle
}

// memoCache is the single-slot-per-bucket computed table shared by ite and
// exist (exist keys its slots on (node, high, low) instead of (f, g, h), but
// the storage shape is identical).
type memoCache struct {
	slots []memoEntry
}

func newMemoCache(size int) memoCache {
	return memoCache{slots: make([]memoEntry, primeGTE(size))}
}

func (c *memoCache) resize(size int) {
	c.slots = make([]memoEntry, primeGTE(size))
}

func (c *memoCache) reset() {
	for i := range c.slots {
		c.slots[i] = memoEntry{}
	}
}

func (c *memoCache) lookup(f, g, h Handle) (Handle, bool) {
	idx := tripleHash(int32(f.id()), g, h, len(c.slots))
	e := &c.slots[idx]
	if e.valid && e.f == f && e.g == g && e.h == h {
		return e.res, true
	}
	return 0, false
}

func (c *memoCache) store(f, g, h, res Handle) {
	idx := tripleHash(int32(f.id()), g, h, len(c.slots))
	c.slots[idx] = memoEntry{valid: true, f: f, g: g, h: h, res: res}
}
