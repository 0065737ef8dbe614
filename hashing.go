// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// tripleHash implements the node-store and memo-cache hash function
// ((g + h) >> f) mod M, where g, h are edges and f is the first component of
// the triple: the variable index for the unique table, the node id of the f
// operand for the memo cache. The
// shift by f (rather than, say, an XOR-mix of all three) is deliberate: it is
// the exact function the unique table and the computed table are specified
// to use, chosen upstream for how it spreads nodes with the same pair of
// children across different variable levels.
func tripleHash(f int32, g, h Handle, modulo int) int {
	sum := uint64(g) + uint64(h)
	sum >>= uint(f) % 64
	return int(sum % uint64(modulo))
}

// Fingerprint computes a deterministic 64-bit digest over the set of live
// node ids reachable from roots. Node ids are pool slots handed out in
// allocation order, so two managers that run the same sequence of operations
// end up with the same fingerprint, while building the same functions in a
// different order can yield a different one. That makes it a stronger
// regression check than a bare node count.
func (m *Manager) Fingerprint(roots ...Handle) uint64 {
	seen := make(map[uint32]struct{})
	var walk func(h Handle)
	walk = func(h Handle) {
		id := h.id()
		if id == 0 {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		n := &m.nodes[id]
		walk(n.low)
		walk(n.high)
	}
	for _, r := range roots {
		walk(r)
	}
	ids := make([]uint32, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	digest := xxhash.New()
	var buf [4]byte
	for _, id := range ids {
		binary.LittleEndian.PutUint32(buf[:], id)
		digest.Write(buf[:])
	}
	return digest.Sum64()
}
