// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

import mapset "github.com/deckarep/golang-set/v2"

// handleSet deduplicates node ids across the (possibly overlapping)
// subgraphs of several roots. Grounded on the pairing of rudd with
// golang-set for node-handle bookkeeping.
type handleSet struct {
	s mapset.Set[uint32]
}

func newHandleSet() handleSet {
	return handleSet{s: mapset.NewSet[uint32]()}
}

func (h handleSet) contains(id uint32) bool {
	return h.s.Contains(id)
}

func (h handleSet) add(id uint32) {
	h.s.Add(id)
}

func (h handleSet) size() int {
	return h.s.Cardinality()
}
