// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

import "errors"

// number of bytes in two ints plus one 32-bit field (adapted from uintSize in
// the math/bits package)
const wordsize = (2*(32<<(^uint(0)>>32&1)) + 32) / 8 // 12 (32 bits) or 20 (64 bits)

// _MINFREENODES is the minimal number of nodes (%) that has to be left after a
// garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of variables a Manager can support. Variable
// indices are stored alongside the low/high edges of a node in a single
// struct, so we keep well clear of overflowing an int32 level field.
const _MAXVAR int32 = 0x1FFFFF

// _MAXREFCOUNT is the saturation ceiling for a node's reference count. Once a
// node's count reaches this value (variables and constants start pinned at
// it) it is never collected and the counter never decreases.
const _MAXREFCOUNT uint32 = 1<<16 - 1

// _DEFAULTMAXNODEINC is the default limit on the increase in the number of
// nodes during a single resize (approx. one million nodes).
const _DEFAULTMAXNODEINC int = 1 << 20

var errMemory = errors.New("sbdd: unable to grow node pool")
var errResize = errors.New("sbdd: cache resize required")
var errReset = errors.New("sbdd: cache reset required")
