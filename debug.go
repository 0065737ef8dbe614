// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// +build debug

package sbdd

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

func init() {
	log.SetOutput(os.Stdout)
}

// logTable dumps the node pool to the log, one line per allocated node. It is
// only wired in when a caller compiles with -tags debug, since it is far too
// verbose to run unconditionally.
func (m *Manager) logTable() {
	for k, n := range m.nodes {
		if n.low == 0 && n.high == 0 && k != 0 {
			continue // free slot
		}
		log.Printf("%-5d (%-3d, %-5d, %-5d) refs:%-6d hash:%-5d next:%-5d\n",
			k, n.index, n.low, n.high, n.refcount, n.hash, n.next)
	}
}
