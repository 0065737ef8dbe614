// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

import (
	"fmt"
	"log"
)

// invariant reports a violated internal invariant. Unlike a boundary error
// (malformed trace file, bad CLI argument) an invariant violation means the
// engine itself is confused about its own data structures, so we panic
// rather than return an error a caller could plausibly recover from.
func invariant(format string, a ...interface{}) {
	err := fmt.Errorf(format, a...)
	if _DEBUG {
		log.Println(err)
	}
	panic(err)
}
