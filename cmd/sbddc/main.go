// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command sbddc parses a gate-level trace file, synthesizes the BDD for
// every declared output and reports on the result: primary input count,
// total live node count across all outputs, wall time and peak resident
// memory. Flag handling follows the style of go-air-gini's cmd/gini driver.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sugawarayuuta/sonnet"

	"github.com/1cy1c3/ibdd"
	"github.com/1cy1c3/ibdd/circuit"
)

type report struct {
	Module      string `json:"module"`
	Inputs      int    `json:"inputs"`
	Outputs     int    `json:"outputs"`
	Gates       int    `json:"gates"`
	LiveNodes   int    `json:"live_nodes"`
	ElapsedMS   int64  `json:"elapsed_ms"`
	PeakHeapKiB uint64 `json:"peak_heap_kib"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("sbddc", flag.ContinueOnError)
	dotPath := fs.String("dot", "", "write one DOT file per output, using this path as a prefix")
	jsonOut := fs.Bool("json", false, "emit the report as JSON instead of a text banner")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sbddc [-dot prefix] [-json] <trace-file>")
		return 1
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sbddc:", err)
		return 1
	}
	defer f.Close()

	start := time.Now()
	mod, err := circuit.Parse(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sbddc:", err)
		return 1
	}

	m := sbdd.New(len(mod.Inputs))
	values, err := circuit.Synthesize(m, mod)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sbddc:", err)
		return 1
	}

	roots := make([]sbdd.Handle, 0, len(mod.Outputs))
	for _, out := range mod.Outputs {
		roots = append(roots, values[out])
	}
	elapsed := time.Since(start)

	if *dotPath != "" {
		for _, out := range mod.Outputs {
			path := *dotPath + "." + out + ".dot"
			df, err := os.Create(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, "sbddc:", err)
				return 1
			}
			err = m.PrintNode(df, out, values[out])
			df.Close()
			if err != nil {
				fmt.Fprintln(os.Stderr, "sbddc:", err)
				return 1
			}
		}
	}

	var memstats runtime.MemStats
	runtime.ReadMemStats(&memstats)

	rep := report{
		Module:      mod.Name,
		Inputs:      len(mod.Inputs),
		Outputs:     len(mod.Outputs),
		Gates:       len(mod.Gates),
		LiveNodes:   m.CountNodes(roots...),
		ElapsedMS:   elapsed.Milliseconds(),
		PeakHeapKiB: memstats.HeapSys / 1024,
	}

	if *jsonOut {
		buf, err := sonnet.Marshal(rep)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sbddc:", err)
			return 1
		}
		fmt.Println(string(buf))
		return 0
	}

	fmt.Printf("module:      %s\n", rep.Module)
	fmt.Printf("inputs:      %d\n", rep.Inputs)
	fmt.Printf("outputs:     %d\n", rep.Outputs)
	fmt.Printf("gates:       %d\n", rep.Gates)
	fmt.Printf("live nodes:  %d\n", rep.LiveNodes)
	fmt.Printf("elapsed:     %dms\n", rep.ElapsedMS)
	fmt.Printf("peak heap:   %d KiB\n", rep.PeakHeapKiB)
	return 0
}
