// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package circuit

import (
	"os"
	"strings"
	"testing"

	"github.com/1cy1c3/ibdd"
)

func TestParseC17(t *testing.T) {
	f, err := os.Open("testdata/c17.trace")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	mod, err := Parse(f)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mod.Name != "c17" {
		t.Fatalf("Name = %q, want c17", mod.Name)
	}
	if len(mod.Inputs) != 5 {
		t.Fatalf("len(Inputs) = %d, want 5", len(mod.Inputs))
	}
	if len(mod.Outputs) != 2 {
		t.Fatalf("len(Outputs) = %d, want 2", len(mod.Outputs))
	}
	if len(mod.Gates) != 6 {
		t.Fatalf("len(Gates) = %d, want 6", len(mod.Gates))
	}
}

// TestSynthesizeC17Reproducible checks that building c17 twice, in two
// independent managers, always lands on the same fingerprint for both
// outputs — the circuit-reproducibility property.
func TestSynthesizeC17Reproducible(t *testing.T) {
	build := func() (uint64, uint64) {
		f, err := os.Open("testdata/c17.trace")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		mod, err := Parse(f)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		m := sbdd.New(len(mod.Inputs))
		values, err := Synthesize(m, mod)
		if err != nil {
			t.Fatalf("Synthesize: %v", err)
		}
		o1, ok := values[mod.Outputs[0]]
		if !ok {
			t.Fatalf("missing output %q", mod.Outputs[0])
		}
		o2, ok := values[mod.Outputs[1]]
		if !ok {
			t.Fatalf("missing output %q", mod.Outputs[1])
		}
		if err := m.Integrity(o1, o2); err != nil {
			t.Fatalf("Integrity: %v", err)
		}
		return m.Fingerprint(o1), m.Fingerprint(o2)
	}

	a1, a2 := build()
	b1, b2 := build()
	if a1 != b1 || a2 != b2 {
		t.Fatalf("c17 synthesis is not reproducible: (%d,%d) != (%d,%d)", a1, a2, b1, b2)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	bad := "MODULE x\nINPUT\n a;\nOUTPUT\n b;\nSTRUCTURE\n b = frobnicate(a);\nENDMODULE\n"
	_, err := Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatal("expected a syntax error for an unknown operator")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
}
