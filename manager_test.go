// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package sbdd

import "testing"

// Seed scenarios: exact node counts for small, hand-checkable functions,
// grounded on the SCENARIO/GIVEN/WHEN/THEN cases in ibddTest.cpp.

func TestSeedVariable(t *testing.T) {
	m := New(4)
	a := m.Ithvar(0)
	if got := m.CountNodes(a); got != 1 {
		t.Fatalf("CountNodes(a) = %d, want 1", got)
	}
}

func TestSeedBinaryOperators(t *testing.T) {
	cases := []struct {
		name string
		op   func(m *Manager, a, b Handle) Handle
	}{
		{"and", (*Manager).And},
		{"or", (*Manager).Or},
		{"xor", (*Manager).Xor},
		{"nand", (*Manager).Nand},
		{"nor", (*Manager).Nor},
		{"xnor", (*Manager).Xnor},
		{"greaterthan", (*Manager).GreaterThan},
		{"lessthan", (*Manager).LessThan},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := New(4)
			a, b := m.Ithvar(0), m.Ithvar(1)
			f := c.op(m, a, b)
			if got := m.CountNodes(f); got != 2 {
				t.Fatalf("CountNodes(a %s b) = %d, want 2", c.name, got)
			}
		})
	}
}

func TestSeedNot(t *testing.T) {
	m := New(4)
	a := m.Ithvar(0)
	f := m.Not(a)
	if got := m.CountNodes(f); got != 1 {
		t.Fatalf("CountNodes(!a) = %d, want 1", got)
	}
	if !f.IsComplemented() {
		t.Fatal("!a should be represented by a complemented handle")
	}
}

func TestSeedCofactor(t *testing.T) {
	m := New(4)
	a, b := m.Ithvar(0), m.Ithvar(1)
	f := m.And(a, b)
	hi := m.Cofactor(f, 0, true)
	lo := m.Cofactor(f, 0, false)
	if got := m.CountNodes(hi); got != 1 {
		t.Fatalf("CountNodes(cofactor high) = %d, want 1", got)
	}
	if got := m.CountNodes(lo); got != 0 {
		t.Fatalf("CountNodes(cofactor low) = %d, want 0", got)
	}
}

func TestSeedExist(t *testing.T) {
	m := New(4)
	a, b := m.Ithvar(0), m.Ithvar(1)
	f := m.And(a, b)
	g := m.Exist(f, 0)
	if got := m.CountNodes(g); got != 1 {
		t.Fatalf("CountNodes(exist) = %d, want 1", got)
	}
	if g != b {
		t.Fatalf("exist(a&b, a) should equal b")
	}
}

// TestComplementRoot checks that !(a&b) and a&b are distinguished only by
// the complement tag on the returned handle, not by separate nodes — the
// whole point of a complement-edge representation.
func TestComplementRoot(t *testing.T) {
	m := New(4)
	a, b := m.Ithvar(0), m.Ithvar(1)
	f := m.And(a, b)
	notF := m.Not(f)
	if !notF.IsComplemented() {
		t.Fatal("!(a&b) should be a complemented handle")
	}
	if f.IsComplemented() {
		t.Fatal("a&b should not be a complemented handle")
	}
	if f.id() != notF.id() {
		t.Fatal("a&b and !(a&b) should share the same underlying node")
	}
}

// TestReuse mirrors the "second use" scenario from ibddTest.cpp: building
// g=(a*b)^(!c|d), cofactoring it, and existentially quantifying the xor of
// the two should land on a node already present in the pool, not a fresh
// one — checking that the unique table is doing its job across an entire
// expression, not just for single operators.
func TestReuse(t *testing.T) {
	m := New(4)
	a, b, c, d := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2), m.Ithvar(3)
	g := m.Xor(m.And(a, b), m.Or(m.Not(c), d))
	h := m.Cofactor(g, 1, true)
	x := m.Xor(g, h)
	inUse := len(m.nodes) - 1 - m.freenum
	f := m.Exist(x, 3)
	if f.IsConstant() || len(m.nodes)-1-m.freenum != inUse {
		t.Fatalf("expected a reused node, got handle %d with %d nodes in use (was %d)", f, len(m.nodes)-1-m.freenum, inUse)
	}
}

func TestAlgebraicLaws(t *testing.T) {
	m := New(3)
	a, b, c := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2)

	t.Run("commutative and", func(t *testing.T) {
		if m.And(a, b) != m.And(b, a) {
			t.Fatal("a&b != b&a")
		}
	})
	t.Run("associative or", func(t *testing.T) {
		lhs := m.Or(m.Or(a, b), c)
		rhs := m.Or(a, m.Or(b, c))
		if lhs != rhs {
			t.Fatal("(a|b)|c != a|(b|c)")
		}
	})
	t.Run("double negation", func(t *testing.T) {
		if m.Not(m.Not(a)) != a {
			t.Fatal("!!a != a")
		}
	})
	t.Run("de morgan", func(t *testing.T) {
		lhs := m.Not(m.And(a, b))
		rhs := m.Or(m.Not(a), m.Not(b))
		if lhs != rhs {
			t.Fatal("!(a&b) != !a|!b")
		}
	})
	t.Run("excluded middle", func(t *testing.T) {
		if m.Or(a, m.Not(a)) != True {
			t.Fatal("a|!a != True")
		}
	})
	t.Run("contradiction", func(t *testing.T) {
		if m.And(a, m.Not(a)) != False {
			t.Fatal("a&!a != False")
		}
	})
}

func TestIntegrity(t *testing.T) {
	m := New(5)
	a, b, c := m.Ithvar(0), m.Ithvar(1), m.Ithvar(2)
	f := m.Xor(m.And(a, b), c)
	if err := m.Integrity(f); err != nil {
		t.Fatalf("Integrity reported a violation on a freshly built function: %v", err)
	}
	if err := m.Integrity(); err != nil {
		t.Fatalf("Integrity reported a violation over the whole pool: %v", err)
	}
}

func TestFingerprintStable(t *testing.T) {
	m1 := New(4)
	a1, b1 := m1.Ithvar(0), m1.Ithvar(1)
	f1 := m1.Or(m1.And(a1, b1), m1.Not(a1))

	m2 := New(4)
	b2, a2 := m2.Ithvar(1), m2.Ithvar(0)
	f2 := m2.Or(m2.Not(a2), m2.And(a2, b2))

	if m1.Fingerprint(f1) != m2.Fingerprint(f2) {
		t.Fatal("fingerprints of the same function built in a different order should match")
	}
}

func TestClearRebuilds(t *testing.T) {
	m := New(3)
	a, b := m.Ithvar(0), m.Ithvar(1)
	_ = m.And(a, b)
	m.Clear()
	a2, b2 := m.Ithvar(0), m.Ithvar(1)
	f := m.And(a2, b2)
	if got := m.CountNodes(f); got != 2 {
		t.Fatalf("CountNodes after Clear = %d, want 2", got)
	}
}
