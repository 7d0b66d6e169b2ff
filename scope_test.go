package calc

import "testing"

func TestScopeChain(t *testing.T) {
	root := NewScope()
	mid := root.Child()
	leaf := mid.Child()

	if _, ok := leaf.Get("x"); ok {
		t.Error("found x in empty chain")
	}
	leaf.Assign("x", Float(1))
	if _, ok := root.Get("x"); !ok {
		t.Error("assignment of a new name didn't create it in the root")
	}
	if v, ok := leaf.Get("x"); !ok || v.(Numeric).Float64() != 1 {
		t.Errorf("leaf lookup of x gave %v, %t", v, ok)
	}

	mid.Declare("x", String("mid"))
	leaf.Assign("x", String("changed"))
	if v, _ := mid.Get("x"); v != String("changed") {
		t.Errorf("assignment should update nearest binding, mid has %v", v)
	}
	if v, _ := root.Get("x"); v.(Numeric).Float64() != 1 {
		t.Errorf("shadowed root binding changed to %v", v)
	}

	if _, ok := root.Parent(); ok {
		t.Error("root has a parent")
	}
	p, ok := leaf.Parent()
	if !ok {
		t.Fatal("leaf has no parent")
	}
	if v, _ := p.Get("x"); v != String("changed") {
		t.Errorf("parent of leaf isn't mid: x is %v", v)
	}
}

func TestScopeSiblings(t *testing.T) {
	root := NewScope()
	a := root.Child()
	b := root.Child()
	a.Declare("v", Boolean(true))
	if _, ok := b.Get("v"); ok {
		t.Error("sibling scopes share variables")
	}
	if got := a.Names(); len(got) != 1 || got[0] != "v" {
		t.Errorf("wrong names in a: %q", got)
	}
	if got := root.Names(); len(got) != 0 {
		t.Errorf("wrong names in root: %q", got)
	}
}

func TestScopeNamesSorted(t *testing.T) {
	s := NewScope()
	for _, k := range []string{"zeta", "a", "Z", "mid", "_"} {
		s.Declare(k, Boolean(true))
	}
	got := s.Names()
	want := []string{"Z", "_", "a", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("wrong names: want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wrong names: want %q, got %q", want, got)
			break
		}
	}
}
