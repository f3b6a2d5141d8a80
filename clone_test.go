package rob_test

import (
	"testing"

	"rob"
	"rob/internal/testkit"
)

func TestToMutUpgradesBorrowed(t *testing.T) {
	tr := testkit.NewTracker()
	ext := tr.New(5)
	r := rob.FromRef(&ext)

	m := rob.ToMut(&r)
	if !r.IsOwned() {
		t.Fatal("ToMut on a borrowed container must upgrade it to owned")
	}
	if tr.Clones() != 1 {
		t.Fatalf("expected exactly 1 clone during upgrade, got %d", tr.Clones())
	}
	if m == &ext {
		t.Fatal("mutable pointer must not alias the external source")
	}

	m.N = 99
	if ext.N != 5 {
		t.Fatalf("external value mutated to %d, want 5", ext.N)
	}

	// Already owned: no further clone, stable pointer.
	m2 := rob.ToMut(&r)
	if m2 != m {
		t.Fatal("ToMut on an owned container must hand out the same allocation")
	}
	if tr.Clones() != 1 {
		t.Fatalf("owned ToMut must not clone, got %d clones", tr.Clones())
	}

	r.Release()
	if tr.Drops() != 1 {
		t.Fatalf("expected 1 teardown of the upgraded clone, got %d", tr.Drops())
	}
	ext.Drop()
	if tr.Drops() != 2 {
		t.Fatalf("external value teardown expected, got %d total drops", tr.Drops())
	}
}

func TestToMutFuncSkipsCloneWhenOwned(t *testing.T) {
	r := rob.FromValue(3)
	called := false
	m := rob.ToMutFunc(&r, func(v int) int {
		called = true
		return v
	})
	if called {
		t.Fatal("owned ToMutFunc must not invoke the clone function")
	}
	*m = 8
	if *r.Get() != 8 {
		t.Fatalf("mutation not visible through Get: got %d", *r.Get())
	}
}

func TestIntoBoxTransfersOwned(t *testing.T) {
	tr := testkit.NewTracker()
	r := rob.FromValue(tr.New(3))
	before := r.Get()

	p := rob.IntoBox(&r)
	if p != before {
		t.Fatal("owned IntoBox must transfer the allocation, not copy it")
	}
	if tr.Clones() != 0 {
		t.Fatalf("owned IntoBox must not clone, got %d clones", tr.Clones())
	}
	p.Drop()
	if tr.Drops() != 1 {
		t.Fatalf("expected exactly 1 teardown, got %d", tr.Drops())
	}
	expectContractPanic(t, rob.CodeUseAfterConsume, func() {
		r.Release()
	})
}

func TestIntoBoxClonesBorrowed(t *testing.T) {
	tr := testkit.NewTracker()
	ext := tr.New(4)
	r := rob.FromRef(&ext)

	p := rob.IntoBox(&r)
	if p == &ext {
		t.Fatal("borrowed IntoBox must clone into a fresh allocation")
	}
	if tr.Clones() != 1 {
		t.Fatalf("expected 1 clone, got %d", tr.Clones())
	}
	p.Drop()
	ext.Drop()
	if tr.Drops() != 2 {
		t.Fatalf("expected 2 teardowns (clone + source), got %d", tr.Drops())
	}
}

func TestCloneBorrowedAliasesSource(t *testing.T) {
	tr := testkit.NewTracker()
	ext := tr.New(1)
	r := rob.FromRef(&ext)

	c := rob.Clone(&r)
	if c.IsOwned() {
		t.Fatal("cloning a borrowed container must stay borrowed")
	}
	if c.Get() != &ext {
		t.Fatal("borrowed clone must reference the same external source")
	}
	if tr.Clones() != 0 {
		t.Fatalf("borrowed clone must copy nothing, got %d clones", tr.Clones())
	}
}

func TestCloneOwnedCopiesValue(t *testing.T) {
	tr := testkit.NewTracker()
	r := rob.FromValue(tr.New(2))

	c := rob.Clone(&r)
	if !c.IsOwned() {
		t.Fatal("cloning an owned container must yield an owned container")
	}
	if c.Get() == r.Get() {
		t.Fatal("owned clone must not share the allocation")
	}
	if tr.Clones() != 1 {
		t.Fatalf("expected 1 value clone, got %d", tr.Clones())
	}
	r.Release()
	c.Release()
	if tr.Drops() != 2 {
		t.Fatalf("each owner must tear down once, got %d", tr.Drops())
	}
}

func TestCloneFuncOnPlainValues(t *testing.T) {
	r := rob.FromValue(6)
	c := rob.CloneFunc(&r, func(v int) int { return v })
	if !c.IsOwned() || *c.Get() != 6 {
		t.Fatalf("clone = (%d, owned=%v), want (6, true)", *c.Get(), c.IsOwned())
	}
	*rob.ToMutFunc(&c, func(v int) int { return v }) = 7
	if *r.Get() != 6 {
		t.Fatalf("mutating the clone leaked into the original: %d", *r.Get())
	}
}
