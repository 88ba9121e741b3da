package object

import "testing"

// ---------------------------------------------------------------------------
// VTable tests
// ---------------------------------------------------------------------------

func nopMethod(name string) Method {
	return NewMethod0(name, func(rt *Runtime, recv Value) (Value, error) {
		return Nil, nil
	})
}

func TestVTableAddAndLookup(t *testing.T) {
	c := NewClass("C", nil)
	vt := c.VTable

	m := nopMethod("m")
	vt.AddMethod(3, m)

	if vt.Lookup(3) != m {
		t.Error("Lookup should find method at its selector ID")
	}
	if vt.Lookup(0) != nil {
		t.Error("Lookup of empty slot should return nil")
	}
	if vt.Lookup(99) != nil {
		t.Error("Lookup past the end should return nil")
	}
	if vt.Lookup(-1) != nil {
		t.Error("Lookup of negative selector should return nil")
	}
}

func TestVTableParentChain(t *testing.T) {
	grand := NewClass("Grand", nil)
	parent := NewClass("Parent", grand)
	child := NewClass("Child", parent)

	m := nopMethod("m")
	grand.VTable.AddMethod(0, m)

	if child.VTable.Lookup(0) != m {
		t.Error("Lookup should walk two levels up the chain")
	}
	if child.VTable.LookupLocal(0) != nil {
		t.Error("LookupLocal should not walk the chain")
	}

	// Child override shadows the grandparent definition
	override := nopMethod("m")
	child.VTable.AddMethod(0, override)
	if child.VTable.Lookup(0) != override {
		t.Error("child override should win over inherited method")
	}
	if parent.VTable.Lookup(0) != m {
		t.Error("parent lookup should still find the grandparent method")
	}
}

func TestVTableLookupWithOwner(t *testing.T) {
	parent := NewClass("Parent", nil)
	child := NewClass("Child", parent)

	m := nopMethod("m")
	parent.VTable.AddMethod(0, m)

	got, owner := child.VTable.LookupWithOwner(0)
	if got != m {
		t.Error("LookupWithOwner should find the inherited method")
	}
	if owner != parent {
		t.Errorf("owner = %v, want Parent", owner)
	}

	if _, owner := child.VTable.LookupWithOwner(5); owner != nil {
		t.Error("owner should be nil when nothing is found")
	}
}

func TestVTableRemoveMethod(t *testing.T) {
	c := NewClass("C", nil)
	c.VTable.AddMethod(1, nopMethod("m"))
	c.VTable.RemoveMethod(1)

	if c.VTable.Lookup(1) != nil {
		t.Error("removed method should not be found")
	}
	// Removing out-of-range selectors is a no-op
	c.VTable.RemoveMethod(42)
	c.VTable.RemoveMethod(-1)
}

func TestVTableLocalMethods(t *testing.T) {
	parent := NewClass("Parent", nil)
	child := NewClass("Child", parent)

	parent.VTable.AddMethod(0, nopMethod("a"))
	child.VTable.AddMethod(1, nopMethod("b"))
	child.VTable.AddMethod(2, nopMethod("c"))

	locals := child.VTable.LocalMethods()
	if len(locals) != 2 {
		t.Errorf("LocalMethods count = %d, want 2 (inherited excluded)", len(locals))
	}
	if _, ok := locals[0]; ok {
		t.Error("inherited selector should not appear in LocalMethods")
	}
}
