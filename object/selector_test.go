package object

import (
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// SelectorTable tests
// ---------------------------------------------------------------------------

func TestSelectorTableIntern(t *testing.T) {
	st := NewSelectorTable()

	// First intern should get ID 0
	id1 := st.Intern("increment")
	if id1 != 0 {
		t.Errorf("first Intern got ID %d, want 0", id1)
	}

	// Second intern of same name should get same ID
	id2 := st.Intern("increment")
	if id2 != id1 {
		t.Errorf("re-Intern got ID %d, want %d", id2, id1)
	}

	// Different name should get different ID
	id3 := st.Intern("getCount")
	if id3 != 1 {
		t.Errorf("second unique Intern got ID %d, want 1", id3)
	}
}

func TestSelectorTableLookup(t *testing.T) {
	st := NewSelectorTable()
	st.Intern("foo")
	st.Intern("bar")

	if id := st.Lookup("foo"); id != 0 {
		t.Errorf("Lookup(foo) = %d, want 0", id)
	}
	if id := st.Lookup("bar"); id != 1 {
		t.Errorf("Lookup(bar) = %d, want 1", id)
	}
	if id := st.Lookup("baz"); id != -1 {
		t.Errorf("Lookup(baz) = %d, want -1", id)
	}
	// Lookup must not intern
	if st.Len() != 2 {
		t.Errorf("Len() = %d after failed Lookup, want 2", st.Len())
	}
}

func TestSelectorTableName(t *testing.T) {
	st := NewSelectorTable()
	st.Intern("hello")
	st.Intern("world")

	if name := st.Name(0); name != "hello" {
		t.Errorf("Name(0) = %q, want %q", name, "hello")
	}
	if name := st.Name(1); name != "world" {
		t.Errorf("Name(1) = %q, want %q", name, "world")
	}
	if name := st.Name(-1); name != "" {
		t.Errorf("Name(-1) = %q, want empty", name)
	}
	if name := st.Name(100); name != "" {
		t.Errorf("Name(100) = %q, want empty", name)
	}
}

func TestSelectorTableAll(t *testing.T) {
	st := NewSelectorTable()
	st.Intern("x")
	st.Intern("y")
	st.Intern("z")

	all := st.All()
	if len(all) != 3 {
		t.Fatalf("All() has %d elements, want 3", len(all))
	}
	if all[0] != "x" || all[1] != "y" || all[2] != "z" {
		t.Errorf("All() = %v, want [x y z]", all)
	}
}

func TestSelectorTableConcurrentIntern(t *testing.T) {
	st := NewSelectorTable()

	var wg sync.WaitGroup
	ids := make([]int, 16)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = st.Intern("shared")
		}(i)
	}
	wg.Wait()

	for i, id := range ids {
		if id != ids[0] {
			t.Fatalf("goroutine %d interned ID %d, others got %d", i, id, ids[0])
		}
	}
	if st.Len() != 1 {
		t.Errorf("Len() = %d, want 1", st.Len())
	}
}
