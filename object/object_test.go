package object

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Construction tests
// ---------------------------------------------------------------------------

func TestConstruct(t *testing.T) {
	c := NewClass("Point", nil)
	inst, err := Construct(c, map[string]Value{
		"x": NewInt(1),
		"y": NewInt(2),
	})
	if err != nil {
		t.Fatalf("Construct failed: %v", err)
	}
	if inst.Class() != c {
		t.Error("instance should be tagged with its class")
	}
	if v, _ := inst.Get("x").AsInt(); v != 1 {
		t.Errorf("x = %d, want 1", v)
	}
	if inst.Len() != 2 {
		t.Errorf("Len() = %d, want 2", inst.Len())
	}
}

func TestConstructNilClass(t *testing.T) {
	_, err := Construct(nil, nil)
	if err == nil {
		t.Fatal("Construct with nil class should fail")
	}
	var ce *ConstructionError
	if !errors.As(err, &ce) {
		t.Errorf("error type = %T, want *ConstructionError", err)
	}
}

func TestConstructCopiesSeed(t *testing.T) {
	c := NewClass("Point", nil)
	seed := map[string]Value{"x": NewInt(1)}
	inst, _ := Construct(c, seed)

	// Mutating the seed map after construction must not affect the instance
	seed["x"] = NewInt(99)
	seed["y"] = NewInt(5)

	if v, _ := inst.Get("x").AsInt(); v != 1 {
		t.Errorf("x = %d after seed mutation, want 1", v)
	}
	if inst.Has("y") {
		t.Error("field added to seed after construction should not appear")
	}
}

func TestConstructSharesNestedValues(t *testing.T) {
	c := NewClass("Box", nil)
	inner, _ := Construct(c, map[string]Value{"n": NewInt(1)})
	outer, _ := Construct(c, map[string]Value{"inner": FromInstance(inner)})

	// Shallow copy: the nested instance is shared, not cloned
	outer.Get("inner").AsInstance().Set("n", NewInt(2))
	if v, _ := inner.Get("n").AsInt(); v != 2 {
		t.Error("nested instances should be shared by reference")
	}
}

// ---------------------------------------------------------------------------
// Field access tests
// ---------------------------------------------------------------------------

func TestFieldAccess(t *testing.T) {
	c := NewClass("Bag", nil)
	inst, _ := Construct(c, nil)

	if inst.Has("k") {
		t.Error("unset field should not be present")
	}
	if !inst.Get("k").IsNil() {
		t.Error("unset field should read as Nil")
	}

	inst.Set("k", NewString("v"))
	if s, _ := inst.Get("k").AsString(); s != "v" {
		t.Errorf("k = %q, want v", s)
	}

	inst.Delete("k")
	if inst.Has("k") {
		t.Error("deleted field should not be present")
	}
}

func TestFieldsSnapshot(t *testing.T) {
	c := NewClass("Bag", nil)
	inst, _ := Construct(c, map[string]Value{"a": NewInt(1)})

	snap := inst.Fields()
	snap["a"] = NewInt(99)
	snap["b"] = NewInt(2)

	if v, _ := inst.Get("a").AsInt(); v != 1 {
		t.Error("mutating the snapshot should not affect the instance")
	}
	if inst.Has("b") {
		t.Error("adding to the snapshot should not affect the instance")
	}
}

// ---------------------------------------------------------------------------
// Retag tests
// ---------------------------------------------------------------------------

func TestRetag(t *testing.T) {
	animal := NewClass("Animal", nil)
	dog := NewClass("Dog", animal)

	inst, _ := Construct(animal, map[string]Value{"name": NewString("rex")})
	if err := inst.Retag(dog); err != nil {
		t.Fatalf("Retag failed: %v", err)
	}

	if inst.Class() != dog {
		t.Error("instance should be tagged with Dog after Retag")
	}
	if s, _ := inst.Get("name").AsString(); s != "rex" {
		t.Error("Retag must preserve existing fields")
	}
}

func TestRetagNilClass(t *testing.T) {
	c := NewClass("C", nil)
	inst, _ := Construct(c, nil)

	var ce *ConstructionError
	if err := inst.Retag(nil); !errors.As(err, &ce) {
		t.Errorf("Retag(nil) error = %v, want *ConstructionError", err)
	}
	if inst.Class() != c {
		t.Error("failed Retag must leave the original tag in place")
	}
}

// ---------------------------------------------------------------------------
// Instance-local method tests
// ---------------------------------------------------------------------------

func TestLocalMethod(t *testing.T) {
	c := NewClass("C", nil)
	inst, _ := Construct(c, nil)

	if inst.LocalMethod("m") != nil {
		t.Error("no local method should be present initially")
	}

	m := nopMethod("m")
	inst.SetLocalMethod("m", m)
	if inst.LocalMethod("m") != m {
		t.Error("LocalMethod should find explicit local")
	}

	inst.RemoveLocalMethod("m")
	if inst.LocalMethod("m") != nil {
		t.Error("removed local method should be gone")
	}
}

func TestMethodValuedFieldIsLocalMethod(t *testing.T) {
	c := NewClass("C", nil)
	inst, _ := Construct(c, nil)

	m := nopMethod("m")
	inst.Set("m", FromMethod(m))

	if inst.LocalMethod("m") != m {
		t.Error("a method-valued field should act as an instance-local method")
	}

	// A non-method field of the same name is not a local method
	inst.Set("m", NewInt(1))
	if inst.LocalMethod("m") != nil {
		t.Error("a scalar field should not act as a local method")
	}
}

func TestInstanceString(t *testing.T) {
	c := NewClassInNamespace("Geo", "Point", nil)
	inst, _ := Construct(c, map[string]Value{"x": NewInt(1)})

	want := "<Geo::Point instance, 1 fields>"
	if got := inst.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
