// Package object implements the Minerva object model: named classes with
// single inheritance, instances as tagged field maps, and selector-based
// method dispatch.
//
// A Class is a shared behavior template. Its methods live in a VTable
// indexed by interned selector IDs; lookup walks the vtable parent chain, so
// a subclass inherits everything it does not override. An Instance carries a
// field map and a pointer to its class's vtable. Dispatch order is always:
// instance-local method, then the instance's class, then each superclass in
// turn.
//
// The Runtime ties the tables together and is the entry point for most
// programs:
//
//	rt := object.NewRuntime()
//	point, _ := rt.DefineClass("Point", nil)
//	rt.AddMethod0(point, "magnitude", func(rt *object.Runtime, recv object.Value) (object.Value, error) {
//		...
//	})
//	p, _ := rt.Construct(point, map[string]object.Value{"x": object.NewInt(3)})
//	v, err := rt.Send(object.FromInstance(p), "magnitude")
//
// All operations are synchronous and single-threaded in semantics; the
// shared tables are internally locked so concurrent readers are safe, but a
// class's method table should be treated as immutable once instances exist.
// Runtime.Freeze enforces that discipline for registrations routed through
// the Runtime.
package object
