package object

import "fmt"

// ---------------------------------------------------------------------------
// Instance: a tagged field map
// ---------------------------------------------------------------------------

// Instance is a mapping from field names to values, tagged with exactly one
// owning class via that class's vtable. The instance owns its field map; the
// class is shared by arbitrarily many instances and is never mutated through
// an instance.
type Instance struct {
	fields map[string]Value
	vtable *VTable

	// locals holds instance-local methods, which shadow the class's
	// methods for this instance only. Keyed by name rather than selector
	// ID: locals are rare and never hot.
	locals map[string]Method
}

// NewInstance creates an empty instance of the given class.
// Returns a ConstructionError if class is nil.
func NewInstance(class *Class) (*Instance, error) {
	return Construct(class, nil)
}

// Construct creates an instance of class seeded from initialFields.
//
// The seed is copied shallowly: nested mutable values (instances, methods)
// are shared by reference, not deep-copied, so callers must not assume
// isolation of nested structures. Returns a ConstructionError if class is
// nil.
func Construct(class *Class, initialFields map[string]Value) (*Instance, error) {
	if class == nil {
		return nil, &ConstructionError{Reason: "class is nil"}
	}

	fields := make(map[string]Value, len(initialFields))
	for k, v := range initialFields {
		fields[k] = v
	}

	return &Instance{
		fields: fields,
		vtable: class.VTable,
	}, nil
}

// ---------------------------------------------------------------------------
// Field access
// ---------------------------------------------------------------------------

// Get returns the value of a field, or Nil if unset.
func (inst *Instance) Get(name string) Value {
	return inst.fields[name]
}

// Has returns true if the field is set.
func (inst *Instance) Has(name string) bool {
	_, ok := inst.fields[name]
	return ok
}

// Set stores a field value. Storing a method Value makes it an
// instance-local method for resolution purposes.
func (inst *Instance) Set(name string, value Value) {
	inst.fields[name] = value
}

// Delete removes a field.
func (inst *Instance) Delete(name string) {
	delete(inst.fields, name)
}

// Len returns the number of set fields.
func (inst *Instance) Len() int {
	return len(inst.fields)
}

// Fields returns a snapshot copy of the field map. Mutating the returned
// map does not affect the instance.
func (inst *Instance) Fields() map[string]Value {
	snapshot := make(map[string]Value, len(inst.fields))
	for k, v := range inst.fields {
		snapshot[k] = v
	}
	return snapshot
}

// ---------------------------------------------------------------------------
// Class tag
// ---------------------------------------------------------------------------

// Class returns the owning class.
func (inst *Instance) Class() *Class {
	if inst.vtable == nil {
		return nil
	}
	return inst.vtable.Class()
}

// VTablePtr returns the instance's vtable.
func (inst *Instance) VTablePtr() *VTable {
	return inst.vtable
}

// Retag replaces the instance's class tag. This is the subclass
// construction pattern: construct via the parent, extend the fields, then
// retag with the subclass. The tag swap is a single pointer store; there is
// never a state where the instance has two tags. Returns a
// ConstructionError if class is nil.
func (inst *Instance) Retag(class *Class) error {
	if class == nil {
		return &ConstructionError{Reason: "retag: class is nil"}
	}
	inst.vtable = class.VTable
	return nil
}

// ---------------------------------------------------------------------------
// Instance-local methods
// ---------------------------------------------------------------------------

// SetLocalMethod attaches a method to this instance only, shadowing the
// class's definition of the same name for this instance. Other instances of
// the class are unaffected.
func (inst *Instance) SetLocalMethod(name string, method Method) {
	if inst.locals == nil {
		inst.locals = make(map[string]Method)
	}
	inst.locals[name] = method
}

// LocalMethod returns the instance-local method for name. Checks explicit
// locals first, then method-valued fields. Returns nil if neither exists.
func (inst *Instance) LocalMethod(name string) Method {
	if m, ok := inst.locals[name]; ok {
		return m
	}
	if v, ok := inst.fields[name]; ok && v.IsMethod() {
		return v.AsMethod()
	}
	return nil
}

// RemoveLocalMethod detaches an instance-local method. The class's
// definition (if any) becomes visible again for this instance.
func (inst *Instance) RemoveLocalMethod(name string) {
	delete(inst.locals, name)
}

// ---------------------------------------------------------------------------
// Debugging
// ---------------------------------------------------------------------------

// ClassName returns the name of the instance's class, or "?" if untagged.
func (inst *Instance) ClassName() string {
	if c := inst.Class(); c != nil {
		return c.FullName()
	}
	return "?"
}

// String implements the Stringer interface.
func (inst *Instance) String() string {
	return fmt.Sprintf("<%s instance, %d fields>", inst.ClassName(), len(inst.fields))
}
