package object

// VTable holds the method dispatch table for a class.
//
// Methods are stored in an array indexed by selector ID, so lookup at a
// call site is O(chain depth) with no hashing. Inheritance is handled by
// walking the parent chain when a method is not found locally.
type VTable struct {
	class   *Class   // the class this vtable belongs to
	parent  *VTable  // parent vtable for inheritance lookup
	methods []Method // methods indexed by selector ID
}

// NewVTable creates a new vtable for a class.
func NewVTable(class *Class, parent *VTable) *VTable {
	return &VTable{
		class:   class,
		parent:  parent,
		methods: make([]Method, 0, 16),
	}
}

// Lookup finds a method by selector ID, walking the inheritance chain.
// Returns nil if no method is found.
func (vt *VTable) Lookup(selector int) Method {
	m, _ := vt.LookupWithOwner(selector)
	return m
}

// LookupWithOwner finds a method by selector ID and reports which class in
// the chain defines it. Returns (nil, nil) if no method is found.
func (vt *VTable) LookupWithOwner(selector int) (Method, *Class) {
	if selector < 0 {
		return nil, nil
	}
	for v := vt; v != nil; v = v.parent {
		if selector < len(v.methods) {
			if m := v.methods[selector]; m != nil {
				return m, v.class
			}
		}
	}
	return nil, nil
}

// LookupLocal finds a method by selector ID in this vtable only.
// Does not check parent vtables.
func (vt *VTable) LookupLocal(selector int) Method {
	if selector >= 0 && selector < len(vt.methods) {
		return vt.methods[selector]
	}
	return nil
}

// AddMethod adds or replaces a method at the given selector ID.
// Replacement is last-write-wins; overriding a parent's method is simply
// adding the same selector to the child's vtable.
func (vt *VTable) AddMethod(selector int, method Method) {
	if selector >= len(vt.methods) {
		newMethods := make([]Method, selector+1)
		copy(newMethods, vt.methods)
		vt.methods = newMethods
	}
	vt.methods[selector] = method
}

// RemoveMethod removes a method at the given selector ID.
func (vt *VTable) RemoveMethod(selector int) {
	if selector >= 0 && selector < len(vt.methods) {
		vt.methods[selector] = nil
	}
}

// HasMethod returns true if this vtable (not parents) has a method for selector.
func (vt *VTable) HasMethod(selector int) bool {
	return vt.LookupLocal(selector) != nil
}

// Parent returns the parent vtable.
func (vt *VTable) Parent() *VTable {
	return vt.parent
}

// Class returns the class this vtable belongs to.
func (vt *VTable) Class() *Class {
	return vt.class
}

// LocalMethods returns all non-nil methods defined in this vtable,
// keyed by selector ID.
func (vt *VTable) LocalMethods() map[int]Method {
	result := make(map[int]Method)
	for i, m := range vt.methods {
		if m != nil {
			result[i] = m
		}
	}
	return result
}
