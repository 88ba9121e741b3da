package object

import "sync"

// ---------------------------------------------------------------------------
// Class: shared behavior template
// ---------------------------------------------------------------------------

// Class is a named method template shared by any number of instances. A
// class optionally chains to a single superclass; because the superclass
// must exist before the subclass is created, the hierarchy is a forest and
// can never contain a cycle.
type Class struct {
	Name       string  // class name
	Namespace  string  // namespace (empty for default)
	Superclass *Class  // parent class (nil for a root)
	VTable     *VTable // method dispatch table
}

// NewClass creates a new class with the given name and superclass. The
// vtable is created empty and linked to the parent's; the parent itself is
// never mutated.
func NewClass(name string, superclass *Class) *Class {
	var parentVT *VTable
	if superclass != nil {
		parentVT = superclass.VTable
	}

	c := &Class{
		Name:       name,
		Superclass: superclass,
	}
	c.VTable = NewVTable(c, parentVT)
	return c
}

// NewClassInNamespace creates a new class in a specific namespace.
func NewClassInNamespace(namespace, name string, superclass *Class) *Class {
	c := NewClass(name, superclass)
	c.Namespace = namespace
	return c
}

// ---------------------------------------------------------------------------
// Method registration
// ---------------------------------------------------------------------------

// AddMethod registers a method on this class, overwriting any existing
// entry for the same selector (last-write-wins; that is how overriding
// works). The selector is interned in the given SelectorTable.
//
// Adding a method after instances exist is permitted: resolution always
// walks the live vtable, so existing instances see the new method on their
// next send. Callers wanting the stricter immutable-after-first-use
// discipline should register through a Runtime and call Freeze.
func (c *Class) AddMethod(selectors *SelectorTable, name string, method Method) {
	selectorID := selectors.Intern(name)
	c.VTable.AddMethod(selectorID, method)
}

// AddMethod0 registers a zero-argument method on this class.
func (c *Class) AddMethod0(selectors *SelectorTable, name string, fn Method0Func) {
	c.AddMethod(selectors, name, NewMethod0(name, fn))
}

// AddMethod1 registers a one-argument method on this class.
func (c *Class) AddMethod1(selectors *SelectorTable, name string, fn Method1Func) {
	c.AddMethod(selectors, name, NewMethod1(name, fn))
}

// AddMethod2 registers a two-argument method on this class.
func (c *Class) AddMethod2(selectors *SelectorTable, name string, fn Method2Func) {
	c.AddMethod(selectors, name, NewMethod2(name, fn))
}

// AddPrimitiveMethod registers a variable-arity method on this class.
func (c *Class) AddPrimitiveMethod(selectors *SelectorTable, name string, fn PrimitiveFunc) {
	c.AddMethod(selectors, name, NewPrimitiveMethod(name, fn))
}

// AddAbstractMethod registers an abstract stub on this class. Subclasses
// intended to be instantiated must override it.
func (c *Class) AddAbstractMethod(selectors *SelectorTable, name string) {
	c.AddMethod(selectors, name, NewAbstractMethod(name))
}

// AddOperator registers an operator handler on this class. Handlers live in
// the same vtable as ordinary methods and inherit through the same chain.
func (c *Class) AddOperator(selectors *SelectorTable, op Operator, method Method) {
	c.AddMethod(selectors, op.Selector(), method)
}

// LookupMethod looks up a method by selector name, walking the superclass
// chain. Returns nil if not found.
func (c *Class) LookupMethod(selectors *SelectorTable, name string) Method {
	selectorID := selectors.Lookup(name)
	if selectorID < 0 {
		return nil
	}
	return c.VTable.Lookup(selectorID)
}

// HasMethod returns true if this class (not superclasses) defines a method.
func (c *Class) HasMethod(selectors *SelectorTable, name string) bool {
	selectorID := selectors.Lookup(name)
	if selectorID < 0 {
		return false
	}
	return c.VTable.HasMethod(selectorID)
}

// RemoveMethod removes a method defined directly on this class. Inherited
// definitions of the same selector become visible again.
func (c *Class) RemoveMethod(selectors *SelectorTable, name string) {
	selectorID := selectors.Lookup(name)
	if selectorID >= 0 {
		c.VTable.RemoveMethod(selectorID)
	}
}

// ---------------------------------------------------------------------------
// Hierarchy helpers
// ---------------------------------------------------------------------------

// IsSubclassOf returns true if c is a subclass of other (or is the same class).
func (c *Class) IsSubclassOf(other *Class) bool {
	for current := c; current != nil; current = current.Superclass {
		if current == other {
			return true
		}
	}
	return false
}

// IsSuperclassOf returns true if c is a superclass of other (or is the same class).
func (c *Class) IsSuperclassOf(other *Class) bool {
	return other.IsSubclassOf(c)
}

// Superclasses returns all superclasses from immediate parent to root.
func (c *Class) Superclasses() []*Class {
	var result []*Class
	for current := c.Superclass; current != nil; current = current.Superclass {
		result = append(result, current)
	}
	return result
}

// Depth returns the inheritance depth (0 for a root class).
func (c *Class) Depth() int {
	depth := 0
	for current := c.Superclass; current != nil; current = current.Superclass {
		depth++
	}
	return depth
}

// FullName returns the fully qualified class name (namespace::name or just name).
func (c *Class) FullName() string {
	if c.Namespace == "" {
		return c.Name
	}
	return c.Namespace + "::" + c.Name
}

// String implements the Stringer interface.
func (c *Class) String() string {
	return c.FullName()
}

// ---------------------------------------------------------------------------
// ClassTable: class registry
// ---------------------------------------------------------------------------

// ClassTable manages registered classes by name.
// It's thread-safe for concurrent access.
type ClassTable struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewClassTable creates a new empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{
		classes: make(map[string]*Class),
	}
}

// Register adds a class to the table.
// Returns the previous class with this name, or nil.
func (ct *ClassTable) Register(c *Class) *Class {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	key := c.FullName()
	old := ct.classes[key]
	ct.classes[key] = c
	return old
}

// Lookup finds a class by (fully qualified) name.
func (ct *ClassTable) Lookup(name string) *Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return ct.classes[name]
}

// LookupInNamespace finds a class by name and namespace.
func (ct *ClassTable) LookupInNamespace(namespace, name string) *Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	key := name
	if namespace != "" {
		key = namespace + "::" + name
	}
	return ct.classes[key]
}

// Has returns true if a class with this name is registered.
func (ct *ClassTable) Has(name string) bool {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	_, ok := ct.classes[name]
	return ok
}

// All returns all registered classes.
func (ct *ClassTable) All() []*Class {
	ct.mu.RLock()
	defer ct.mu.RUnlock()

	result := make([]*Class, 0, len(ct.classes))
	for _, c := range ct.classes {
		result = append(result, c)
	}
	return result
}

// Len returns the number of registered classes.
func (ct *ClassTable) Len() int {
	ct.mu.RLock()
	defer ct.mu.RUnlock()
	return len(ct.classes)
}
