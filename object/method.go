package object

// ---------------------------------------------------------------------------
// Method: callable behavior attached to a class or instance
// ---------------------------------------------------------------------------

// Method is a callable registered on a class (or directly on an instance).
// The receiver is always the instance the send started from, even when the
// method was found on a superclass, so superclass methods operate on the
// subclass instance's fields.
type Method interface {
	Invoke(rt *Runtime, receiver Value, args []Value) (Value, error)
}

// PrimitiveFunc is a variable-arity method body.
type PrimitiveFunc func(rt *Runtime, receiver Value, args []Value) (Value, error)

// Method0Func is a method body taking no arguments.
type Method0Func func(rt *Runtime, receiver Value) (Value, error)

// Method1Func is a method body taking one argument.
type Method1Func func(rt *Runtime, receiver Value, arg1 Value) (Value, error)

// Method2Func is a method body taking two arguments.
type Method2Func func(rt *Runtime, receiver Value, arg1, arg2 Value) (Value, error)

// ---------------------------------------------------------------------------
// Arity-specialized method wrappers
// ---------------------------------------------------------------------------

// PrimitiveMethod wraps a general PrimitiveFunc as a Method.
type PrimitiveMethod struct {
	name string
	fn   PrimitiveFunc
}

func (m *PrimitiveMethod) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	return m.fn(rt, receiver, args)
}

func (m *PrimitiveMethod) Name() string { return m.name }
func (m *PrimitiveMethod) Arity() int   { return -1 } // variable arity

// Method0 wraps a zero-argument body.
type Method0 struct {
	name string
	fn   Method0Func
}

func (m *Method0) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	if len(args) != 0 {
		return Nil, &ArityError{Method: m.name, Want: 0, Got: len(args)}
	}
	return m.fn(rt, receiver)
}

func (m *Method0) Name() string { return m.name }
func (m *Method0) Arity() int   { return 0 }

// Method1 wraps a one-argument body.
type Method1 struct {
	name string
	fn   Method1Func
}

func (m *Method1) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	if len(args) != 1 {
		return Nil, &ArityError{Method: m.name, Want: 1, Got: len(args)}
	}
	return m.fn(rt, receiver, args[0])
}

func (m *Method1) Name() string { return m.name }
func (m *Method1) Arity() int   { return 1 }

// Method2 wraps a two-argument body.
type Method2 struct {
	name string
	fn   Method2Func
}

func (m *Method2) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	if len(args) != 2 {
		return Nil, &ArityError{Method: m.name, Want: 2, Got: len(args)}
	}
	return m.fn(rt, receiver, args[0], args[1])
}

func (m *Method2) Name() string { return m.name }
func (m *Method2) Arity() int   { return 2 }

// ---------------------------------------------------------------------------
// Abstract methods
// ---------------------------------------------------------------------------

// AbstractMethod is a stub that fails with NotImplementedError when invoked.
// Registering one on a base class declares a contract that every concrete
// subclass must override; nothing checks the contract at construction time,
// it surfaces on first invocation.
type AbstractMethod struct {
	name string
}

func (m *AbstractMethod) Invoke(rt *Runtime, receiver Value, args []Value) (Value, error) {
	return Nil, &NotImplementedError{Method: m.name}
}

func (m *AbstractMethod) Name() string { return m.name }

// ---------------------------------------------------------------------------
// Factory functions
// ---------------------------------------------------------------------------

// NewPrimitiveMethod creates a variable-arity method.
func NewPrimitiveMethod(name string, fn PrimitiveFunc) Method {
	return &PrimitiveMethod{name: name, fn: fn}
}

// NewMethod0 creates a zero-argument method.
func NewMethod0(name string, fn Method0Func) Method {
	return &Method0{name: name, fn: fn}
}

// NewMethod1 creates a one-argument method.
func NewMethod1(name string, fn Method1Func) Method {
	return &Method1{name: name, fn: fn}
}

// NewMethod2 creates a two-argument method.
func NewMethod2(name string, fn Method2Func) Method {
	return &Method2{name: name, fn: fn}
}

// NewAbstractMethod creates an abstract stub for the named method.
func NewAbstractMethod(name string) Method {
	return &AbstractMethod{name: name}
}

// ---------------------------------------------------------------------------
// Method metadata
// ---------------------------------------------------------------------------

// NamedMethod is implemented by methods that have a name.
type NamedMethod interface {
	Method
	Name() string
}

// ArityMethod is implemented by methods with a fixed arity.
type ArityMethod interface {
	Method
	Arity() int
}

// MethodName returns the name of a method if it implements NamedMethod.
func MethodName(m Method) string {
	if nm, ok := m.(NamedMethod); ok {
		return nm.Name()
	}
	return "<anonymous>"
}

// MethodArity returns the arity of a method, or -1 for variable arity.
func MethodArity(m Method) int {
	if am, ok := m.(ArityMethod); ok {
		return am.Arity()
	}
	return -1
}

// ---------------------------------------------------------------------------
// Bound methods
// ---------------------------------------------------------------------------

// BoundMethod pairs a resolved method with the receiver it was resolved
// against, making methods first-class values.
type BoundMethod struct {
	Receiver Value
	Target   Method
}

// Call invokes the bound method with the captured receiver.
func (b *BoundMethod) Call(rt *Runtime, args ...Value) (Value, error) {
	return b.Target.Invoke(rt, b.Receiver, args)
}
