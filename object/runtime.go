package object

import (
	"github.com/tliron/commonlog"
)

// ---------------------------------------------------------------------------
// Runtime: the tables plus dispatch
// ---------------------------------------------------------------------------

// Runtime owns the shared tables of an object world: the selector table
// every vtable indexes into, the class registry, and globals. All dispatch
// entry points (Send, Resolve, ApplyOperator, Construct) hang off the
// Runtime.
//
// Semantics are single-threaded and synchronous: every operation runs to
// completion without suspension and nothing is cancellable. The tables are
// internally locked, so sharing a Runtime across goroutines for reads is
// safe once class definitions have settled; call Freeze to enforce that.
type Runtime struct {
	Selectors *SelectorTable // selector name -> ID
	Classes   *ClassTable    // class name -> Class
	Globals   map[string]Value

	log    commonlog.Logger
	trace  bool
	frozen bool
}

// NewRuntime creates a new runtime with empty tables.
func NewRuntime() *Runtime {
	return &Runtime{
		Selectors: NewSelectorTable(),
		Classes:   NewClassTable(),
		Globals:   make(map[string]Value),
		log:       commonlog.GetLogger("minerva.runtime"),
	}
}

// ---------------------------------------------------------------------------
// Class definition
// ---------------------------------------------------------------------------

// DefineClass creates a class, registers it, and returns it. The parent, if
// any, must already be defined; passing nil creates a root class. Returns a
// FrozenError after Freeze.
func (rt *Runtime) DefineClass(name string, parent *Class) (*Class, error) {
	return rt.DefineClassIn("", name, parent)
}

// DefineClassIn creates and registers a class in a namespace.
func (rt *Runtime) DefineClassIn(namespace, name string, parent *Class) (*Class, error) {
	if rt.frozen {
		return nil, &FrozenError{Class: name}
	}

	c := NewClassInNamespace(namespace, name, parent)
	if old := rt.Classes.Register(c); old != nil {
		rt.log.Infof("class %s redefined", c.FullName())
	} else {
		rt.log.Debugf("class %s defined (depth %d)", c.FullName(), c.Depth())
	}
	return c, nil
}

// AddMethod registers a method on a class through the runtime, honoring
// Freeze. Direct Class.AddMethod bypasses the freeze check.
func (rt *Runtime) AddMethod(c *Class, name string, method Method) error {
	if rt.frozen {
		return &FrozenError{Class: c.FullName()}
	}
	c.AddMethod(rt.Selectors, name, method)
	return nil
}

// AddMethod0 registers a zero-argument method through the runtime.
func (rt *Runtime) AddMethod0(c *Class, name string, fn Method0Func) error {
	return rt.AddMethod(c, name, NewMethod0(name, fn))
}

// AddMethod1 registers a one-argument method through the runtime.
func (rt *Runtime) AddMethod1(c *Class, name string, fn Method1Func) error {
	return rt.AddMethod(c, name, NewMethod1(name, fn))
}

// AddMethod2 registers a two-argument method through the runtime.
func (rt *Runtime) AddMethod2(c *Class, name string, fn Method2Func) error {
	return rt.AddMethod(c, name, NewMethod2(name, fn))
}

// AddOperator registers an operator handler through the runtime.
func (rt *Runtime) AddOperator(c *Class, op Operator, method Method) error {
	return rt.AddMethod(c, op.Selector(), method)
}

// AddAbstractMethod registers an abstract stub through the runtime.
func (rt *Runtime) AddAbstractMethod(c *Class, name string) error {
	return rt.AddMethod(c, name, NewAbstractMethod(name))
}

// Freeze marks the runtime's class definitions as settled. Subsequent
// DefineClass and AddMethod calls through the runtime return FrozenError.
// There is no Unfreeze.
func (rt *Runtime) Freeze() {
	rt.frozen = true
	rt.log.Infof("runtime frozen: %d classes, %d selectors", rt.Classes.Len(), rt.Selectors.Len())
}

// Frozen reports whether Freeze has been called.
func (rt *Runtime) Frozen() bool {
	return rt.frozen
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// Construct creates an instance of class seeded from initialFields.
// See the package-level Construct for copy semantics.
func (rt *Runtime) Construct(class *Class, initialFields map[string]Value) (*Instance, error) {
	inst, err := Construct(class, initialFields)
	if err != nil {
		return nil, err
	}
	if rt.trace {
		rt.log.Debugf("construct %s with %d fields", class.FullName(), len(initialFields))
	}
	return inst, nil
}

// ---------------------------------------------------------------------------
// Resolution and sends
// ---------------------------------------------------------------------------

// Resolve finds the method an instance would run for a selector. Lookup
// order is strict: instance-local methods, then the owning class, then each
// superclass up the chain. Resolution is deterministic, side-effect free,
// and never interns new selectors. Returns MethodNotFoundError when the
// chain is exhausted.
func (rt *Runtime) Resolve(inst *Instance, name string) (Method, error) {
	if m := inst.LocalMethod(name); m != nil {
		return m, nil
	}

	selectorID := rt.Selectors.Lookup(name)
	if selectorID >= 0 {
		if m := inst.VTablePtr().Lookup(selectorID); m != nil {
			return m, nil
		}
	}
	return nil, &MethodNotFoundError{Class: inst.ClassName(), Selector: name}
}

// Send resolves name on the receiver and invokes it. The receiver must be
// an instance value. The original receiver is bound regardless of where in
// the chain the method was found, so a superclass method operating on the
// receiver sees the subclass instance's fields.
func (rt *Runtime) Send(receiver Value, name string, args ...Value) (Value, error) {
	inst := receiver.AsInstance()
	if inst == nil {
		return Nil, &MethodNotFoundError{Class: kindName(receiver), Selector: name}
	}

	method, err := rt.Resolve(inst, name)
	if err != nil {
		return Nil, err
	}

	if rt.trace {
		rt.traceSend(inst, name)
	}
	return method.Invoke(rt, receiver, args)
}

// Bind resolves name on an instance and returns it as a first-class bound
// method, capturing the instance as receiver.
func (rt *Runtime) Bind(inst *Instance, name string) (*BoundMethod, error) {
	method, err := rt.Resolve(inst, name)
	if err != nil {
		return nil, err
	}
	return &BoundMethod{Receiver: FromInstance(inst), Target: method}, nil
}
