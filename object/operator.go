package object

// ---------------------------------------------------------------------------
// Operator: symbolic operations dispatched like methods
// ---------------------------------------------------------------------------

// Operator identifies one of the fixed symbolic operations a class may
// handle. Handlers are ordinary methods registered under the operator's
// selector spelling, so they resolve and inherit exactly like any other
// method.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpLt
	OpString
)

// operatorSelectors maps operators to their selector spellings.
var operatorSelectors = [...]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpEq:     "=",
	OpLt:     "<",
	OpString: "asString",
}

// Selector returns the selector spelling under which handlers for op are
// registered.
func (op Operator) Selector() string {
	if op < 0 || int(op) >= len(operatorSelectors) {
		return "?"
	}
	return operatorSelectors[op]
}

// Binary returns true for operators that take a right operand.
func (op Operator) Binary() bool {
	return op != OpString
}

// String implements the Stringer interface.
func (op Operator) String() string {
	return op.Selector()
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

// ApplyOperator dispatches an operator on lhs, passing rhs as the sole
// argument for binary operators. Dispatch is keyed on the left operand's
// class only and walks the same class-then-parent chain as method
// resolution.
//
// Returns UnsupportedOperandError if lhs is not an instance, and
// OperatorNotImplementedError if the chain has no handler. Handlers are
// expected to return UnsupportedOperandError themselves when rhs is of a
// class they cannot combine with.
func (rt *Runtime) ApplyOperator(op Operator, lhs, rhs Value) (Value, error) {
	inst := lhs.AsInstance()
	if inst == nil {
		return Nil, &UnsupportedOperandError{Op: op, Left: kindName(lhs), Right: kindName(rhs)}
	}

	method, err := rt.resolveOperator(inst, op)
	if err != nil {
		return Nil, err
	}

	if !op.Binary() {
		return method.Invoke(rt, lhs, nil)
	}
	return method.Invoke(rt, lhs, []Value{rhs})
}

// resolveOperator finds the handler for op in the instance's class chain.
// Instance-local overrides participate, same as ordinary resolution.
func (rt *Runtime) resolveOperator(inst *Instance, op Operator) (Method, error) {
	name := op.Selector()
	if m := inst.LocalMethod(name); m != nil {
		return m, nil
	}

	selectorID := rt.Selectors.Lookup(name)
	if selectorID >= 0 {
		if m := inst.VTablePtr().Lookup(selectorID); m != nil {
			return m, nil
		}
	}
	return nil, &OperatorNotImplementedError{Class: inst.ClassName(), Op: op}
}

// DisplayString renders a value for display. Scalars render directly;
// instances dispatch their asString handler when one exists and otherwise
// fall back to a generic "a ClassName" rendering.
func (rt *Runtime) DisplayString(v Value) (string, error) {
	inst := v.AsInstance()
	if inst == nil {
		return v.String(), nil
	}

	method, err := rt.resolveOperator(inst, OpString)
	if err != nil {
		return "a " + inst.ClassName(), nil
	}

	result, err := method.Invoke(rt, v, nil)
	if err != nil {
		return "", err
	}
	if s, ok := result.AsString(); ok {
		return s, nil
	}
	return result.String(), nil
}

// kindName names a value's type for error messages: the class name for
// instances, the kind otherwise.
func kindName(v Value) string {
	if inst := v.AsInstance(); inst != nil {
		return inst.ClassName()
	}
	switch v.Kind() {
	case KindNil:
		return "nil"
	case KindBool:
		return "Boolean"
	case KindInt:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindClass:
		return "Class"
	case KindMethod:
		return "Method"
	}
	return "?"
}
