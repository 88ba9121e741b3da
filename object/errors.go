package object

import "fmt"

// Every error in this package is terminal for the operation that raised it:
// nothing is retried or recovered internally, the error is surfaced to the
// caller as-is.

// ConstructionError is returned when an instance cannot be created, most
// commonly because the class is nil.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return "construct: " + e.Reason
}

// MethodNotFoundError is returned when a send exhausts the instance, its
// class, and the full superclass chain without finding the selector.
type MethodNotFoundError struct {
	Class    string
	Selector string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("%s does not understand %q", e.Class, e.Selector)
}

// NotImplementedError is raised by abstract method stubs. It signals a
// missing subclass override, a programming defect rather than a transient
// condition.
type NotImplementedError struct {
	Method string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("abstract method %q not overridden", e.Method)
}

// OperatorNotImplementedError is returned by ApplyOperator when no handler
// for the operator exists anywhere in the left operand's class chain.
type OperatorNotImplementedError struct {
	Class string
	Op    Operator
}

func (e *OperatorNotImplementedError) Error() string {
	return fmt.Sprintf("%s does not implement operator %q", e.Class, e.Op.Selector())
}

// UnsupportedOperandError is returned when an operator handler exists but
// cannot use its operands, typically because the right operand's class does
// not match.
type UnsupportedOperandError struct {
	Op    Operator
	Left  string
	Right string
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("operator %q: unsupported operands %s and %s", e.Op.Selector(), e.Left, e.Right)
}

// ArityError is returned when a fixed-arity method is invoked with the
// wrong number of arguments.
type ArityError struct {
	Method string
	Want   int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("method %q: got %d arguments, want %d", e.Method, e.Got, e.Want)
}

// FrozenError is returned by Runtime registration operations after Freeze.
type FrozenError struct {
	Class string
}

func (e *FrozenError) Error() string {
	if e.Class == "" {
		return "runtime is frozen"
	}
	return fmt.Sprintf("runtime is frozen: cannot modify class %s", e.Class)
}
