package object

import (
	"fmt"
	"strconv"
)

// ---------------------------------------------------------------------------
// Value: tagged runtime value
// ---------------------------------------------------------------------------

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSymbol
	KindInstance
	KindClass
	KindMethod
)

// Value is a Minerva runtime value. Everything that flows through the
// dispatcher — receivers, arguments, field contents, results — is a Value.
//
// The representation is a kind tag plus a payload. Scalars are stored by
// value; instances, classes and bound methods are stored by reference, so
// copying a Value never copies the object it refers to.
type Value struct {
	kind ValueKind
	data any
}

// Nil is the absent value. The zero Value is Nil.
var Nil = Value{}

// True and False are the boolean values.
var (
	True  = Value{kind: KindBool, data: true}
	False = Value{kind: KindBool, data: false}
)

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewBool returns the Value for b.
func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// NewInt returns an integer Value.
func NewInt(n int64) Value {
	return Value{kind: KindInt, data: n}
}

// NewFloat returns a float Value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, data: f}
}

// NewString returns a string Value.
func NewString(s string) Value {
	return Value{kind: KindString, data: s}
}

// NewSymbol returns a symbol Value. Symbols compare by name and are
// conventionally used for selector-like identifiers in field maps.
func NewSymbol(name string) Value {
	return Value{kind: KindSymbol, data: name}
}

// FromInstance wraps an instance pointer as a Value.
// A nil instance yields Nil.
func FromInstance(inst *Instance) Value {
	if inst == nil {
		return Nil
	}
	return Value{kind: KindInstance, data: inst}
}

// FromClass wraps a class as a Value, for class-valued fields and globals.
func FromClass(c *Class) Value {
	if c == nil {
		return Nil
	}
	return Value{kind: KindClass, data: c}
}

// FromMethod wraps a method as a first-class Value. Storing a method Value
// in an instance's field map makes it an instance-local method (see
// Runtime.Resolve).
func FromMethod(m Method) Value {
	if m == nil {
		return Nil
	}
	return Value{kind: KindMethod, data: m}
}

// ---------------------------------------------------------------------------
// Type checking
// ---------------------------------------------------------------------------

// Kind returns the value's kind tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNil returns true for the absent value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// IsInstance returns true if v holds an *Instance.
func (v Value) IsInstance() bool { return v.kind == KindInstance }

// IsMethod returns true if v holds a Method.
func (v Value) IsMethod() bool { return v.kind == KindMethod }

// Truthy reports the boolean interpretation of v: nil and false are false,
// everything else is true.
func (v Value) Truthy() bool {
	if v.kind == KindNil {
		return false
	}
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return true
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// AsBool extracts a bool, reporting whether v is a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.data.(bool), true
}

// AsInt extracts an int64, reporting whether v is an integer.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.data.(int64), true
}

// AsFloat extracts a float64. Integers convert implicitly.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.data.(float64), true
	case KindInt:
		return float64(v.data.(int64)), true
	}
	return 0, false
}

// AsString extracts a string, reporting whether v is a string or symbol.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString && v.kind != KindSymbol {
		return "", false
	}
	return v.data.(string), true
}

// AsInstance extracts the instance pointer, or nil if v is not an instance.
func (v Value) AsInstance() *Instance {
	if v.kind != KindInstance {
		return nil
	}
	return v.data.(*Instance)
}

// AsClass extracts the class pointer, or nil if v is not a class.
func (v Value) AsClass() *Class {
	if v.kind != KindClass {
		return nil
	}
	return v.data.(*Class)
}

// AsMethod extracts the method, or nil if v is not a method.
func (v Value) AsMethod() Method {
	if v.kind != KindMethod {
		return nil
	}
	return v.data.(Method)
}

// ---------------------------------------------------------------------------
// Equality and display
// ---------------------------------------------------------------------------

// Equal compares two values. Scalars compare by content (with int/float
// coercion), instances, classes and methods by identity.
func Equal(a, b Value) bool {
	if a.kind == b.kind {
		switch a.kind {
		case KindNil:
			return true
		case KindInstance:
			return a.data.(*Instance) == b.data.(*Instance)
		case KindClass:
			return a.data.(*Class) == b.data.(*Class)
		case KindMethod:
			return a.data.(Method) == b.data.(Method)
		default:
			return a.data == b.data
		}
	}
	// Numeric cross-kind comparison.
	af, aok := a.AsFloat()
	bf, bok := b.AsFloat()
	return aok && bok && af == bf
}

// String renders the value for diagnostics. Instance rendering does not
// consult operator handlers; use Runtime.DisplayString for that.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.data.(bool))
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindString:
		return v.data.(string)
	case KindSymbol:
		return "#" + v.data.(string)
	case KindInstance:
		return v.data.(*Instance).String()
	case KindClass:
		return v.data.(*Class).String()
	case KindMethod:
		return "<method " + MethodName(v.data.(Method)) + ">"
	}
	return fmt.Sprintf("<unknown kind %d>", int(v.kind))
}
