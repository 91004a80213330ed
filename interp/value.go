// Package interp implements the runtime object model and the tree-walking
// evaluator: values, scopes, classes with single inheritance, dunder-method
// dispatch, and the statement/expression execution contract.
package interp

import (
	"fmt"
	"io"
)

// Value is a shared-ownership handle to a runtime Object, or the absent
// value (None) when Obj is nil. Two handles constructed from the same
// Object share its identity; assigning a handle never copies the
// underlying Object.
type Value struct {
	Obj Object
}

// None is the absent value.
var None = Value{}

// IsNone reports whether v holds no object.
func (v Value) IsNone() bool {
	return v.Obj == nil
}

// Own wraps a freshly constructed Object as its sole logical owner.
func Own(obj Object) Value {
	return Value{Obj: obj}
}

// Share returns a handle that names obj without participating in its
// lifetime. Go's garbage collector makes every handle "borrowed" in the
// sense the spec describes for self: binding self to a call frame never
// creates a reference-counted cycle, because there is no refcounting to
// break. Share exists to document, at each call site, which handles are
// this deliberately-non-owning kind — self during a method call frame —
// the same way the source's ObjectHolder::Share marks a non-owning
// shared_ptr.
func Share(obj Object) Value {
	return Value{Obj: obj}
}

// Object is the runtime value interface every variant implements.
type Object interface {
	// Print writes a human-readable rendering of the object to w.
	Print(w io.Writer, ctx *Context) error
}

// Number is an integer runtime value.
type Number struct{ N int64 }

func (n Number) Print(w io.Writer, _ *Context) error {
	_, err := fmt.Fprintf(w, "%d", n.N)
	return err
}

// Bool is a boolean runtime value.
type Bool struct{ B bool }

func (b Bool) Print(w io.Writer, _ *Context) error {
	s := "False"
	if b.B {
		s = "True"
	}
	_, err := io.WriteString(w, s)
	return err
}

// String is a runtime string value.
type String struct{ S string }

func (s String) Print(w io.Writer, _ *Context) error {
	_, err := io.WriteString(w, s.S)
	return err
}

// IsTrue implements the language's truthiness predicate: Bool yields its
// value, Number is true iff nonzero, String is true iff non-empty,
// anything else (including None) is false.
func IsTrue(v Value) bool {
	switch o := v.Obj.(type) {
	case Bool:
		return o.B
	case Number:
		return o.N != 0
	case String:
		return o.S != ""
	default:
		return false
	}
}
