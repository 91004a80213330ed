package interp

import (
	"fmt"
	"io"
)

// Method is a named, fixed-arity function defined inside a class body.
type Method struct {
	Name   string
	Params []string
	Body   Node
}

// Class is a user-defined type: a name, its own methods, and an optional
// parent for single inheritance. GetMethod resolves through a map built
// once at construction time by copying the parent's methods and then
// overwriting with the class's own — so method resolution order is a
// single map lookup, not a walk up the parent chain at call time.
type Class struct {
	Name    string
	Parent  *Class
	methods map[string]*Method
}

// NewClass builds a Class, merging the parent's method table (if any)
// with this class's own methods. Own methods take precedence over an
// inherited method of the same name.
func NewClass(name string, methods []*Method, parent *Class) *Class {
	merged := map[string]*Method{}
	if parent != nil {
		for k, v := range parent.methods {
			merged[k] = v
		}
	}
	for _, m := range methods {
		merged[m.Name] = m
	}
	return &Class{Name: name, Parent: parent, methods: merged}
}

// GetMethod returns the method bound to name, or nil if none is defined
// anywhere in the class's inheritance chain.
func (c *Class) GetMethod(name string) *Method {
	return c.methods[name]
}

func (c *Class) Print(w io.Writer, _ *Context) error {
	_, err := fmt.Fprintf(w, "Class %s", c.Name)
	return err
}

// Instance is a reference to its Class plus a per-instance field scope.
// Fields come into existence on first assignment.
type Instance struct {
	Class  *Class
	Fields *Scope
}

// NewInstance allocates a zero-valued instance of cls. It does not run
// __init__; callers that want constructor semantics use Call after
// allocation (see ast.NewInstance, which is grounded on this split).
func NewInstance(cls *Class) *Instance {
	return &Instance{Class: cls, Fields: NewScope()}
}

// HasMethod reports whether the instance's class defines a method by
// that name with exactly that many formal parameters.
func (inst *Instance) HasMethod(name string, arity int) bool {
	m := inst.Class.GetMethod(name)
	return m != nil && len(m.Params) == arity
}

// Call resolves name in the instance's class, binds a fresh call-frame
// scope (self, sharing this instance, plus the formal parameters bound
// to args), and executes the method body. A ReturnSignal produced by the
// body is unwrapped into an ordinary value; any other error propagates.
func (inst *Instance) Call(name string, args []Value, ctx *Context) (Value, error) {
	m := inst.Class.GetMethod(name)
	if m == nil {
		return Value{}, newRuntimeError("no method %q on class %s", name, inst.Class.Name)
	}
	if len(m.Params) != len(args) {
		return Value{}, newRuntimeError("method %q expects %d argument(s), got %d", name, len(m.Params), len(args))
	}

	frame := NewScope()
	frame.Set("self", Share(inst))
	for i, p := range m.Params {
		frame.Set(p, args[i])
	}

	v, err := m.Body.Execute(frame, ctx)
	if err != nil {
		if rv, ok := AsReturn(err); ok {
			return rv, nil
		}
		return Value{}, err
	}
	return v, nil
}

// Print invokes __str__ when defined (arity 0); otherwise it renders a
// deterministic placeholder rather than a raw pointer, per spec's choice
// among the original implementation's (address-printing) behavior.
func (inst *Instance) Print(w io.Writer, ctx *Context) error {
	if inst.HasMethod("__str__", 0) {
		res, err := inst.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		if res.IsNone() {
			_, err := io.WriteString(w, "None")
			return err
		}
		return res.Obj.Print(w, ctx)
	}
	_, err := fmt.Fprintf(w, "<instance of %s>", inst.Class.Name)
	return err
}
