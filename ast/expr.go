// Package ast holds the node types that make up a parsed program: each
// satisfies interp.Node's single Execute(scope, ctx) contract, mirroring
// the struct-per-node-kind style of tmazeika-lang/parser/types.go but
// with the evaluation logic of original_source/src/statement.cpp.
package ast

import (
	"fmt"

	"github.com/dkellis-exercise/langi/interp"
)

// NumberLiteral is a Number constant.
type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) Execute(_ *interp.Scope, _ *interp.Context) (interp.Value, error) {
	return interp.Own(interp.Number{N: n.Value}), nil
}

// StringLiteral is a String constant.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) Execute(_ *interp.Scope, _ *interp.Context) (interp.Value, error) {
	return interp.Own(interp.String{S: s.Value}), nil
}

// BoolLiteral is a True/False constant.
type BoolLiteral struct {
	Value bool
}

func (b *BoolLiteral) Execute(_ *interp.Scope, _ *interp.Context) (interp.Value, error) {
	return interp.Own(interp.Bool{B: b.Value}), nil
}

// NoneLiteral is the None constant.
type NoneLiteral struct{}

func (*NoneLiteral) Execute(_ *interp.Scope, _ *interp.Context) (interp.Value, error) {
	return interp.None, nil
}

// VariableValue resolves a dotted identifier path: the first segment in
// scope, and each subsequent segment as a field lookup on the previous
// value, which must be a ClassInstance. Grounded on statement.cpp's
// VariableValue::Execute, including its early-return quirk: if an
// intermediate segment isn't a ClassInstance, the walk stops and returns
// the current value rather than erroring.
type VariableValue struct {
	Path []string
}

func (v *VariableValue) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	if len(v.Path) == 0 {
		return interp.None, fmt.Errorf("%w: empty variable path", interp.ErrRuntime)
	}
	cur, ok := scope.Get(v.Path[0])
	if !ok {
		return interp.None, fmt.Errorf("%w: undefined name %q", interp.ErrRuntime, v.Path[0])
	}
	for _, seg := range v.Path[1:] {
		inst, ok := cur.Obj.(*interp.Instance)
		if !ok {
			return cur, nil
		}
		next, ok := inst.Fields.Get(seg)
		if !ok {
			return interp.None, fmt.Errorf("%w: instance of %s has no field %q", interp.ErrRuntime, inst.Class.Name, seg)
		}
		cur = next
	}
	return cur, nil
}

// Assignment evaluates Rhs and binds it to Name in scope, returning the
// bound value.
type Assignment struct {
	Name string
	Rhs  interp.Node
}

func (a *Assignment) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	v, err := a.Rhs.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	scope.Set(a.Name, v)
	return v, nil
}

// FieldAssignment resolves TargetPath to a ClassInstance (the same way
// VariableValue does, but TargetPath names the instance, not the field)
// and sets Field in its field scope to the evaluated Rhs.
type FieldAssignment struct {
	TargetPath []string
	Field      string
	Rhs        interp.Node
}

func (f *FieldAssignment) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	target := &VariableValue{Path: f.TargetPath}
	tv, err := target.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	inst, ok := tv.Obj.(*interp.Instance)
	if !ok {
		return interp.None, fmt.Errorf("%w: cannot assign field %q on a non-instance value", interp.ErrRuntime, f.Field)
	}
	v, err := f.Rhs.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	inst.Fields.Set(f.Field, v)
	return v, nil
}

// MethodCall evaluates Receiver (which must resolve to a ClassInstance),
// evaluates Args left to right, and calls Method on the receiver.
type MethodCall struct {
	Receiver interp.Node
	Method   string
	Args     []interp.Node
}

func (m *MethodCall) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	rv, err := m.Receiver.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	inst, ok := rv.Obj.(*interp.Instance)
	if !ok {
		return interp.None, fmt.Errorf("%w: cannot call method %q on a non-instance value", interp.ErrRuntime, m.Method)
	}
	args, err := evalArgs(m.Args, scope, ctx)
	if err != nil {
		return interp.None, err
	}
	return inst.Call(m.Method, args, ctx)
}

// NewInstance allocates a ClassInstance of Class. If the class defines
// __init__ with matching arity, it runs with the evaluated Args;
// otherwise Args are ignored, per spec.
type NewInstance struct {
	Class interp.Node
	Args  []interp.Node
}

func (n *NewInstance) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	cv, err := n.Class.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	cls, ok := cv.Obj.(*interp.Class)
	if !ok {
		return interp.None, fmt.Errorf("%w: new requires a class", interp.ErrRuntime)
	}
	inst := interp.NewInstance(cls)
	args, err := evalArgs(n.Args, scope, ctx)
	if err != nil {
		return interp.None, err
	}
	if inst.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return interp.None, err
		}
	}
	return interp.Own(inst), nil
}

// Stringify evaluates Expr and renders its Print output into a String,
// via an internal DummyContext buffer — the implementation of a
// str(x)-style coercion.
type Stringify struct {
	Expr interp.Node
}

func (s *Stringify) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	v, err := s.Expr.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	if v.IsNone() {
		return interp.Own(interp.String{S: "None"}), nil
	}
	dc := interp.NewDummyContext()
	if err := v.Obj.Print(dc.GetOutputStream(), &dc.Context); err != nil {
		return interp.None, err
	}
	return interp.Own(interp.String{S: dc.Output()}), nil
}

func evalArgs(nodes []interp.Node, scope *interp.Scope, ctx *interp.Context) ([]interp.Value, error) {
	args := make([]interp.Value, len(nodes))
	for i, n := range nodes {
		v, err := n.Execute(scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
