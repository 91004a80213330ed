package ast

import (
	"fmt"

	"github.com/dkellis-exercise/langi/interp"
)

// arithFn is the shape shared by interp.Add/Sub/Mult/Div.
type arithFn func(lhs, rhs interp.Value, ctx *interp.Context) (interp.Value, error)

// Arith is a binary arithmetic node parameterized over which operator it
// applies; Op is one of interp.Add, interp.Sub, interp.Mult, interp.Div.
type Arith struct {
	Lhs, Rhs interp.Node
	Op       arithFn
	Symbol   string
}

func (a *Arith) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	lv, err := a.Lhs.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	rv, err := a.Rhs.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	return a.Op(lv, rv, ctx)
}

// cmpFn is the shape shared by the interp comparison functions.
type cmpFn func(lhs, rhs interp.Value, ctx *interp.Context) (bool, error)

// Comparison is a binary comparison node parameterized over which
// relational operator it applies.
type Comparison struct {
	Lhs, Rhs interp.Node
	Op       cmpFn
	Symbol   string
}

func (c *Comparison) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	lv, err := c.Lhs.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	rv, err := c.Rhs.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	res, err := c.Op(lv, rv, ctx)
	if err != nil {
		return interp.None, err
	}
	return interp.Own(interp.Bool{B: res}), nil
}

// And evaluates both operands unconditionally (no short-circuit, per
// statement.cpp's And::Execute) and requires both to be Bool.
type And struct {
	Lhs, Rhs interp.Node
}

func (a *And) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	lb, rb, err := evalBoolPair(a.Lhs, a.Rhs, scope, ctx, "and")
	if err != nil {
		return interp.None, err
	}
	return interp.Own(interp.Bool{B: lb && rb}), nil
}

// Or evaluates both operands unconditionally and requires both to be
// Bool, mirroring And.
type Or struct {
	Lhs, Rhs interp.Node
}

func (o *Or) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	lb, rb, err := evalBoolPair(o.Lhs, o.Rhs, scope, ctx, "or")
	if err != nil {
		return interp.None, err
	}
	return interp.Own(interp.Bool{B: lb || rb}), nil
}

// Not requires a Bool operand and negates it.
type Not struct {
	Expr interp.Node
}

func (n *Not) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	v, err := n.Expr.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	b, ok := v.Obj.(interp.Bool)
	if !ok {
		return interp.None, fmt.Errorf("%w: not requires a Bool operand", interp.ErrRuntime)
	}
	return interp.Own(interp.Bool{B: !b.B}), nil
}

func evalBoolPair(lhs, rhs interp.Node, scope *interp.Scope, ctx *interp.Context, op string) (bool, bool, error) {
	lv, err := lhs.Execute(scope, ctx)
	if err != nil {
		return false, false, err
	}
	rv, err := rhs.Execute(scope, ctx)
	if err != nil {
		return false, false, err
	}
	lb, ok1 := lv.Obj.(interp.Bool)
	rb, ok2 := rv.Obj.(interp.Bool)
	if !ok1 || !ok2 {
		return false, false, fmt.Errorf("%w: %s requires Bool operands", interp.ErrRuntime, op)
	}
	return lb.B, rb.B, nil
}
