package ast

import (
	"fmt"
	"strings"

	"github.com/dkellis-exercise/langi/interp"
)

// Print evaluates Args left to right and writes them space-separated to
// the context's output stream, followed by one newline; a None-valued
// argument prints as the literal text "None".
type Print struct {
	Args []interp.Node
}

func (p *Print) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	w := ctx.GetOutputStream()
	for i, a := range p.Args {
		if i > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return interp.None, err
			}
		}
		v, err := a.Execute(scope, ctx)
		if err != nil {
			return interp.None, err
		}
		if v.IsNone() {
			if _, err := fmt.Fprint(w, "None"); err != nil {
				return interp.None, err
			}
			continue
		}
		if err := v.Obj.Print(w, ctx); err != nil {
			return interp.None, err
		}
	}
	_, err := fmt.Fprintln(w)
	return interp.None, err
}

// Compound is an ordered sequence of statements. Each child runs in
// turn; a ReturnSignal raised by a child is not caught here — it
// propagates up to the nearest enclosing MethodBody, matching the
// return-propagation fix called for over the original implementation's
// Compound::Execute (which never observed Return at all).
type Compound struct {
	Stmts []interp.Node
}

func (c *Compound) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	for _, s := range c.Stmts {
		if _, err := s.Execute(scope, ctx); err != nil {
			return interp.None, err
		}
	}
	return interp.None, nil
}

// Return evaluates Expr and raises it as a ReturnSignal, unwinding any
// enclosing Compound up to the nearest MethodBody.
type Return struct {
	Expr interp.Node
}

func (r *Return) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	v, err := r.Expr.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	return interp.None, &interp.ReturnSignal{Value: v}
}

// MethodBody wraps a method's statement body and is the sole node that
// catches a ReturnSignal, converting it back into an ordinary result. A
// Return with no intervening MethodBody (top-level script code) is left
// to the program driver to catch and discard.
type MethodBody struct {
	Body interp.Node
}

func (m *MethodBody) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	v, err := m.Body.Execute(scope, ctx)
	if err != nil {
		if rv, ok := interp.AsReturn(err); ok {
			return rv, nil
		}
		return interp.None, err
	}
	return v, nil
}

// IfElse requires Cond to evaluate to Bool and branches into Then or
// Else; a missing Else is an empty block (None result).
type IfElse struct {
	Cond       interp.Node
	Then, Else interp.Node
}

func (i *IfElse) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	cv, err := i.Cond.Execute(scope, ctx)
	if err != nil {
		return interp.None, err
	}
	b, ok := cv.Obj.(interp.Bool)
	if !ok {
		return interp.None, fmt.Errorf("%w: if condition must be Bool", interp.ErrRuntime)
	}
	if b.B {
		return i.Then.Execute(scope, ctx)
	}
	if i.Else == nil {
		return interp.None, nil
	}
	return i.Else.Execute(scope, ctx)
}

// MethodDecl is one def inside a class body, carried by ClassDefinition
// until the class object is constructed.
type MethodDecl struct {
	Name   string
	Params []string
	Body   interp.Node
}

// ClassDefinition builds an interp.Class from Name, Methods and an
// optional ParentName looked up in scope, then binds the class object to
// Name in scope.
type ClassDefinition struct {
	Name       string
	ParentName string
	Methods    []*MethodDecl
}

func (c *ClassDefinition) Execute(scope *interp.Scope, ctx *interp.Context) (interp.Value, error) {
	var parent *interp.Class
	if c.ParentName != "" {
		pv, ok := scope.Get(c.ParentName)
		if !ok {
			return interp.None, fmt.Errorf("%w: base class %q is not defined", interp.ErrRuntime, c.ParentName)
		}
		p, ok := pv.Obj.(*interp.Class)
		if !ok {
			return interp.None, fmt.Errorf("%w: %q is not a class", interp.ErrRuntime, c.ParentName)
		}
		parent = p
	}
	methods := make([]*interp.Method, len(c.Methods))
	for i, m := range c.Methods {
		methods[i] = &interp.Method{Name: m.Name, Params: m.Params, Body: m.Body}
	}
	cls := interp.NewClass(c.Name, methods, parent)
	scope.Set(c.Name, interp.Own(cls))
	return interp.Own(cls), nil
}

// ClassRef looks up a class name in scope; used as the Class field of a
// NewInstance node when the class is referenced directly by name rather
// than via a computed expression.
type ClassRef struct {
	Name string
}

func (c *ClassRef) Execute(scope *interp.Scope, _ *interp.Context) (interp.Value, error) {
	v, ok := scope.Get(c.Name)
	if !ok {
		return interp.None, fmt.Errorf("%w: class %q is not defined", interp.ErrRuntime, c.Name)
	}
	if _, ok := v.Obj.(*interp.Class); !ok {
		return interp.None, fmt.Errorf("%w: %q is not a class", interp.ErrRuntime, c.Name)
	}
	return v, nil
}

// String renders a dotted VariableValue path for diagnostics and tests.
func (v *VariableValue) String() string {
	return strings.Join(v.Path, ".")
}
