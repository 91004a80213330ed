package interp

// Add implements +: Number+Number, String+String (concatenation), and a
// ClassInstance lhs falls back to its __add__ dunder method. Grounded on
// statement.cpp's Add::Execute, which tries the same three cases in the
// same order.
func Add(lhs, rhs Value, ctx *Context) (Value, error) {
	switch l := lhs.Obj.(type) {
	case Number:
		r, ok := rhs.Obj.(Number)
		if !ok {
			return None, arithTypeError("+", lhs, rhs)
		}
		return Own(Number{N: l.N + r.N}), nil
	case String:
		r, ok := rhs.Obj.(String)
		if !ok {
			return None, arithTypeError("+", lhs, rhs)
		}
		return Own(String{S: l.S + r.S}), nil
	case *Instance:
		if !l.HasMethod("__add__", 1) {
			return None, newRuntimeError("class %s has no __add__ method", l.Class.Name)
		}
		return l.Call("__add__", []Value{rhs}, ctx)
	}
	return None, arithTypeError("+", lhs, rhs)
}

// Sub implements - over two Numbers only.
func Sub(lhs, rhs Value, _ *Context) (Value, error) {
	l, ok1 := lhs.Obj.(Number)
	r, ok2 := rhs.Obj.(Number)
	if !ok1 || !ok2 {
		return None, arithTypeError("-", lhs, rhs)
	}
	return Own(Number{N: l.N - r.N}), nil
}

// Mult implements * over two Numbers only.
func Mult(lhs, rhs Value, _ *Context) (Value, error) {
	l, ok1 := lhs.Obj.(Number)
	r, ok2 := rhs.Obj.(Number)
	if !ok1 || !ok2 {
		return None, arithTypeError("*", lhs, rhs)
	}
	return Own(Number{N: l.N * r.N}), nil
}

// Div implements / over two Numbers, rejecting division by zero the way
// statement.cpp's Div::Execute throws "zero divizion" rather than letting
// the host language's own division-by-zero behavior show through.
func Div(lhs, rhs Value, _ *Context) (Value, error) {
	l, ok1 := lhs.Obj.(Number)
	r, ok2 := rhs.Obj.(Number)
	if !ok1 || !ok2 {
		return None, arithTypeError("/", lhs, rhs)
	}
	if r.N == 0 {
		return None, newRuntimeError("division by zero")
	}
	return Own(Number{N: l.N / r.N}), nil
}

func arithTypeError(op string, lhs, rhs Value) error {
	return newRuntimeError("cannot apply %s to %s and %s", op, typeName(lhs), typeName(rhs))
}
