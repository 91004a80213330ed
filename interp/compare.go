package interp

// Equal, Less and the four operators derived from them implement the
// comparison dispatch the source's CmpOpImpl template performs: try the
// primitive variants in turn (Number, Bool, String), and if lhs is a
// class instance fall back to its __eq__/__lt__ dunder method. Any other
// pairing, or a primitive compared against a mismatched type, is a
// runtime error rather than a silent false.

// Equal reports whether lhs and rhs compare equal.
func Equal(lhs, rhs Value, ctx *Context) (bool, error) {
	switch l := lhs.Obj.(type) {
	case Number:
		r, ok := rhs.Obj.(Number)
		if !ok {
			return false, cmpTypeError("Equal", lhs, rhs)
		}
		return l.N == r.N, nil
	case Bool:
		r, ok := rhs.Obj.(Bool)
		if !ok {
			return false, cmpTypeError("Equal", lhs, rhs)
		}
		return l.B == r.B, nil
	case String:
		r, ok := rhs.Obj.(String)
		if !ok {
			return false, cmpTypeError("Equal", lhs, rhs)
		}
		return l.S == r.S, nil
	case *Instance:
		if !l.HasMethod("__eq__", 1) {
			return false, newRuntimeError("class %s has no __eq__ method", l.Class.Name)
		}
		res, err := l.Call("__eq__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(res), nil
	}
	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}
	return false, cmpTypeError("Equal", lhs, rhs)
}

// Less reports whether lhs orders strictly before rhs.
func Less(lhs, rhs Value, ctx *Context) (bool, error) {
	switch l := lhs.Obj.(type) {
	case Number:
		r, ok := rhs.Obj.(Number)
		if !ok {
			return false, cmpTypeError("Less", lhs, rhs)
		}
		return l.N < r.N, nil
	case Bool:
		r, ok := rhs.Obj.(Bool)
		if !ok {
			return false, cmpTypeError("Less", lhs, rhs)
		}
		return !l.B && r.B, nil
	case String:
		r, ok := rhs.Obj.(String)
		if !ok {
			return false, cmpTypeError("Less", lhs, rhs)
		}
		return l.S < r.S, nil
	case *Instance:
		if !l.HasMethod("__lt__", 1) {
			return false, newRuntimeError("class %s has no __lt__ method", l.Class.Name)
		}
		res, err := l.Call("__lt__", []Value{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(res), nil
	}
	return false, cmpTypeError("Less", lhs, rhs)
}

// NotEqual is the negation of Equal.
func NotEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	return !eq, err
}

// Greater is "not less and not equal", both checked in the original
// lhs/rhs order so dunder dispatch lands on lhs, matching the source's
// Greater(lhs, rhs) = !Less(lhs, rhs) && !Equal(lhs, rhs).
func Greater(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

// LessOrEqual is "not greater", in the original lhs/rhs order.
func LessOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	return !gt, err
}

// GreaterOrEqual is "not less".
func GreaterOrEqual(lhs, rhs Value, ctx *Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	return !lt, err
}

func cmpTypeError(op string, lhs, rhs Value) error {
	return newRuntimeError("cannot compare (%s) with %s and %s", op, typeName(lhs), typeName(rhs))
}

func typeName(v Value) string {
	switch v.Obj.(type) {
	case Number:
		return "Number"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case *Instance:
		return "ClassInstance"
	case *Class:
		return "Class"
	default:
		return "None"
	}
}
