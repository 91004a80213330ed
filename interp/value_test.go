package interp

import "testing"

func TestIsTrue(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"bool true", Own(Bool{B: true}), true},
		{"bool false", Own(Bool{B: false}), false},
		{"nonzero number", Own(Number{N: 1}), true},
		{"zero number", Own(Number{N: 0}), false},
		{"non-empty string", Own(String{S: "x"}), true},
		{"empty string", Own(String{S: ""}), false},
		{"none", None, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsTrue(c.v); got != c.want {
				t.Errorf("IsTrue(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestScopeGetSet(t *testing.T) {
	s := NewScope()
	if _, ok := s.Get("x"); ok {
		t.Fatalf("expected x to be unbound in a fresh scope")
	}
	s.Set("x", Own(Number{N: 7}))
	v, ok := s.Get("x")
	if !ok {
		t.Fatalf("expected x to be bound after Set")
	}
	if n, ok := v.Obj.(Number); !ok || n.N != 7 {
		t.Errorf("Get(x) = %v, want Number{7}", v)
	}
}
