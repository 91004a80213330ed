package parser_test

import (
	"strings"
	"testing"

	"github.com/dkellis-exercise/langi/interp"
	"github.com/dkellis-exercise/langi/lexer"
	"github.com/dkellis-exercise/langi/parser"
)

// run lexes, parses, and executes src, returning everything written to
// the program's output stream.
func run(t *testing.T, src string) string {
	t.Helper()
	lex, err := lexer.New(src)
	if err != nil {
		t.Fatalf("lexer.New(%q): %v", src, err)
	}
	module, err := parser.New(lex).ParseModule()
	if err != nil {
		t.Fatalf("ParseModule(%q): %v", src, err)
	}
	var buf strings.Builder
	scope := interp.NewScope()
	ctx := interp.NewContext(&buf)
	if _, err := module.Execute(scope, ctx); err != nil {
		t.Fatalf("Execute(%q): %v", src, err)
	}
	return buf.String()
}

// These mirror spec.md §8's concrete end-to-end scenario table.

func TestScenarioAddNumbers(t *testing.T) {
	got := run(t, "x = 2\ny = 3\nprint x + y\n")
	if got != "5\n" {
		t.Errorf("got %q, want %q", got, "5\n")
	}
}

func TestScenarioConcatenateStrings(t *testing.T) {
	got := run(t, "s = 'hi'\nprint s + ' there'\n")
	if got != "hi there\n" {
		t.Errorf("got %q, want %q", got, "hi there\n")
	}
}

func TestScenarioStrDunderDispatch(t *testing.T) {
	src := "class A:\n  def __str__(self):\n    return 'A!'\na = A()\nprint a\n"
	got := run(t, src)
	if got != "A!\n" {
		t.Errorf("got %q, want %q", got, "A!\n")
	}
}

func TestScenarioMethodResolutionOrderChildOverride(t *testing.T) {
	src := "class A:\n  def f(self):\n    return 1\nclass B(A):\n  def f(self):\n    return 2\nprint B().f()\n"
	got := run(t, src)
	if got != "2\n" {
		t.Errorf("got %q, want %q", got, "2\n")
	}
}

func TestScenarioIfElse(t *testing.T) {
	src := "if 1 < 2:\n  print 'yes'\nelse:\n  print 'no'\n"
	got := run(t, src)
	if got != "yes\n" {
		t.Errorf("got %q, want %q", got, "yes\n")
	}
}

func TestScenarioDivisionByZeroIsRuntimeError(t *testing.T) {
	src := "x = 10\nprint x / 3\nprint x / 0\n"
	lex, err := lexer.New(src)
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	module, err := parser.New(lex).ParseModule()
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	var buf strings.Builder
	scope := interp.NewScope()
	ctx := interp.NewContext(&buf)
	_, err = module.Execute(scope, ctx)
	if err == nil {
		t.Fatal("expected a division-by-zero runtime error")
	}
	if buf.String() != "3\n" {
		t.Errorf("stdout before the error = %q, want %q", buf.String(), "3\n")
	}
}

func TestAssignmentReadBackEqualsRHSValue(t *testing.T) {
	// spec.md §8 invariant 6: after x = e, VariableValue("x") == e.
	got := run(t, "x = 41 + 1\nprint x\n")
	if got != "42\n" {
		t.Errorf("got %q, want %q", got, "42\n")
	}
}

func TestStringifyMatchesPrintMinusNewline(t *testing.T) {
	// spec.md §8 invariant 7: Stringify(e) == Print(e) minus the trailing
	// newline and inter-argument space.
	got := run(t, "print str(5 + 2)\n")
	if got != "7\n" {
		t.Errorf("got %q, want %q", got, "7\n")
	}
}

func TestAndOrAreNonShortCircuiting(t *testing.T) {
	// Both operands must be Bool or the operation errors, even when the
	// left operand alone would determine the result.
	src := "class C:\n  def boom(self):\n    return 1\nc = C()\nx = False and c.boom()\n"
	lex, err := lexer.New(src)
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	module, err := parser.New(lex).ParseModule()
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	_, err = module.Execute(interp.NewScope(), interp.NewContext(&strings.Builder{}))
	if err == nil {
		t.Fatal("expected an error: rhs of 'and' is not Bool, and both operands are evaluated")
	}
}

func TestNestedFieldAssignmentAndAccess(t *testing.T) {
	src := "class Box:\n  def __init__(self, v):\n    self.v = v\nb = Box(10)\nb.v = 20\nprint b.v\n"
	got := run(t, src)
	if got != "20\n" {
		t.Errorf("got %q, want %q", got, "20\n")
	}
}

func TestPrintMultipleArgsSpaceSeparated(t *testing.T) {
	got := run(t, "print 1, 'a', True\n")
	if got != "1 a True\n" {
		t.Errorf("got %q, want %q", got, "1 a True\n")
	}
}

func TestPrintNonePrintsLiteralNone(t *testing.T) {
	got := run(t, "print None\n")
	if got != "None\n" {
		t.Errorf("got %q, want %q", got, "None\n")
	}
}

// Greater (">") and LessOrEqual ("<=") must dispatch dunder comparisons
// on the left operand of the written expression. Box defines __lt__ and
// __eq__; comparing a Box against a Number via both operators has to
// call Box's dunders with the Number as the argument, not the other way
// around (a Number has no dunder methods to dispatch to at all).
func TestGreaterAndLessOrEqualDispatchOnLeftOperand(t *testing.T) {
	src := "class Box:\n" +
		"  def __init__(self, n):\n" +
		"    self.n = n\n" +
		"  def __lt__(self, other):\n" +
		"    return self.n < other\n" +
		"  def __eq__(self, other):\n" +
		"    return self.n == other\n" +
		"b = Box(10)\n" +
		"print b > 5\n" +
		"print b <= 5\n"
	got := run(t, src)
	if got != "True\nFalse\n" {
		t.Errorf("got %q, want %q", got, "True\nFalse\n")
	}
}
