package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenKinds(toks []Token) []TokenKind {
	kinds := make([]TokenKind, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind
	}
	return kinds
}

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	lex, err := New(src)
	if err != nil {
		t.Fatalf("New(%q): %v", src, err)
	}
	var toks []Token
	for {
		tok := lex.CurrentToken()
		toks = append(toks, tok)
		if tok.Kind == Eof {
			return toks
		}
		lex.NextToken()
	}
}

func TestScanSimpleAssignmentAndPrint(t *testing.T) {
	got := tokenKinds(allTokens(t, "x = 2\nprint x\n"))
	want := []TokenKind{Id, Char, Number, Newline, Print, Id, Newline, Eof}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScanIndentAndDedent(t *testing.T) {
	src := "if 1 < 2:\n  print 1\nprint 2\n"
	got := tokenKinds(allTokens(t, src))
	want := []TokenKind{
		If, Number, Char, Number, Char, Newline,
		Indent, Print, Number, Newline,
		Dedent, Print, Number, Newline, Eof,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	got := tokenKinds(allTokens(t, "a == b\na != b\na <= b\na >= b\n"))
	want := []TokenKind{
		Id, Eq, Id, Newline,
		Id, NotEq, Id, Newline,
		Id, LessOrEq, Id, Newline,
		Id, GreaterOrEq, Id, Newline,
		Eof,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScanStringEscapes(t *testing.T) {
	toks := allTokens(t, `"a\nb\tc\"d" `+"\n")
	if toks[0].Kind != String {
		t.Fatalf("expected String token, got %s", toks[0].Kind)
	}
	want := "a\nb\tc\"d"
	if toks[0].Lexeme != want {
		t.Errorf("Lexeme = %q, want %q", toks[0].Lexeme, want)
	}
}

func TestScanStringUnknownEscapeIsDroppedSilently(t *testing.T) {
	toks := allTokens(t, `"a\zb"`+"\n")
	if toks[0].Kind != String {
		t.Fatalf("expected String token, got %s", toks[0].Kind)
	}
	if toks[0].Lexeme != "ab" {
		t.Errorf("Lexeme = %q, want %q (unknown escape must drop both chars)", toks[0].Lexeme, "ab")
	}
}

func TestScanOddIndentIsFatal(t *testing.T) {
	_, err := New("if 1:\n   print 1\n")
	if err == nil {
		t.Fatal("expected an error for an odd leading-space count")
	}
	if !errors.Is(err, ErrLexer) {
		t.Errorf("error does not wrap ErrLexer: %v", err)
	}
}

func TestScanIndentJumpIsFatal(t *testing.T) {
	_, err := New("if 1:\n    print 1\n")
	if err == nil {
		t.Fatal("expected an error for a two-level indent jump")
	}
	if !errors.Is(err, ErrLexer) {
		t.Errorf("error does not wrap ErrLexer: %v", err)
	}
}

func TestScanCommentOnlyLineEmitsNoNewline(t *testing.T) {
	got := tokenKinds(allTokens(t, "x = 1\n# a comment\ny = 2\n"))
	want := []TokenKind{Id, Char, Number, Newline, Id, Char, Number, Newline, Eof}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTrailingDedentsAtEOF(t *testing.T) {
	got := tokenKinds(allTokens(t, "if 1:\n  if 2:\n    print 1"))
	want := []TokenKind{
		If, Number, Char, Newline,
		Indent, If, Number, Char, Newline,
		Indent, Print, Number,
		Dedent, Dedent, Eof,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScanBlankFileIsJustEOF(t *testing.T) {
	got := tokenKinds(allTokens(t, ""))
	want := []TokenKind{Eof}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNextTokenSaturatesAtEOF(t *testing.T) {
	lex, err := New("x\n")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for lex.CurrentToken().Kind != Eof {
		lex.NextToken()
	}
	before := lex.CurrentToken()
	after := lex.NextToken()
	if !before.Equal(after) {
		t.Errorf("NextToken past Eof changed the token: %+v -> %+v", before, after)
	}
}
