// Package parser turns a lexer.Lexer's token stream into ast nodes, via
// a recursive-descent, precedence-climbing expression grammar in the
// style of tmazeika-lang/parser/parser.go (peek/match/consume helpers,
// one method per precedence level), adapted to this language's
// indentation-delimited blocks and class/def syntax.
package parser

import (
	"fmt"

	"github.com/dkellis-exercise/langi/ast"
	"github.com/dkellis-exercise/langi/interp"
	"github.com/dkellis-exercise/langi/lexer"
)

// Parser consumes tokens from a lexer.Lexer and builds ast nodes.
type Parser struct {
	lex *lexer.Lexer
}

// New returns a Parser positioned at lex's current token.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

func (p *Parser) peek() lexer.Token {
	return p.lex.CurrentToken()
}

func (p *Parser) advance() lexer.Token {
	cur := p.peek()
	p.lex.NextToken()
	return cur
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkChar(ch string) bool {
	t := p.peek()
	return t.Kind == lexer.Char && t.Lexeme == ch
}

func (p *Parser) match(kind lexer.TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchChar(ch string) bool {
	if p.checkChar(ch) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(kind lexer.TokenKind, what string) (lexer.Token, error) {
	if !p.check(kind) {
		return lexer.Token{}, p.errorf("expected %s, got %s", what, p.peek().Kind)
	}
	return p.advance(), nil
}

func (p *Parser) consumeChar(ch, what string) error {
	if !p.checkChar(ch) {
		return p.errorf("expected %s, got %s", what, p.peek().Kind)
	}
	p.advance()
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	t := p.peek()
	return fmt.Errorf("parse error at line %d: %s", t.Row, fmt.Sprintf(format, args...))
}

// ParseModule parses an entire token stream into a top-level Compound of
// statements (class definitions and ordinary statements intermixed, the
// way module-level code and class declarations share one namespace).
func (p *Parser) ParseModule() (*ast.Compound, error) {
	var stmts []interp.Node
	for !p.check(lexer.Eof) {
		if p.check(lexer.Newline) {
			p.advance()
			continue
		}
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return &ast.Compound{Stmts: stmts}, nil
}

// parseBlock consumes an Indent, a sequence of statements, and a closing
// Dedent — the indentation-delimited equivalent of a brace block.
func (p *Parser) parseBlock() (*ast.Compound, error) {
	if _, err := p.consume(lexer.Indent, "indented block"); err != nil {
		return nil, err
	}
	var stmts []interp.Node
	for !p.check(lexer.Dedent) && !p.check(lexer.Eof) {
		if p.check(lexer.Newline) {
			p.advance()
			continue
		}
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.consume(lexer.Dedent, "end of indented block"); err != nil {
		return nil, err
	}
	return &ast.Compound{Stmts: stmts}, nil
}

func (p *Parser) parseStatement() (interp.Node, error) {
	switch {
	case p.check(lexer.Class):
		return p.parseClassDef()
	case p.check(lexer.Print):
		return p.parsePrint()
	case p.check(lexer.If):
		return p.parseIf()
	case p.check(lexer.Return):
		return p.parseReturn()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parsePrint() (interp.Node, error) {
	p.advance()
	var args []interp.Node
	for !p.check(lexer.Newline) && !p.check(lexer.Eof) && !p.check(lexer.Dedent) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if !p.matchChar(",") {
			break
		}
	}
	if err := p.consumeEndOfLine(); err != nil {
		return nil, err
	}
	return &ast.Print{Args: args}, nil
}

func (p *Parser) parseReturn() (interp.Node, error) {
	p.advance()
	if p.check(lexer.Newline) || p.check(lexer.Dedent) || p.check(lexer.Eof) {
		if err := p.consumeEndOfLine(); err != nil {
			return nil, err
		}
		return &ast.Return{Expr: &ast.NoneLiteral{}}, nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consumeEndOfLine(); err != nil {
		return nil, err
	}
	return &ast.Return{Expr: e}, nil
}

func (p *Parser) parseIf() (interp.Node, error) {
	p.advance()
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.consumeChar(":", "':'"); err != nil {
		return nil, err
	}
	if err := p.consumeEndOfLine(); err != nil {
		return nil, err
	}
	thenBlk, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseNode interp.Node
	if p.check(lexer.Else) {
		p.advance()
		if err := p.consumeChar(":", "':'"); err != nil {
			return nil, err
		}
		if err := p.consumeEndOfLine(); err != nil {
			return nil, err
		}
		elseBlk, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseNode = elseBlk
	}
	return &ast.IfElse{Cond: cond, Then: thenBlk, Else: elseNode}, nil
}

// parseClassDef parses `class Name[(Parent)]:` followed by an indented
// sequence of `def` methods.
func (p *Parser) parseClassDef() (interp.Node, error) {
	p.advance()
	nameTok, err := p.consume(lexer.Id, "class name")
	if err != nil {
		return nil, err
	}
	var parentName string
	if p.matchChar("(") {
		parentTok, err := p.consume(lexer.Id, "base class name")
		if err != nil {
			return nil, err
		}
		parentName = parentTok.Lexeme
		if err := p.consumeChar(")", "')'"); err != nil {
			return nil, err
		}
	}
	if err := p.consumeChar(":", "':'"); err != nil {
		return nil, err
	}
	if err := p.consumeEndOfLine(); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Indent, "indented class body"); err != nil {
		return nil, err
	}
	var methods []*ast.MethodDecl
	for !p.check(lexer.Dedent) && !p.check(lexer.Eof) {
		if p.check(lexer.Newline) {
			p.advance()
			continue
		}
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if _, err := p.consume(lexer.Dedent, "end of class body"); err != nil {
		return nil, err
	}
	return &ast.ClassDefinition{Name: nameTok.Lexeme, ParentName: parentName, Methods: methods}, nil
}

func (p *Parser) parseMethodDef() (*ast.MethodDecl, error) {
	if _, err := p.consume(lexer.Def, "'def'"); err != nil {
		return nil, err
	}
	nameTok, err := p.consume(lexer.Id, "method name")
	if err != nil {
		return nil, err
	}
	if err := p.consumeChar("(", "'('"); err != nil {
		return nil, err
	}
	var params []string
	for !p.checkChar(")") {
		pt, err := p.consume(lexer.Id, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, pt.Lexeme)
		if !p.matchChar(",") {
			break
		}
	}
	if err := p.consumeChar(")", "')'"); err != nil {
		return nil, err
	}
	// The leading "self" is a syntactic requirement, not a formal
	// parameter: interp.Instance.Call binds self itself before binding
	// Params positionally against the call's actual arguments.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	if err := p.consumeChar(":", "':'"); err != nil {
		return nil, err
	}
	if err := p.consumeEndOfLine(); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDecl{Name: nameTok.Lexeme, Params: params, Body: &ast.MethodBody{Body: body}}, nil
}

// parseSimpleStatement parses assignment, field assignment, and bare
// expression statements (a call used for its side effect). It parses the
// left-hand expression first and only then looks for a trailing '=' —
// mirroring tmazeika-lang's lookahead-free style of deciding statement
// shape from what has already been parsed rather than from raw token
// lookahead.
func (p *Parser) parseSimpleStatement() (interp.Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.matchChar("=") {
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.consumeEndOfLine(); err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.VariableValue:
			if len(target.Path) == 1 {
				return &ast.Assignment{Name: target.Path[0], Rhs: rhs}, nil
			}
			return &ast.FieldAssignment{
				TargetPath: target.Path[:len(target.Path)-1],
				Field:      target.Path[len(target.Path)-1],
				Rhs:        rhs,
			}, nil
		default:
			return nil, p.errorf("invalid assignment target")
		}
	}
	if err := p.consumeEndOfLine(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) consumeEndOfLine() error {
	if p.check(lexer.Newline) {
		p.advance()
		return nil
	}
	if p.check(lexer.Eof) || p.check(lexer.Dedent) {
		return nil
	}
	return p.errorf("expected end of line, got %s", p.peek().Kind)
}

// --- expressions, precedence climbing low to high ---

func (p *Parser) parseExpr() (interp.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (interp.Node, error) {
	e, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.Or) {
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		e = &ast.Or{Lhs: e, Rhs: rhs}
	}
	return e, nil
}

func (p *Parser) parseAnd() (interp.Node, error) {
	e, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.And) {
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		e = &ast.And{Lhs: e, Rhs: rhs}
	}
	return e, nil
}

func (p *Parser) parseNot() (interp.Node, error) {
	if p.match(lexer.Not) {
		e, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Expr: e}, nil
	}
	return p.parseComparison()
}

func (p *Parser) parseComparison() (interp.Node, error) {
	e, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.Eq):
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = &ast.Comparison{Lhs: e, Rhs: rhs, Op: interp.Equal, Symbol: "=="}
		case p.match(lexer.NotEq):
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = &ast.Comparison{Lhs: e, Rhs: rhs, Op: interp.NotEqual, Symbol: "!="}
		case p.match(lexer.LessOrEq):
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = &ast.Comparison{Lhs: e, Rhs: rhs, Op: interp.LessOrEqual, Symbol: "<="}
		case p.match(lexer.GreaterOrEq):
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = &ast.Comparison{Lhs: e, Rhs: rhs, Op: interp.GreaterOrEqual, Symbol: ">="}
		case p.checkChar("<"):
			p.advance()
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = &ast.Comparison{Lhs: e, Rhs: rhs, Op: interp.Less, Symbol: "<"}
		case p.checkChar(">"):
			p.advance()
			rhs, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			e = &ast.Comparison{Lhs: e, Rhs: rhs, Op: interp.Greater, Symbol: ">"}
		default:
			return e, nil
		}
	}
}

func (p *Parser) parseTerm() (interp.Node, error) {
	e, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.checkChar("+"):
			p.advance()
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			e = &ast.Arith{Lhs: e, Rhs: rhs, Op: interp.Add, Symbol: "+"}
		case p.checkChar("-"):
			p.advance()
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			e = &ast.Arith{Lhs: e, Rhs: rhs, Op: interp.Sub, Symbol: "-"}
		default:
			return e, nil
		}
	}
}

func (p *Parser) parseFactor() (interp.Node, error) {
	e, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.checkChar("*"):
			p.advance()
			rhs, err := p.parsePostfix()
			if err != nil {
				return nil, err
			}
			e = &ast.Arith{Lhs: e, Rhs: rhs, Op: interp.Mult, Symbol: "*"}
		case p.checkChar("/"):
			p.advance()
			rhs, err := p.parsePostfix()
			if err != nil {
				return nil, err
			}
			e = &ast.Arith{Lhs: e, Rhs: rhs, Op: interp.Div, Symbol: "/"}
		default:
			return e, nil
		}
	}
}

// parsePostfix parses an atom and any chain of '.' member access and/or
// '(' calls following it. A bare identifier directly followed by '(' is
// a class instantiation (this language has no free functions — the only
// callables are classes via their constructor and methods via '.'), with
// one builtin exception: str(expr) parses as ast.Stringify.
func (p *Parser) parsePostfix() (interp.Node, error) {
	if p.check(lexer.Id) {
		idTok := p.advance()
		if p.checkChar("(") {
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			var call interp.Node
			if idTok.Lexeme == "str" && len(args) == 1 {
				call = &ast.Stringify{Expr: args[0]}
			} else {
				call = &ast.NewInstance{Class: &ast.ClassRef{Name: idTok.Lexeme}, Args: args}
			}
			return p.parseTrailingCalls(call)
		}
		path := []string{idTok.Lexeme}
		for p.checkChar(".") {
			p.advance()
			nameTok, err := p.consume(lexer.Id, "member name")
			if err != nil {
				return nil, err
			}
			if p.checkChar("(") {
				recv := interp.Node(&ast.VariableValue{Path: append([]string{}, path...)})
				args, err := p.parseArgList()
				if err != nil {
					return nil, err
				}
				call := interp.Node(&ast.MethodCall{Receiver: recv, Method: nameTok.Lexeme, Args: args})
				return p.parseTrailingCalls(call)
			}
			path = append(path, nameTok.Lexeme)
		}
		return &ast.VariableValue{Path: path}, nil
	}
	return p.parseAtom()
}

// parseTrailingCalls handles further `.method(args)` chains off an
// already-built call result, e.g. `B().f()`.
func (p *Parser) parseTrailingCalls(base interp.Node) (interp.Node, error) {
	cur := base
	for p.checkChar(".") {
		p.advance()
		nameTok, err := p.consume(lexer.Id, "member name")
		if err != nil {
			return nil, err
		}
		if !p.checkChar("(") {
			return nil, p.errorf("field access on a call result is not supported")
		}
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		cur = &ast.MethodCall{Receiver: cur, Method: nameTok.Lexeme, Args: args}
	}
	return cur, nil
}

func (p *Parser) parseArgList() ([]interp.Node, error) {
	if err := p.consumeChar("(", "'('"); err != nil {
		return nil, err
	}
	var args []interp.Node
	for !p.checkChar(")") {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if !p.matchChar(",") {
			break
		}
	}
	if err := p.consumeChar(")", "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseAtom() (interp.Node, error) {
	t := p.peek()
	switch t.Kind {
	case lexer.Number:
		p.advance()
		n, err := lexer.ParseNumberLexeme(t.Lexeme)
		if err != nil {
			return nil, p.errorf("invalid number literal %q", t.Lexeme)
		}
		return &ast.NumberLiteral{Value: n}, nil
	case lexer.String:
		p.advance()
		return &ast.StringLiteral{Value: t.Lexeme}, nil
	case lexer.True:
		p.advance()
		return &ast.BoolLiteral{Value: true}, nil
	case lexer.False:
		p.advance()
		return &ast.BoolLiteral{Value: false}, nil
	case lexer.None:
		p.advance()
		return &ast.NoneLiteral{}, nil
	case lexer.Char:
		if t.Lexeme == "(" {
			p.advance()
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.consumeChar(")", "')'"); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, p.errorf("unexpected token %s", t.Kind)
}
