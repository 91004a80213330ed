// Package lexer converts source text into the token stream described by
// the language's grammar: identifiers, literals, keywords, operators, and
// the virtual Indent/Dedent/Newline tokens that make indentation
// significant.
package lexer

import (
	"strconv"
	"strings"
)

const indentWidth = 2

// Lexer tokenizes an entire source string up front and exposes a
// cursor (CurrentToken/NextToken) over the resulting stream, mirroring
// the teacher's single-pass Scan() plus the original implementation's
// pre-tokenize-then-walk cursor.
type Lexer struct {
	tokens []Token
	pos    int
}

// New tokenizes src and returns a Lexer positioned at the first token.
// A LexError is returned for malformed indentation or a malformed
// two-character operator; both are fatal per spec.
func New(src string) (*Lexer, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	return &Lexer{tokens: toks}, nil
}

// CurrentToken returns the token under the cursor without advancing.
func (l *Lexer) CurrentToken() Token {
	return l.tokens[l.pos]
}

// NextToken advances the cursor and returns the new current token.
// Advancing past Eof is idempotent.
func (l *Lexer) NextToken() Token {
	if l.pos < len(l.tokens)-1 {
		l.pos++
	}
	return l.tokens[l.pos]
}

// scan tokenizes src in one pass, tracking an indentation stack and
// emitting virtual Indent/Dedent/Newline tokens around logical lines.
func scan(src string) ([]Token, error) {
	var (
		tokens    []Token
		row       = 1
		col       = 0
		indent    = 0
		atLineStt = true
		i         = 0
		n         = len(src)
	)

	add := func(kind TokenKind, lexeme string) {
		tokens = append(tokens, Token{Kind: kind, Lexeme: lexeme, Row: row, Col: col})
	}

	// handleLineStart measures leading whitespace on a logical line and
	// emits the Indent/Dedent tokens required to reach its level. It
	// returns true if the line is blank (whitespace/comment-only) and
	// should not emit a Newline.
	handleLineStart := func() (blank bool, err error) {
		start := i
		spaces := 0
		for i < n && src[i] == ' ' {
			spaces++
			i++
			col++
		}
		// A comment-only or empty line (after the leading whitespace) is
		// blank: it neither changes indentation nor emits Newline.
		if i >= n || src[i] == '\n' || src[i] == '#' {
			if i < n && src[i] == '#' {
				for i < n && src[i] != '\n' {
					i++
					col++
				}
			}
			return true, nil
		}

		if spaces%indentWidth != 0 {
			return false, newLexError(row, col, "indent must be multiple of two")
		}
		cur := spaces / indentWidth
		switch {
		case cur == indent:
			// no change
		case cur == indent+1:
			add(Indent, "")
			indent = cur
		case cur < indent:
			for indent > cur {
				add(Dedent, "")
				indent--
			}
		default:
			return false, newLexError(row, col, "too big change of indent")
		}
		_ = start
		return false, nil
	}

	for i < n {
		if atLineStt {
			blank, err := handleLineStart()
			if err != nil {
				return nil, err
			}
			atLineStt = false
			if blank {
				if i < n && src[i] == '\n' {
					i++
					row++
					col = 0
					atLineStt = true
				}
				continue
			}
		}

		ch := src[i]
		switch {
		case ch == '\n':
			add(Newline, "")
			i++
			row++
			col = 0
			atLineStt = true
			continue
		case ch == ' ':
			i++
			col++
			continue
		case ch == '#':
			for i < n && src[i] != '\n' {
				i++
				col++
			}
			continue
		case ch >= '0' && ch <= '9':
			start := i
			for i < n && src[i] >= '0' && src[i] <= '9' {
				i++
				col++
			}
			add(Number, src[start:i])
		case isIdentStart(ch):
			start := i
			for i < n && isIdentPart(src[i]) {
				i++
				col++
			}
			lit := src[start:i]
			if kind, ok := keywords[lit]; ok {
				add(kind, "")
			} else {
				add(Id, lit)
			}
		case ch == '\'' || ch == '"':
			lit, err := scanString(src, &i, &row, &col, ch)
			if err != nil {
				return nil, err
			}
			add(String, lit)
		case ch == '=' && peek(src, i+1) == '=':
			add(Eq, "")
			i += 2
			col += 2
		case ch == '!' && peek(src, i+1) == '=':
			add(NotEq, "")
			i += 2
			col += 2
		case ch == '<' && peek(src, i+1) == '=':
			add(LessOrEq, "")
			i += 2
			col += 2
		case ch == '>' && peek(src, i+1) == '=':
			add(GreaterOrEq, "")
			i += 2
			col += 2
		case strings.IndexByte("+-=*/<>:,.()", ch) >= 0:
			add(Char, string(ch))
			i++
			col++
		default:
			return nil, newLexError(row, col, "unexpected character %q", ch)
		}
	}

	if indent > 0 {
		for indent > 0 {
			add(Dedent, "")
			indent--
		}
	}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1].Kind
		if last != Newline && last != Dedent {
			add(Newline, "")
		}
	}
	add(Eof, "")

	return tokens, nil
}

func peek(src string, i int) byte {
	if i >= len(src) {
		return 0
	}
	return src[i]
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// scanString consumes a quoted string literal starting at *i (which must
// index the opening quote), applying the supported escapes. An unknown
// escape sequence silently contributes nothing to the literal — neither
// the backslash nor the following character — matching the language's
// original implementation.
func scanString(src string, i, row, col *int, quote byte) (string, error) {
	var b strings.Builder
	startRow, startCol := *row, *col
	*i++
	*col++
	for {
		if *i >= len(src) {
			return "", newLexError(startRow, startCol, "unterminated string")
		}
		ch := src[*i]
		if ch == quote {
			*i++
			*col++
			return b.String(), nil
		}
		if ch == '\n' {
			return "", newLexError(*row, *col, "unterminated string")
		}
		if ch == '\\' {
			*i++
			*col++
			if *i >= len(src) {
				return "", newLexError(startRow, startCol, "unterminated string")
			}
			esc := src[*i]
			*i++
			*col++
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\'':
				b.WriteByte('\'')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				// unknown escape: drop both characters silently
			}
			continue
		}
		b.WriteByte(ch)
		*i++
		*col++
	}
}

// ParseNumberLexeme converts a Number token's lexeme to an integer. It is
// exported for the parser, which builds integer literal AST nodes.
func ParseNumberLexeme(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}
