package lexer

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// ErrLexer is the sentinel every lexer failure wraps; callers use
// errors.Is(err, ErrLexer) to distinguish lexer failures from runtime
// ones without matching on message text.
var ErrLexer = errors.New("lexer error")

// LexError carries the offending position alongside the wrapped sentinel.
type LexError struct {
	Row, Col int
	Reason   string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", ErrLexer, e.Row, e.Col, e.Reason)
}

func (e *LexError) Unwrap() error {
	return ErrLexer
}

func newLexError(row, col int, format string, args ...any) error {
	return xerrors.Errorf("lex: %w", &LexError{Row: row, Col: col, Reason: fmt.Sprintf(format, args...)})
}
