package interp

import (
	"errors"
	"fmt"

	"golang.org/x/xerrors"
)

// ErrRuntime is the sentinel every runtime-evaluation error wraps: method
// lookup failures, arity mismatches, type errors in arithmetic and
// comparison, and division by zero. Grounded on the WoozyMasta-rvmat
// lexer/parser's single-sentinel-per-error-class pattern (ErrLex/ErrParse
// in errors.go), adapted to this package's one class of failure.
var ErrRuntime = errors.New("runtime error")

// newRuntimeError wraps ErrRuntime with a frame-carrying xerrors.Errorf,
// the same boundary-crossing wrap lexer.newLexError performs, so a
// caller several frames up can still errors.Is(err, ErrRuntime).
func newRuntimeError(format string, args ...any) error {
	return xerrors.Errorf("eval: %w", fmt.Errorf("%w: "+format, append([]any{ErrRuntime}, args...)...))
}
