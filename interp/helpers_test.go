package interp

import "strings"

// stringWriter is a minimal io.Writer backed by a strings.Builder, used
// by tests that check an Object's Print output directly.
type stringWriter struct {
	b strings.Builder
}

func (w *stringWriter) Write(p []byte) (int, error) {
	return w.b.Write(p)
}

func (w *stringWriter) String() string {
	return w.b.String()
}
