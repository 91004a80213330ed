package interp

import (
	"io"
	"strings"
)

// Context is the write-only output stream collaborator threaded through
// every Execute call: Print writes to it, and it is the single point of
// indirection that lets Stringify substitute a buffering sink.
type Context struct {
	w io.Writer
}

// NewContext returns a Context that writes to w (the driver wires this to
// the program's real stdout).
func NewContext(w io.Writer) *Context {
	return &Context{w: w}
}

// GetOutputStream returns the stream Print implementations write to.
func (c *Context) GetOutputStream() io.Writer {
	return c.w
}

// DummyContext is a Context that buffers its output internally instead of
// writing to a real stream; Stringify uses one to capture a value's
// Print output as a string.
type DummyContext struct {
	Context
	buf strings.Builder
}

// NewDummyContext returns a DummyContext with an empty buffer.
func NewDummyContext() *DummyContext {
	dc := &DummyContext{}
	dc.Context.w = &dc.buf
	return dc
}

// Output returns everything written to the dummy context so far.
func (dc *DummyContext) Output() string {
	return dc.buf.String()
}
