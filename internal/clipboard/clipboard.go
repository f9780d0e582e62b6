// Package clipboard copies the share summary out of the terminal. The
// system clipboard is tried first; when it is unavailable the caller can
// fall back to an OSC 52 escape sequence written by the terminal itself.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Method names the mechanism that carried a copy.
type Method string

const (
	MethodSystem Method = "system" // native clipboard tool (pbcopy, xclip, wl-copy, ...)
	MethodOSC52  Method = "osc52"  // terminal clipboard escape sequence
	MethodNone   Method = "none"   // nothing could be copied
)

// ErrUnsupported is reported when no system clipboard tool is installed.
var ErrUnsupported = errors.New("system clipboard unavailable")

// Outcome reports how a copy was carried out. Err holds the primary
// failure even when the fallback succeeded.
type Outcome struct {
	Method Method
	Err    error
}

// OK reports whether the text reached some clipboard.
func (o Outcome) OK() bool {
	return o.Method == MethodSystem || o.Method == MethodOSC52
}

// WriteFunc writes text to a clipboard.
type WriteFunc func(text string) error

// systemWriteAll is a package-level variable to allow mocking in tests.
var systemWriteAll WriteFunc = func(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copier writes text to the system clipboard with an optional OSC 52 fallback.
type Copier struct {
	write WriteFunc
	osc52 bool
}

// New creates a Copier backed by the system clipboard.
func New(osc52Fallback bool) *Copier {
	return &Copier{write: systemWriteAll, osc52: osc52Fallback}
}

// NewWithWriter creates a Copier with a custom primary writer.
func NewWithWriter(w WriteFunc, osc52Fallback bool) *Copier {
	return &Copier{write: w, osc52: osc52Fallback}
}

// Copy writes text through the primary mechanism. On failure it selects
// the OSC 52 fallback when enabled; the escape sequence itself is emitted
// by the UI, which owns the terminal.
func (c *Copier) Copy(text string) Outcome {
	err := c.write(text)
	if err == nil {
		return Outcome{Method: MethodSystem}
	}
	if c.osc52 {
		return Outcome{Method: MethodOSC52, Err: err}
	}
	return Outcome{Method: MethodNone, Err: err}
}
