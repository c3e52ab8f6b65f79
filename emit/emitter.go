package emit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"io"
	"os"
)

// Emitter is anything a debug or logging strategy can print a line to.
type Emitter interface {
	// Emit writes s with no trailing newline.
	Emit(s string)
	// Emitln writes s followed by a newline.
	Emitln(s string)
}

// writerEmitter is the plain, undecorated Emitter used when no fancier
// terminal output is wanted (redirected output, tests, CI logs).
type writerEmitter struct {
	w io.Writer
}

// NewWriterEmitter wraps an io.Writer as an Emitter.
func NewWriterEmitter(w io.Writer) Emitter {
	return &writerEmitter{w: w}
}

func (e *writerEmitter) Emit(s string) {
	tracer().Debugf("emit: %s", s)
	fmt.Fprint(e.w, s)
}

func (e *writerEmitter) Emitln(s string) {
	tracer().Debugf("emit: %s", s)
	fmt.Fprintln(e.w, s)
}

var stdout = NewWriterEmitter(os.Stdout)

// Default returns the package's stdout Emitter.
func Default() Emitter {
	return stdout
}
