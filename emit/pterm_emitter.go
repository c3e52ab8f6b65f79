package emit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"github.com/pterm/pterm"
)

// PtermEmitter renders Emit/Emitln through pterm's styled prefixes,
// prefixing informational and error output with colored pterm.Info /
// pterm.Error styles.
type PtermEmitter struct {
	// Failing, when true, routes output through pterm.Error instead of
	// pterm.Info. strategy.LogFail sets this on its emitter.
	Failing bool
}

// NewPtermEmitter returns an Emitter that prints informational output
// through pterm's default styling.
func NewPtermEmitter() *PtermEmitter {
	return &PtermEmitter{}
}

func (e *PtermEmitter) printer() *pterm.PrefixPrinter {
	if e.Failing {
		return &pterm.Error
	}
	return &pterm.Info
}

func (e *PtermEmitter) Emit(s string) {
	tracer().Debugf("emit(failing=%v): %s", e.Failing, s)
	e.printer().Print(s)
}

func (e *PtermEmitter) Emitln(s string) {
	tracer().Debugf("emit(failing=%v): %s", e.Failing, s)
	e.printer().Println(s)
}
