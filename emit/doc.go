/*
Package emit provides the diagnostic output sinks used by strategy.Debug,
strategy.Log and strategy.LogFail: something a rewrite can print to
without depending on any concrete output technology.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package emit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.emit'.
func tracer() tracing.Trace {
	return tracing.Select("redex.emit")
}
