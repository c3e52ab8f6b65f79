/*
Package term implements a universal, reflective view of Go values ("terms")
for the redex rewriting engine.

A term is any Go value. This package distinguishes four shapes, tested in
a fixed order: a user-supplied Rewritable capability, a struct-shaped
Product, a keyed Mapping, and an ordered Sequence. Anything else is opaque
and has no children.

Every generic traversal in package strategy is built from exactly three
functions exported here: ShapeOf, Children and Rebuild, plus the
change-detection helper Same.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package term

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.term'.
func tracer() tracing.Trace {
	return tracing.Select("redex.term")
}
