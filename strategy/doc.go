/*
Package strategy implements the Strategy abstraction of the redex term
rewriting engine: a named, lazily composable partial function from a Term
to a possibly-transformed Term.

A Strategy either succeeds, yielding a result Term, or fails. Complex
rewrites are assembled from a handful of primitives (Id, Fail, Seq,
Choice, Guarded, Inclusive), rule builders that lift ordinary Go
functions into strategies (Rule, RuleF, Build, ...), generic one-level
traversals over any Term shape (Child, All, One, Some, Congruence), and a
library of compound traversal and control combinators built by direct
recursive composition of those primitives (Topdown, Innermost, Repeat,
...).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package strategy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'redex.strategy'.
func tracer() tracing.Trace {
	return tracing.Select("redex.strategy")
}
