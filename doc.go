/*
Package redex is a strategic term rewriting engine.

It provides a library of composable, first-class strategies which traverse
and transform immutable, heterogeneous tree-shaped values ("terms"), in the
tradition of Stratego. A strategy is a partial function from a subject term
to a possibly-transformed term: it either succeeds with a result term, or
fails. Complex rewrites are built by combining a handful of primitive
strategies with combinators for sequencing, choice and generic traversal.

Package structure is as follows:

■ term: Package term implements a universal view of Go values, exposing an
ordered list of children for any value and a way to reconstruct a value of
the same concrete type from replacement children.

■ strategy: Package strategy implements the Strategy abstraction itself:
the primitive combinators, the rule builders that lift ordinary Go
functions into strategies, the generic one-level traversals, and the
library of top-down/bottom-up/innermost-style combinators built on top of
them.

■ emit: Package emit provides the small sink interface used by the
debug/log/logfail strategy builders to report what happened during a
rewrite.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package redex
