/*
Package arith is a tiny arithmetic expression tree used by the strategy
package's tests to exercise traversals and combinators against a real
Rewritable-shaped Term, rather than only against reflected Go structs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package arith

import (
	"fmt"

	"github.com/redexlang/redex/term"
)

// Num is a numeric literal, a leaf with no children.
type Num struct{ V int }

func (n Num) Arity() int                         { return 0 }
func (n Num) Deconstruct() []term.Term           { return nil }
func (n Num) Reconstruct(_ []term.Term) term.Term { return n }
func (n Num) String() string                     { return fmt.Sprintf("%d", n.V) }

// Var is a free variable reference, also a leaf.
type Var struct{ Name string }

func (v Var) Arity() int                          { return 0 }
func (v Var) Deconstruct() []term.Term            { return nil }
func (v Var) Reconstruct(_ []term.Term) term.Term { return v }
func (v Var) String() string                      { return v.Name }

// Add is a binary sum.
type Add struct{ L, R term.Term }

func (a Add) Arity() int               { return 2 }
func (a Add) Deconstruct() []term.Term { return []term.Term{a.L, a.R} }
func (a Add) Reconstruct(children []term.Term) term.Term {
	return Add{L: children[0], R: children[1]}
}
func (a Add) String() string { return fmt.Sprintf("(%v + %v)", a.L, a.R) }

// Sub is a binary difference.
type Sub struct{ L, R term.Term }

func (s Sub) Arity() int               { return 2 }
func (s Sub) Deconstruct() []term.Term { return []term.Term{s.L, s.R} }
func (s Sub) Reconstruct(children []term.Term) term.Term {
	return Sub{L: children[0], R: children[1]}
}
func (s Sub) String() string { return fmt.Sprintf("(%v - %v)", s.L, s.R) }

// Mul is a binary product.
type Mul struct{ L, R term.Term }

func (m Mul) Arity() int               { return 2 }
func (m Mul) Deconstruct() []term.Term { return []term.Term{m.L, m.R} }
func (m Mul) Reconstruct(children []term.Term) term.Term {
	return Mul{L: children[0], R: children[1]}
}
func (m Mul) String() string { return fmt.Sprintf("(%v * %v)", m.L, m.R) }
